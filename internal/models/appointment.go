package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment occupies exactly one catalog slot on one calendar date.
// The partial unique index is the authority for the "at most one active
// appointment per (date, slot)" invariant; application-level checks only
// give friendlier errors on the common path.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PracticeID  uint `gorm:"uniqueIndex:uniq_active_day_slot,priority:1,where:status = 'confirmed'" json:"practiceId"`
	TherapistID uint `json:"therapistId"`

	PatientID   string `gorm:"size:64" json:"patientId"`
	PatientName string `gorm:"size:100;not null" json:"patientName"`

	Date string `gorm:"size:10;not null;uniqueIndex:uniq_active_day_slot,priority:2,where:status = 'confirmed'" json:"date"`
	Slot string `gorm:"size:10;not null;uniqueIndex:uniq_active_day_slot,priority:3,where:status = 'confirmed'" json:"slot"`

	DurationLabel string `gorm:"size:40" json:"durationLabel"`
	Category      string `gorm:"size:60" json:"category"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
