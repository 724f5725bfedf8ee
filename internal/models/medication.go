package models

import "time"

type Medication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PracticeID uint `json:"practiceId"`
	PatientID  uint `json:"patientId"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Dosage       string `gorm:"size:60" json:"dosage"`
	Frequency    string `gorm:"size:60" json:"frequency"`
	Instructions string `gorm:"size:255" json:"instructions"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
