package models

import "time"

// Patient is a clinical record owned by a practice. Patients do not log in;
// appointments may reference them before the record exists (placeholder ids).
type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PracticeID  uint `json:"practiceId"`
	TherapistID uint `json:"therapistId"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Age    int    `json:"age"`
	Gender string `gorm:"size:20" json:"gender"`
	Status string `gorm:"size:20;default:'Current'" json:"status"`

	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	Address   string `gorm:"size:255" json:"address"`
	AvatarURL string `gorm:"size:500" json:"avatarUrl"`

	Diagnosis         string `gorm:"size:255" json:"diagnosis"`
	MedicalHistory    string `gorm:"type:text" json:"medicalHistory"`
	PresentingProblem string `gorm:"type:text" json:"presentingProblem"`
	TreatmentPlan     string `gorm:"type:text" json:"treatmentPlan"`
	Notes             string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
