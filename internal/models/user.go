package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PracticeID uint     `json:"practiceId"`
	Practice   Practice `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"practice"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Specialty    string `gorm:"size:80" json:"specialty"`
	Role         string `gorm:"size:20;default:'therapist'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
