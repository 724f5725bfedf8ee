package models

import "time"

type Practice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:120" json:"name"`
	Phone   string `gorm:"size:30" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
