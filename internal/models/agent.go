package models

import "time"

type Agent struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AgencyID uint   `json:"agency_id"`
	Agency   Agency `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"agency"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'agent'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
