package models

import "time"

type Currency struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"size:3;uniqueIndex;not null" json:"code"`
	Name   string `gorm:"size:50;not null" json:"name"`
	Symbol string `gorm:"size:5" json:"symbol"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
