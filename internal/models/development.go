package models

import "time"

// Empreendimento (condomínio, loteamento) ao qual imóveis podem pertencer
type Development struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	AgencyID uint `json:"agency_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
