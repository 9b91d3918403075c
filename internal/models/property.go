package models

import "time"

type Property struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	AgencyID uint `json:"agency_id"`

	DevelopmentID *uint        `json:"development_id"`
	Development   *Development `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"development,omitempty"`

	CurrencyID *uint     `json:"currency_id"`
	Currency   *Currency `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"currency,omitempty"`

	Title       string  `gorm:"size:150;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Address     string  `gorm:"size:255" json:"address"`
	City        string  `gorm:"size:100" json:"city"`
	Price       float64 `json:"price"`

	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`
	AreaM2    int `json:"area_m2"`

	// lista simples separada por vírgula (ex.: "piscina,garagem,elevador")
	Facilities string `gorm:"size:500" json:"facilities"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
