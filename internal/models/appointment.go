package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgencyID uint   `json:"agency_id"`
	Agency   Agency `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"agency"`

	AgentID uint  `gorm:"index:idx_appointments_agent_start" json:"agent_id"`
	Agent   Agent `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"agent"`

	// ausente em agendamentos públicos; contato fica em ClientEmail/ClientPhone
	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	PropertyID *uint     `json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"property,omitempty"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Type         string `gorm:"size:30;not null" json:"type"`
	LocationType string `gorm:"size:30;not null" json:"location_type"`
	Location     string `gorm:"size:255" json:"location"`

	StartTime   time.Time `gorm:"index:idx_appointments_agent_start" json:"start_time"`
	DurationMin int       `json:"duration_min"`
	EndTime     time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	IsPublic         bool   `gorm:"default:false" json:"is_public"`
	ClientEmail      string `gorm:"size:100" json:"client_email"`
	ClientPhone      string `gorm:"size:20" json:"client_phone"`
	ConfirmationCode string `gorm:"size:36" json:"confirmation_code"`

	Notes       string     `gorm:"type:text" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
