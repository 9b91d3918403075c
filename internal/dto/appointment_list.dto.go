package dto

import (
	"time"

	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	ClientName    string    `json:"client_name"`
	PropertyTitle string    `json:"property_title"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	d := AppointmentListDTO{
		ID:        ap.ID,
		Title:     ap.Title,
		Type:      ap.Type,
		StartTime: ap.StartTime,
		EndTime:   ap.EndTime,
		Status:    ap.Status,
	}

	if ap.Client != nil {
		d.ClientName = ap.Client.Name
	}
	if ap.Property != nil {
		d.PropertyTitle = ap.Property.Title
	}

	return d
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
