package appointment

import (
	"context"
	"time"

	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

type Repository interface {
	// -------- Agency --------
	GetAgencyByID(
		ctx context.Context,
		id uint,
	) (*models.Agency, error)

	// -------- Agent --------
	GetAgentByID(
		ctx context.Context,
		id uint,
	) (*models.Agent, error)

	// -------- Client --------
	GetClientByID(
		ctx context.Context,
		agencyID uint,
		clientID uint,
	) (*models.Client, error)

	// -------- Property --------
	GetPropertyByID(
		ctx context.Context,
		id uint,
	) (*models.Property, error)

	// -------- Appointment (create / mutate) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (queries) --------
	// ListAppointmentsByAgent é uma leitura simples da agenda do
	// corretor, usada pelo planejador de disponibilidade.
	ListAppointmentsByAgent(
		ctx context.Context,
		agentID uint,
	) ([]models.Appointment, error)

	// ListAppointmentsByAgentForUpdate é a variante com lock de linha,
	// usada pelo caminho de escrita (criação e reagendamento) entre a
	// checagem de conflito e a persistência.
	ListAppointmentsByAgentForUpdate(
		ctx context.Context,
		agentID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForRange(
		ctx context.Context,
		agentID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
