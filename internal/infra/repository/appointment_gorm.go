package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Agency
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAgencyByID(
	ctx context.Context,
	id uint,
) (*models.Agency, error) {

	var agency models.Agency
	if err := r.db.WithContext(ctx).First(&agency, id).Error; err != nil {
		return nil, err
	}
	return &agency, nil
}

// --------------------------------------------------
// Agent
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAgentByID(
	ctx context.Context,
	id uint,
) (*models.Agent, error) {

	var agent models.Agent
	if err := r.db.WithContext(ctx).First(&agent, id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientByID(
	ctx context.Context,
	agencyID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND agency_id = ?", clientID, agencyID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Property
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPropertyByID(
	ctx context.Context,
	id uint,
) (*models.Property, error) {

	var property models.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// --------------------------------------------------
// Appointment (create / mutate)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// --------------------------------------------------
// Appointment (queries)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsByAgent(
	ctx context.Context,
	agentID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// SELECT ... FOR UPDATE: segura as linhas do corretor entre a checagem
// de conflito e o INSERT/UPDATE do caminho de escrita.
func (r *AppointmentGormRepository) ListAppointmentsByAgentForUpdate(
	ctx context.Context,
	agentID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("agent_id = ?", agentID).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForRange(
	ctx context.Context,
	agentID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Property").
		Where(
			"agent_id = ? AND start_time >= ? AND start_time < ?",
			agentID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
