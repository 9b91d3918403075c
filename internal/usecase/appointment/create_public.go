package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type PublicBookingInput struct {
	Title       string
	Description string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	DurationMin int
	PropertyID  uint

	ClientEmail string
	ClientPhone string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicBooking é a porta de entrada não autenticada: valida o
// pedido, escolhe corretor (primário, depois reserva) e delega ao
// mesmo caminho de criação dos agendamentos privados.
type CreatePublicBooking struct {
	repo   domain.Repository
	pool   []uint
	create *CreateAppointment
}

func NewCreatePublicBooking(
	repo domain.Repository,
	pool []uint,
	create *CreateAppointment,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:   repo,
		pool:   pool,
		create: create,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in PublicBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validação de campos
	// --------------------------------------------------
	if in.Title == "" {
		return nil, httperr.ErrValidation("missing_title", "Título é obrigatório.")
	}
	if in.Date == "" {
		return nil, httperr.ErrValidation("missing_date", "Data é obrigatória.")
	}
	if in.Time == "" {
		return nil, httperr.ErrValidation("missing_time", "Hora é obrigatória.")
	}
	if in.DurationMin <= 0 {
		return nil, httperr.ErrValidation("invalid_duration", "Duração deve ser positiva.")
	}
	if in.PropertyID == 0 {
		return nil, httperr.ErrValidation("missing_property", "Imóvel é obrigatório.")
	}

	if in.ClientEmail == "" && in.ClientPhone == "" {
		return nil, httperr.ErrValidation("missing_contact", "Informe e-mail ou telefone.")
	}
	if in.ClientEmail != "" && !validators.IsEmailFormatValid(in.ClientEmail) {
		return nil, httperr.ErrValidation("invalid_email", "E-mail inválido.")
	}

	property, err := uc.repo.GetPropertyByID(ctx, in.PropertyID)
	if err != nil {
		return nil, httperr.ErrNotFound("property_not_found", "Imóvel não encontrado.")
	}

	if len(uc.pool) == 0 {
		return nil, httperr.ErrConflict("no_agent_available", "Nenhum corretor disponível.")
	}

	// --------------------------------------------------
	// 2. Corretor primário, depois reserva
	// --------------------------------------------------
	// a criação re-checa conflito sob lock do corretor, então a
	// tentativa direta já é a checagem
	candidates := uc.pool[:1]
	if len(uc.pool) > 1 {
		candidates = uc.pool[:2]
	}

	for _, agentID := range candidates {
		ap, err := uc.create.Execute(ctx, CreateAppointmentInput{
			AgencyID:   property.AgencyID,
			AgentID:    agentID,
			PropertyID: &in.PropertyID,

			Title:        in.Title,
			Description:  in.Description,
			Type:         string(domain.TypePropertyVisit),
			LocationType: string(domain.LocationPropertyAddress),
			Location:     property.Address,

			Date:        in.Date,
			Time:        in.Time,
			DurationMin: in.DurationMin,
			Notes:       in.Notes,

			IsPublic:         true,
			ClientEmail:      in.ClientEmail,
			ClientPhone:      in.ClientPhone,
			ConfirmationCode: uuid.NewString(),
		})

		if err == nil {
			return ap, nil
		}

		// só o conflito de horário justifica tentar o próximo corretor
		if !httperr.IsBusiness(err, "time_conflict") {
			return nil, err
		}
	}

	return nil, httperr.ErrConflict("no_agent_available", "Nenhum corretor disponível neste horário.")
}
