package appointment

import (
	"context"
	"time"

	"github.com/AtrioImoveis/realty-scheduler/internal/agentlock"
	"github.com/AtrioImoveis/realty-scheduler/internal/audit"
	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/notify"
	"github.com/AtrioImoveis/realty-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	AgencyID uint
	AgentID  uint

	ClientID   *uint
	PropertyID *uint

	Title        string
	Description  string
	Type         string
	LocationType string
	Location     string

	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	DurationMin int
	Notes       string

	IsPublic         bool
	ClientEmail      string
	ClientPhone      string
	ConfirmationCode string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment é o único caminho de criação: agendamentos
// privados e públicos passam pela mesma checagem de conflito.
type CreateAppointment struct {
	repo   domain.Repository
	locks  *agentlock.Keyed
	audit  *audit.Dispatcher
	notify *notify.Dispatcher

	// antecedência mínima padrão (MIN_ADVANCE_MINUTES), usada quando
	// a imobiliária não define a sua
	minAdvance int
}

func NewCreateAppointment(
	repo domain.Repository,
	locks *agentlock.Keyed,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
	minAdvanceMinutes int,
) *CreateAppointment {
	if minAdvanceMinutes <= 0 {
		minAdvanceMinutes = 120
	}
	return &CreateAppointment{
		repo:       repo,
		locks:      locks,
		audit:      auditDispatcher,
		notify:     notifyDispatcher,
		minAdvance: minAdvanceMinutes,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Imobiliária (timezone + antecedência mínima)
	// --------------------------------------------------
	agency, err := uc.repo.GetAgencyByID(ctx, in.AgencyID)
	if err != nil {
		return nil, httperr.ErrNotFound("agency_not_found", "Imobiliária não encontrada.")
	}

	// --------------------------------------------------
	// 2. Campos obrigatórios
	// --------------------------------------------------
	if in.Title == "" {
		return nil, httperr.ErrValidation("missing_title", "Título é obrigatório.")
	}

	apType, ok := domain.ParseType(in.Type)
	if !ok {
		return nil, httperr.ErrValidation("invalid_type", "Tipo de agendamento inválido.")
	}

	locType := domain.LocationOther
	if in.LocationType != "" {
		locType, ok = domain.ParseLocationType(in.LocationType)
		if !ok {
			return nil, httperr.ErrValidation("invalid_location_type", "Tipo de local inválido.")
		}
	}

	if in.DurationMin <= 0 {
		return nil, httperr.ErrValidation("invalid_duration", "Duração deve ser positiva.")
	}

	// --------------------------------------------------
	// 3. Partes
	// --------------------------------------------------
	if _, err := uc.repo.GetAgentByID(ctx, in.AgentID); err != nil {
		return nil, httperr.ErrValidation("agent_not_found", "Corretor não encontrado.")
	}

	var client *models.Client
	if in.IsPublic {
		if in.ClientEmail == "" && in.ClientPhone == "" {
			return nil, httperr.ErrValidation("missing_contact", "Informe e-mail ou telefone.")
		}
	} else {
		if in.ClientID == nil {
			return nil, httperr.ErrValidation("missing_client", "Cliente é obrigatório.")
		}
		client, err = uc.repo.GetClientByID(ctx, in.AgencyID, *in.ClientID)
		if err != nil {
			return nil, httperr.ErrValidation("client_not_found", "Cliente não encontrado.")
		}
	}

	if in.PropertyID != nil {
		if _, err := uc.repo.GetPropertyByID(ctx, *in.PropertyID); err != nil {
			return nil, httperr.ErrValidation("property_not_found", "Imóvel não encontrado.")
		}
	}

	// --------------------------------------------------
	// 4. Data / hora no timezone da imobiliária
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(agency.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date_or_time", "Data ou hora inválida.")
	}

	// --------------------------------------------------
	// 5. Antecedência mínima
	// --------------------------------------------------
	minAdvance := agency.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = uc.minAdvance
	}

	now := timezone.NowIn(agency.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrValidation("too_soon", "Horário inválido.")
	}

	end := start.Add(time.Duration(in.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 6. Conflito de horário (lock por corretor até gravar)
	// --------------------------------------------------
	uc.locks.Lock(in.AgentID)
	defer uc.locks.Unlock(in.AgentID)

	existing, err := uc.repo.ListAppointmentsByAgentForUpdate(ctx, in.AgentID)
	if err != nil {
		return nil, err
	}

	if domain.HasConflict(existing, start, end, 0) {
		return nil, httperr.ErrConflict("time_conflict", "Conflito de horário.")
	}

	// --------------------------------------------------
	// 7. Criação (status centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		AgencyID:   in.AgencyID,
		AgentID:    in.AgentID,
		ClientID:   in.ClientID,
		PropertyID: in.PropertyID,

		Title:       in.Title,
		Description: in.Description,

		Type:         string(apType),
		LocationType: string(locType),
		Location:     in.Location,

		StartTime:   start,
		DurationMin: in.DurationMin,
		EndTime:     end,

		Status: string(domain.InitialStatus()),

		IsPublic:         in.IsPublic,
		ClientEmail:      in.ClientEmail,
		ClientPhone:      in.ClientPhone,
		ConfirmationCode: in.ConfirmationCode,

		Notes: in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Auditoria + notificação (fire-and-forget)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		AgencyID: in.AgencyID,
		AgentID:  &in.AgentID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	recipient := in.ClientEmail
	if client != nil {
		recipient = client.Email
	}

	uc.notify.Dispatch(notify.Event{
		Kind:           "appointment_created",
		AppointmentID:  ap.ID,
		ActorID:        &in.AgentID,
		RecipientEmail: recipient,
		Subject:        "Agendamento criado",
		Body: "Seu agendamento \"" + ap.Title + "\" foi criado para " +
			start.Format("02/01/2006 15:04") + ".",
	})

	return ap, nil
}
