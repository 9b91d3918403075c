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

type RescheduleInput struct {
	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	DurationMin *int
}

type RescheduleAppointment struct {
	repo   domain.Repository
	locks  *agentlock.Keyed
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	locks *agentlock.Keyed,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		locks:  locks,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in RescheduleInput,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	current := domain.Status(ap.Status)
	if !domain.CanTransition(current, domain.StatusRescheduled) {
		return nil, httperr.ErrInvalidTransition("invalid_transition", "Agendamento não pode ser reagendado.")
	}

	agency, err := uc.repo.GetAgencyByID(ctx, ap.AgencyID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(agency.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date_or_time", "Data ou hora inválida.")
	}

	now := timezone.NowIn(agency.Timezone)
	if start.Before(now) {
		return nil, httperr.ErrValidation("start_in_past", "Não é possível reagendar para o passado.")
	}

	duration := ap.DurationMin
	if in.DurationMin != nil {
		if *in.DurationMin <= 0 {
			return nil, httperr.ErrValidation("invalid_duration", "Duração deve ser positiva.")
		}
		duration = *in.DurationMin
	}

	end := start.Add(time.Duration(duration) * time.Minute)

	// mesma disciplina de lock da criação; exclui o próprio id para
	// não colidir com o horário atual do agendamento
	uc.locks.Lock(ap.AgentID)
	defer uc.locks.Unlock(ap.AgentID)

	existing, err := uc.repo.ListAppointmentsByAgentForUpdate(ctx, ap.AgentID)
	if err != nil {
		return nil, err
	}

	if domain.HasConflict(existing, start, end, ap.ID) {
		return nil, httperr.ErrConflict("time_conflict", "Conflito de horário.")
	}

	ap.StartTime = start
	ap.DurationMin = duration
	ap.EndTime = end
	ap.Status = string(domain.StatusRescheduled)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AgencyID: ap.AgencyID,
		AgentID:  &actorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"start": start, "end": end},
	})

	uc.notify.Dispatch(notify.Event{
		Kind:           "appointment_rescheduled",
		AppointmentID:  ap.ID,
		ActorID:        &actorID,
		RecipientEmail: ap.ClientEmail,
		Subject:        "Agendamento remarcado",
		Body: "Seu agendamento \"" + ap.Title + "\" foi remarcado para " +
			start.Format("02/01/2006 15:04") + ".",
	})

	return ap, nil
}
