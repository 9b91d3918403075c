package appointment

import (
	"context"

	"github.com/AtrioImoveis/realty-scheduler/internal/audit"
	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/notify"
	"github.com/AtrioImoveis/realty-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	current := domain.Status(ap.Status)
	if current == domain.StatusCancelled {
		return nil, httperr.ErrInvalidTransition("already_cancelled", "Agendamento já cancelado.")
	}
	if !domain.CanTransition(current, domain.StatusCancelled) {
		return nil, httperr.ErrInvalidTransition("invalid_transition", "Agendamento não pode ser cancelado.")
	}

	agency, err := uc.repo.GetAgencyByID(ctx, ap.AgencyID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(agency.Timezone)
	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	// motivo vai para as notas, sem tabela própria
	if reason != "" {
		ap.Notes = ap.Notes + "\n\nCancelada: " + reason
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AgencyID: ap.AgencyID,
		AgentID:  &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify.Dispatch(notify.Event{
		Kind:           "appointment_cancelled",
		AppointmentID:  ap.ID,
		ActorID:        &actorID,
		RecipientEmail: ap.ClientEmail,
		Subject:        "Agendamento cancelado",
		Body:           "Seu agendamento \"" + ap.Title + "\" foi cancelado.",
	})

	return ap, nil
}
