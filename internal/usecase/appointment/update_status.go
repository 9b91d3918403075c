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

type UpdateStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:   repo,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

// Execute aceita o nome simbólico ou o nome de exibição do status e
// valida a transição contra a tabela do domínio.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	rawStatus string,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	}

	newStatus, ok := domain.ParseStatus(rawStatus)
	if !ok {
		return nil, httperr.ErrInvalidTransition("invalid_status", "Status desconhecido.")
	}

	current := domain.Status(ap.Status)
	if !domain.CanTransition(current, newStatus) {
		return nil, httperr.ErrInvalidTransition(
			"invalid_transition",
			"Transição de "+current.Display()+" para "+newStatus.Display()+" não é permitida.",
		)
	}

	agency, err := uc.repo.GetAgencyByID(ctx, ap.AgencyID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(agency.Timezone)
	ap.Status = string(newStatus)

	switch newStatus {
	case domain.StatusCompleted:
		ap.CompletedAt = &now
	case domain.StatusCancelled:
		ap.CancelledAt = &now
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AgencyID: ap.AgencyID,
		AgentID:  &actorID,
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": string(newStatus)},
	})

	uc.notify.Dispatch(notify.Event{
		Kind:           "appointment_status_updated",
		AppointmentID:  ap.ID,
		ActorID:        &actorID,
		RecipientEmail: ap.ClientEmail,
		Subject:        "Agendamento atualizado",
		Body:           "Seu agendamento \"" + ap.Title + "\" agora está: " + newStatus.Display() + ".",
	})

	return ap, nil
}
