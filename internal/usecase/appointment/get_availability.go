package appointment

import (
	"context"
	"time"

	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/timezone"
)

// GetAvailability percorre a grade fixa de expediente e, para cada
// slot, escolhe o primeiro corretor do pool sem conflito. Recalcula
// tudo a cada chamada; o resultado só vale no instante do cálculo.
type GetAvailability struct {
	repo  domain.Repository
	pool  []uint
	hours domain.OfficeHours
}

func NewGetAvailability(
	repo domain.Repository,
	pool []uint,
	hours domain.OfficeHours,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		pool:  pool,
		hours: hours,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	property, err := uc.repo.GetPropertyByID(ctx, in.PropertyID)
	if err != nil {
		return nil, httperr.ErrNotFound("property_not_found", "Imóvel não encontrado.")
	}

	agency, err := uc.repo.GetAgencyByID(ctx, property.AgencyID)
	if err != nil {
		return nil, httperr.ErrNotFound("agency_not_found", "Imobiliária não encontrada.")
	}

	// a grade é ancorada no fuso da imobiliária, o mesmo em que a
	// criação interpreta data e hora; do input só importa o dia
	loc := timezone.Location(agency.Timezone)
	day := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)

	// uma leitura por corretor; o detector filtra por horário
	byAgent := make(map[uint][]models.Appointment, len(uc.pool))
	for _, agentID := range uc.pool {
		apps, err := uc.repo.ListAppointmentsByAgent(ctx, agentID)
		if err != nil {
			return nil, err
		}
		byAgent[agentID] = apps
	}

	slotDuration := uc.hours.SlotDuration()
	var slots []domain.TimeSlot

	for _, slotStart := range uc.hours.SlotStarts(day) {
		slotEnd := slotStart.Add(slotDuration)

		slot := domain.TimeSlot{
			Start: slotStart.Format("15:04"),
			End:   slotEnd.Format("15:04"),
		}

		for _, agentID := range uc.pool {
			if !domain.HasConflict(byAgent[agentID], slotStart, slotEnd, 0) {
				id := agentID
				slot.Available = true
				slot.AgentID = &id
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
