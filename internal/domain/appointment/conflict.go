package appointment

import (
	"time"

	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

// Overlaps testa sobreposição de intervalos meio-abertos [a0,a1) e [b0,b1).
// Agendamentos encostados (um termina quando o outro começa) não conflitam.
func Overlaps(a0, a1, b0, b1 time.Time) bool {
	return a0.Before(b1) && b0.Before(a1)
}

// HasConflict decide se o intervalo candidato colide com algum agendamento
// ativo do corretor. excludeID permite reagendar sem colidir consigo mesmo
// (zero = sem exclusão).
func HasConflict(
	existing []models.Appointment,
	start time.Time,
	end time.Time,
	excludeID uint,
) bool {

	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if !Status(ap.Status).Blocks() {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}

	return false
}
