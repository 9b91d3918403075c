package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		a0, a1, b0, b1 time.Time
		want           bool
	}{
		{"identicos", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"parcial no fim", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"parcial no inicio", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"contido", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"contendo", at(10, 30), at(11, 0), at(10, 0), at(12, 0), true},
		{"encostado depois", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"encostado antes", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjunto", at(9, 0), at(10, 0), at(14, 0), at(15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a0, tt.a1, tt.b0, tt.b1))
		})
	}
}

func existing(id uint, status Status, start, end time.Time) models.Appointment {
	ap := models.Appointment{
		Status:    string(status),
		StartTime: start,
		EndTime:   end,
	}
	ap.ID = id
	return ap
}

func TestHasConflictOverlap(t *testing.T) {
	agenda := []models.Appointment{
		existing(1, StatusScheduled, at(10, 0), at(11, 0)),
	}

	// 10:30-11:30 invade a visita das 10:00
	assert.True(t, HasConflict(agenda, at(10, 30), at(11, 30), 0))

	// 11:00-12:00 começa exatamente quando a outra termina
	assert.False(t, HasConflict(agenda, at(11, 0), at(12, 0), 0))
}

func TestHasConflictIgnoresInactive(t *testing.T) {
	agenda := []models.Appointment{
		existing(1, StatusCancelled, at(10, 0), at(11, 0)),
		existing(2, StatusNoShow, at(14, 0), at(15, 0)),
	}

	assert.False(t, HasConflict(agenda, at(10, 0), at(11, 0), 0))
	assert.False(t, HasConflict(agenda, at(14, 30), at(15, 30), 0))
}

func TestHasConflictActiveStatuses(t *testing.T) {
	for _, status := range []Status{
		StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusRescheduled,
	} {
		agenda := []models.Appointment{
			existing(1, status, at(10, 0), at(11, 0)),
		}
		assert.True(t, HasConflict(agenda, at(10, 0), at(11, 0), 0), "status %s", status)
	}
}

func TestHasConflictExcludesSelf(t *testing.T) {
	agenda := []models.Appointment{
		existing(7, StatusScheduled, at(10, 0), at(11, 0)),
		existing(8, StatusScheduled, at(13, 0), at(14, 0)),
	}

	// reagendar o próprio 7 dentro do mesmo horário não conflita
	assert.False(t, HasConflict(agenda, at(10, 30), at(11, 30), 7))

	// mas seguir para cima do 8 conflita
	assert.True(t, HasConflict(agenda, at(13, 30), at(14, 30), 7))
}

func TestHasConflictEmptyAgenda(t *testing.T) {
	assert.False(t, HasConflict(nil, at(9, 0), at(10, 0), 0))
}
