package appointment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

func createScheduled(t *testing.T, repo *fakeRepo) *models.Appointment {
	t.Helper()

	ap, err := newCreateUC(repo).Execute(context.Background(), baseInput())
	require.NoError(t, err)
	return ap
}

func TestUpdateStatusHappyPath(t *testing.T) {
	repo := seededRepo()
	uc := NewUpdateStatus(repo, nil, nil)
	ctx := context.Background()

	ap := createScheduled(t, repo)

	for _, next := range []string{"CONFIRMED", "IN_PROGRESS", "COMPLETED"} {
		updated, err := uc.Execute(ctx, ap.ID, next, 1)
		require.NoError(t, err, "transição para %s", next)
		assert.Equal(t, next, updated.Status)
	}

	final, err := repo.GetAppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), final.Status)
	assert.NotNil(t, final.CompletedAt)
}

func TestUpdateStatusAcceptsDisplayName(t *testing.T) {
	repo := seededRepo()
	uc := NewUpdateStatus(repo, nil, nil)

	ap := createScheduled(t, repo)

	updated, err := uc.Execute(context.Background(), ap.ID, "Confirmada", 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), updated.Status)
}

func TestUpdateStatusUnknown(t *testing.T) {
	repo := seededRepo()
	uc := NewUpdateStatus(repo, nil, nil)

	ap := createScheduled(t, repo)

	_, err := uc.Execute(context.Background(), ap.ID, "FINISHED", 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
}

func TestUpdateStatusFromTerminal(t *testing.T) {
	repo := seededRepo()
	uc := NewUpdateStatus(repo, nil, nil)
	ctx := context.Background()

	ap := createScheduled(t, repo)

	_, err := uc.Execute(ctx, ap.ID, "COMPLETED", 1)
	require.NoError(t, err)

	// concluído não volta a lugar nenhum
	for _, next := range []string{"SCHEDULED", "CONFIRMED", "CANCELLED", "RESCHEDULED"} {
		_, err := uc.Execute(ctx, ap.ID, next, 1)
		require.Error(t, err, "transição para %s deveria falhar", next)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := seededRepo()
	uc := NewUpdateStatus(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 999, "CONFIRMED", 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestCancelAppointment(t *testing.T) {
	repo := seededRepo()
	uc := NewCancelAppointment(repo, nil, nil)

	ap := createScheduled(t, repo)

	cancelled, err := uc.Execute(context.Background(), ap.ID, "", 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Empty(t, cancelled.Notes)
}

func TestCancelAppointmentWithReason(t *testing.T) {
	repo := seededRepo()
	uc := NewCancelAppointment(repo, nil, nil)

	ap := createScheduled(t, repo)

	cancelled, err := uc.Execute(context.Background(), ap.ID, "Cliente desistiu da visita", 1)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(cancelled.Notes, "Cancelada: Cliente desistiu da visita"))
}

func TestCancelAppointmentTwice(t *testing.T) {
	repo := seededRepo()
	uc := NewCancelAppointment(repo, nil, nil)
	ctx := context.Background()

	ap := createScheduled(t, repo)

	_, err := uc.Execute(ctx, ap.ID, "", 1)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, ap.ID, "", 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "already_cancelled"))
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
}

func TestDeleteAppointment(t *testing.T) {
	repo := seededRepo()
	uc := NewDeleteAppointment(repo, nil)
	ctx := context.Background()

	ap := createScheduled(t, repo)

	removed, err := uc.Execute(ctx, ap.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, removed.ID)

	_, err = repo.GetAppointmentByID(ctx, ap.ID)
	assert.Error(t, err)
}
