package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtrioImoveis/realty-scheduler/internal/agentlock"
	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
)

func newRescheduleUC(repo *fakeRepo) *RescheduleAppointment {
	return NewRescheduleAppointment(repo, agentlock.New(), nil, nil)
}

func TestRescheduleAppointment(t *testing.T) {
	repo := seededRepo()
	uc := newRescheduleUC(repo)

	ap := createScheduled(t, repo)

	updated, err := uc.Execute(context.Background(), ap.ID, RescheduleInput{
		Date: futureDate(),
		Time: "14:00",
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRescheduled), updated.Status)
	assert.Equal(t, "14:00", updated.StartTime.Format("15:04"))
	assert.Equal(t, ap.DurationMin, updated.DurationMin)
	assert.Equal(t, updated.StartTime.Add(time.Duration(updated.DurationMin)*time.Minute), updated.EndTime)
}

func TestRescheduleKeepsOwnSlot(t *testing.T) {
	repo := seededRepo()
	uc := newRescheduleUC(repo)

	ap := createScheduled(t, repo) // 10:00-11:00

	// deslocar meia hora sobre o próprio horário não conflita
	updated, err := uc.Execute(context.Background(), ap.ID, RescheduleInput{
		Date: futureDate(),
		Time: "10:30",
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "10:30", updated.StartTime.Format("15:04"))
}

func TestRescheduleConflictsWithOther(t *testing.T) {
	repo := seededRepo()
	createUC := newCreateUC(repo)
	uc := newRescheduleUC(repo)
	ctx := context.Background()

	createScheduled(t, repo) // ocupa 10:00-11:00

	in := baseInput()
	in.Time = "13:00"
	second, err := createUC.Execute(ctx, in)
	require.NoError(t, err)

	// empurrar o segundo para cima do primeiro falha
	_, err = uc.Execute(ctx, second.ID, RescheduleInput{
		Date: futureDate(),
		Time: "10:30",
	}, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestRescheduleWithNewDuration(t *testing.T) {
	repo := seededRepo()
	uc := newRescheduleUC(repo)

	ap := createScheduled(t, repo)

	ninety := 90
	updated, err := uc.Execute(context.Background(), ap.ID, RescheduleInput{
		Date:        futureDate(),
		Time:        "15:00",
		DurationMin: &ninety,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 90, updated.DurationMin)

	bad := 0
	_, err = uc.Execute(context.Background(), ap.ID, RescheduleInput{
		Date:        futureDate(),
		Time:        "16:00",
		DurationMin: &bad,
	}, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}

func TestRescheduleIntoPast(t *testing.T) {
	repo := seededRepo()
	uc := newRescheduleUC(repo)

	ap := createScheduled(t, repo)

	_, err := uc.Execute(context.Background(), ap.ID, RescheduleInput{
		Date: "2020-01-01",
		Time: "10:00",
	}, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "start_in_past"))
}

func TestRescheduleFromTerminal(t *testing.T) {
	repo := seededRepo()
	cancelUC := NewCancelAppointment(repo, nil, nil)
	uc := newRescheduleUC(repo)
	ctx := context.Background()

	ap := createScheduled(t, repo)

	_, err := cancelUC.Execute(ctx, ap.ID, "", 1)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, ap.ID, RescheduleInput{
		Date: futureDate(),
		Time: "14:00",
	}, 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}
