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

func TestCreateAppointment(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, 60, ap.DurationMin)
	assert.Equal(t, ap.StartTime.Add(time.Hour), ap.EndTime)
	assert.False(t, ap.IsPublic)

	// a checagem de conflito do caminho de escrita lê a agenda com
	// lock de linha
	assert.Equal(t, 1, repo.lockedListCalls)
	assert.Zero(t, repo.plainListCalls)
}

func TestCreateAppointmentLeadTimeFallback(t *testing.T) {
	repo := seededRepo()

	// imobiliária sem antecedência própria cai no padrão configurado
	repo.agencies[testAgencyID].MinAdvanceMinutes = 0

	// padrão maior que a janela de sete dias usada nos cenários
	uc := NewCreateAppointment(repo, agentlock.New(), nil, nil, 8*24*60)

	_, err := uc.Execute(context.Background(), baseInput())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))

	uc = NewCreateAppointment(repo, agentlock.New(), nil, nil, 120)
	_, err = uc.Execute(context.Background(), baseInput())
	assert.NoError(t, err)
}

func TestCreateAppointmentConflict(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, baseInput())
	require.NoError(t, err)

	// 10:30-11:30 invade 10:00-11:00
	in := baseInput()
	in.Time = "10:30"
	_, err = uc.Execute(ctx, in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	// 11:00-12:00 encosta mas não invade
	in = baseInput()
	in.Time = "11:00"
	_, err = uc.Execute(ctx, in)
	assert.NoError(t, err)
}

func TestCreateAppointmentOtherAgentNoConflict(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, baseInput())
	require.NoError(t, err)

	// mesmo horário, corretor diferente
	in := baseInput()
	in.AgentID = 2
	_, err = uc.Execute(ctx, in)
	assert.NoError(t, err)
}

func TestCreateAppointmentAfterCancellation(t *testing.T) {
	repo := seededRepo()
	createUC := newCreateUC(repo)
	cancelUC := NewCancelAppointment(repo, nil, nil)
	ctx := context.Background()

	first, err := createUC.Execute(ctx, baseInput())
	require.NoError(t, err)

	_, err = cancelUC.Execute(ctx, first.ID, "", 1)
	require.NoError(t, err)

	// horário liberado pelo cancelamento pode ser reocupado
	_, err = createUC.Execute(ctx, baseInput())
	assert.NoError(t, err)
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*CreateAppointmentInput)
		wantCode string
	}{
		{"sem titulo", func(in *CreateAppointmentInput) { in.Title = "" }, "missing_title"},
		{"tipo invalido", func(in *CreateAppointmentInput) { in.Type = "HAIRCUT" }, "invalid_type"},
		{"local invalido", func(in *CreateAppointmentInput) { in.LocationType = "MOON" }, "invalid_location_type"},
		{"duracao zero", func(in *CreateAppointmentInput) { in.DurationMin = 0 }, "invalid_duration"},
		{"corretor inexistente", func(in *CreateAppointmentInput) { in.AgentID = 99 }, "agent_not_found"},
		{"sem cliente", func(in *CreateAppointmentInput) { in.ClientID = nil }, "missing_client"},
		{"imovel inexistente", func(in *CreateAppointmentInput) { id := uint(99); in.PropertyID = &id }, "property_not_found"},
		{"data invalida", func(in *CreateAppointmentInput) { in.Date = "14/09/2026" }, "invalid_date_or_time"},
		{"hora invalida", func(in *CreateAppointmentInput) { in.Time = "25:99" }, "invalid_date_or_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mutate(&in)

			_, err := uc.Execute(ctx, in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "esperado %s, veio %v", tt.wantCode, err)
		})
	}
}

func TestCreateAppointmentTooSoon(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	soon := time.Now().UTC().Add(30 * time.Minute)

	in := baseInput()
	in.Date = soon.Format("2006-01-02")
	in.Time = soon.Format("15:04")

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointmentUnknownClient(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	other := uint(77)
	in.ClientID = &other

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
}

func TestCreateAppointmentPublicRequiresContact(t *testing.T) {
	repo := seededRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.IsPublic = true
	in.ClientID = nil

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "missing_contact"))

	in.ClientPhone = "+55 11 99999-0000"
	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, ap.IsPublic)
	assert.Nil(t, ap.ClientID)
}
