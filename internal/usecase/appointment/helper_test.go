package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/AtrioImoveis/realty-scheduler/internal/agentlock"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

var errFakeNotFound = errors.New("not found")

// fakeRepo guarda tudo em memória, protegido por mutex para os
// testes de concorrência.
type fakeRepo struct {
	mu sync.Mutex

	agencies     map[uint]*models.Agency
	agents       map[uint]*models.Agent
	clients      map[uint]*models.Client
	properties   map[uint]*models.Property
	appointments map[uint]*models.Appointment

	nextID uint

	// contadores por variante de leitura da agenda, para verificar
	// qual caminho cada use case usa
	plainListCalls  int
	lockedListCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		agencies:     make(map[uint]*models.Agency),
		agents:       make(map[uint]*models.Agent),
		clients:      make(map[uint]*models.Client),
		properties:   make(map[uint]*models.Property),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (r *fakeRepo) GetAgencyByID(_ context.Context, id uint) (*models.Agency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.agencies[id]; ok {
		return a, nil
	}
	return nil, errFakeNotFound
}

func (r *fakeRepo) GetAgentByID(_ context.Context, id uint) (*models.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.agents[id]; ok {
		return a, nil
	}
	return nil, errFakeNotFound
}

func (r *fakeRepo) GetClientByID(_ context.Context, agencyID, clientID uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clients[clientID]; ok && c.AgencyID == agencyID {
		return c, nil
	}
	return nil, errFakeNotFound
}

func (r *fakeRepo) GetPropertyByID(_ context.Context, id uint) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.properties[id]; ok {
		return p, nil
	}
	return nil, errFakeNotFound
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap.ID = r.nextID
	r.nextID++
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap, ok := r.appointments[id]; ok {
		copied := *ap
		return &copied, nil
	}
	return nil, errFakeNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return errFakeNotFound
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return errFakeNotFound
	}
	delete(r.appointments, ap.ID)
	return nil
}

func (r *fakeRepo) ListAppointmentsByAgent(_ context.Context, agentID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plainListCalls++
	return r.listByAgentLocked(agentID), nil
}

func (r *fakeRepo) ListAppointmentsByAgentForUpdate(_ context.Context, agentID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lockedListCalls++
	return r.listByAgentLocked(agentID), nil
}

// chamar só com r.mu já adquirido
func (r *fakeRepo) listByAgentLocked(agentID uint) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.AgentID == agentID {
			out = append(out, *ap)
		}
	}
	return out
}

func (r *fakeRepo) ListAppointmentsForRange(_ context.Context, agentID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.AgentID == agentID && !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// ======================================================
// Cenário padrão
// ======================================================

const (
	testAgencyID   = uint(1)
	testClientID   = uint(10)
	testPropertyID = uint(20)
)

// três corretores, espelhando o pool padrão
var testPool = []uint{1, 2, 3}

func seededRepo() *fakeRepo {
	repo := newFakeRepo()

	repo.agencies[testAgencyID] = &models.Agency{
		ID:                testAgencyID,
		Name:              "Atrio Imóveis",
		Slug:              "atrio",
		Timezone:          "UTC",
		MinAdvanceMinutes: 120,
	}

	for _, id := range testPool {
		repo.agents[id] = &models.Agent{
			ID:       id,
			AgencyID: testAgencyID,
			Name:     "Corretor",
			Email:    "corretor@atrio.test",
		}
	}

	repo.clients[testClientID] = &models.Client{
		ID:       testClientID,
		AgencyID: testAgencyID,
		Name:     "Maria",
		Email:    "maria@cliente.test",
	}

	repo.properties[testPropertyID] = &models.Property{
		ID:       testPropertyID,
		AgencyID: testAgencyID,
		Title:    "Apartamento Centro",
		Address:  "Rua das Flores, 100",
		Active:   true,
	}

	return repo
}

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(repo, agentlock.New(), nil, nil, 120)
}

// data segura contra a antecedência mínima de 120 minutos
func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func baseInput() CreateAppointmentInput {
	clientID := testClientID
	propertyID := testPropertyID

	return CreateAppointmentInput{
		AgencyID:    testAgencyID,
		AgentID:     1,
		ClientID:    &clientID,
		PropertyID:  &propertyID,
		Title:       "Visita ao apartamento",
		Type:        "PROPERTY_VISIT",
		Date:        futureDate(),
		Time:        "10:00",
		DurationMin: 60,
	}
}
