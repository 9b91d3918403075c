package reminder

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/logging"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/notify"
)

// Job envia lembretes de agendamentos confirmados que começam em
// cerca de uma hora. Roda a cada minuto.
type Job struct {
	db     *gorm.DB
	notify *notify.Dispatcher
	log    *logging.Logger

	// o cron dispara cada execução em goroutine própria; uma rodada
	// lenta pode sobrepor a seguinte, então o controle de enviados
	// fica atrás do mutex
	mu       sync.Mutex
	notified map[uint]time.Time
}

func NewJob(db *gorm.DB, dispatcher *notify.Dispatcher, log *logging.Logger) *Job {
	return &Job{
		db:       db,
		notify:   dispatcher,
		log:      log,
		notified: make(map[uint]time.Time),
	}
}

func (j *Job) Start() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("* * * * *", j.run); err != nil {
		j.log.Error("failed to register reminder job", "error", err)
		return c
	}

	c.Start()
	j.log.Info("reminder job started")
	return c
}

func (j *Job) run() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var appointments []models.Appointment
	err := j.db.
		Preload("Client").
		Where(
			"status = ? AND start_time BETWEEN ? AND ?",
			string(domain.StatusConfirmed),
			startWindow,
			endWindow,
		).
		Find(&appointments).Error
	if err != nil {
		j.log.Error("reminder query failed", "error", err)
		return
	}

	for _, ap := range appointments {
		if j.alreadyNotified(ap.ID) {
			continue
		}

		recipient := ap.ClientEmail
		if ap.Client != nil && ap.Client.Email != "" {
			recipient = ap.Client.Email
		}

		j.notify.Dispatch(notify.Event{
			Kind:           "appointment_reminder",
			AppointmentID:  ap.ID,
			RecipientEmail: recipient,
			Subject:        "Lembrete de agendamento",
			Body: "Seu agendamento \"" + ap.Title + "\" começa às " +
				ap.StartTime.Format("15:04") + ".",
		})

		j.markNotified(ap.ID, now)
	}

	j.pruneNotified(now)
}

func (j *Job) alreadyNotified(id uint) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	_, done := j.notified[id]
	return done
}

func (j *Job) markNotified(id uint, at time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.notified[id] = at
}

// não deixa o controle de enviados crescer sem limite
func (j *Job) pruneNotified(now time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for id, at := range j.notified {
		if now.Sub(at) > 2*time.Hour {
			delete(j.notified, id)
		}
	}
}
