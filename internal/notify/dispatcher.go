package notify

import (
	"context"
	"time"

	"github.com/AtrioImoveis/realty-scheduler/internal/logging"
)

type Event struct {
	Kind          string
	AppointmentID uint
	ActorID       *uint
	ActorName     string

	RecipientEmail string
	Subject        string
	Body           string
}

// Sender entrega uma notificação. Falhas nunca chegam ao fluxo de
// agendamento: o dispatcher registra e descarta.
type Sender interface {
	Send(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sender Sender
	queue  chan Event
	log    *logging.Logger
}

func NewDispatcher(sender Sender, log *logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.Default()
	}

	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Event, 100),
		log:    log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := d.sender.Send(ctx, ev); err != nil {
			d.log.Error("notify error",
				"kind", ev.Kind,
				"appointment_id", ev.AppointmentID,
				"error", err,
			)
		}
		cancel()
	}
}

// Dispatch nunca bloqueia; fila cheia descarta a notificação
// em vez de segurar a requisição. Dispatcher nulo é no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notify queue full, dropping event", "kind", ev.Kind)
	}
}
