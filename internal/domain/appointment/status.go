package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "SCHEDULED"
	StatusConfirmed   Status = "CONFIRMED"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusNoShow      Status = "NO_SHOW"
	StatusRescheduled Status = "RESCHEDULED"
)

// nome de exibição usado pelo app e aceito no parse
var statusDisplay = map[Status]string{
	StatusScheduled:   "Agendada",
	StatusConfirmed:   "Confirmada",
	StatusInProgress:  "Em andamento",
	StatusCompleted:   "Concluída",
	StatusCancelled:   "Cancelada",
	StatusNoShow:      "Não compareceu",
	StatusRescheduled: "Reagendada",
}

var displayStatus = func() map[string]Status {
	m := make(map[string]Status, len(statusDisplay))
	for s, d := range statusDisplay {
		m[strings.ToLower(d)] = s
	}
	return m
}()

func (s Status) Display() string {
	return statusDisplay[s]
}

func (s Status) Valid() bool {
	_, ok := statusDisplay[s]
	return ok
}

// IsTerminal indica se o status não admite mais transições
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Blocks indica se o agendamento conta para conflito de horário
func (s Status) Blocks() bool {
	switch s {
	case StatusCancelled, StatusNoShow:
		return false
	}
	return true
}

// ParseStatus aceita o nome simbólico (SCHEDULED) ou o nome de
// exibição (Agendada), ambos sem distinção de maiúsculas
func ParseStatus(raw string) (Status, bool) {
	trimmed := strings.TrimSpace(raw)

	candidate := Status(strings.ToUpper(trimmed))
	if candidate.Valid() {
		return candidate, true
	}

	if s, ok := displayStatus[strings.ToLower(trimmed)]; ok {
		return s, true
	}

	return "", false
}

// ===============================
// Transições
// ===============================

// estados não terminais podem sempre cancelar e sempre reagendar;
// o restante segue a ordem natural do atendimento
var transitions = map[Status][]Status{
	StatusScheduled: {
		StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled,
	},
	StatusConfirmed: {
		StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled,
	},
	StatusInProgress: {
		StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled,
	},
	StatusRescheduled: {
		StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusNoShow, StatusRescheduled,
	},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
