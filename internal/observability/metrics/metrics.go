package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AppointmentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realty_appointments_created_total",
		Help: "Agendamentos criados, particionados por origem.",
	}, []string{"source"})

	SchedulingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "realty_scheduling_conflicts_total",
		Help: "Tentativas de criação/reagendamento recusadas por conflito.",
	})

	AvailabilityQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "realty_availability_queries_total",
		Help: "Consultas de slots disponíveis.",
	})
)
