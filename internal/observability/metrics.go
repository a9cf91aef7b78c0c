package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_preinscripcion_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// Registrations tracks registration attempts by outcome
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_preinscripcion_registrations_total",
			Help: "Number of registration attempts",
		},
		[]string{"status"},
	)

	// FichasRendered tracks PDF renders
	FichasRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_preinscripcion_fichas_rendered_total",
			Help: "Number of ficha PDF renders",
		},
		[]string{"layout", "status"},
	)

	// EmailsSent tracks ficha email deliveries
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_preinscripcion_emails_total",
			Help: "Number of ficha email deliveries",
		},
		[]string{"status"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_preinscripcion_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_preinscripcion_active_connections",
			Help: "Number of active connections",
		},
	)
)
