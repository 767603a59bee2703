package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - коллекторы Prometheus для backend дашборда
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // метки: method, route, status
	HTTPDuration *prometheus.HistogramVec // метки: method, route

	IncidentsReported prometheus.Counter
	IncidentsCleared  prometheus.Counter
	FirefightersAdded prometheus.Counter

	StatsCache *prometheus.CounterVec // метки: result={hit,miss,error}
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_dashboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fire_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		IncidentsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_dashboard",
			Name:      "incidents_reported_total",
			Help:      "Incidents created through the API.",
		}),
		IncidentsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_dashboard",
			Name:      "incidents_cleared_total",
			Help:      "Incidents moved from Active to Cleared.",
		}),
		FirefightersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_dashboard",
			Name:      "firefighters_added_total",
			Help:      "Firefighters added to the roster.",
		}),
		StatsCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_dashboard",
			Name:      "stats_cache_total",
			Help:      "Stats snapshot cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.IncidentsReported,
		m.IncidentsCleared,
		m.FirefightersAdded,
		m.StatsCache,
	)

	return m
}

// NewMetricsForTesting создает Metrics без регистрации, чтобы тесты могли
// создавать их сколько угодно.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_dashboard", Name: "http_requests_total"}, []string{"method", "route", "status"}),
		HTTPDuration:      prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "fire_dashboard", Name: "http_request_duration_seconds"}, []string{"method", "route"}),
		IncidentsReported: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_dashboard", Name: "incidents_reported_total"}),
		IncidentsCleared:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_dashboard", Name: "incidents_cleared_total"}),
		FirefightersAdded: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_dashboard", Name: "firefighters_added_total"}),
		StatsCache:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_dashboard", Name: "stats_cache_total"}, []string{"result"}),
	}
}
