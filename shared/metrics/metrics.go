package metrics

import (
	"net/http"
	"strconv"
	"time"

	"kwagala/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kwagala"

const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

// Metrics owns a private registry instead of the global default one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	bookingsCreated   *prometheus.CounterVec
	bookingsDeleted   prometheus.Counter
	notifications     *prometheus.CounterVec
	adminVerification *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bookingsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Bookings persisted, by location.",
			},
			[]string{"location"},
		),
		bookingsDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_deleted_total",
				Help:      "Bookings removed by an admin.",
			},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_notifications_total",
				Help:      "Admin booking emails by outcome.",
			},
			[]string{"outcome"},
		),
		adminVerification: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admin_pass_checks_total",
				Help:      "Admin pass verifications by result.",
			},
			[]string{"allowed"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingsCreated,
		m.bookingsDeleted,
		m.notifications,
		m.adminVerification,
	)

	if cfg.Metrics.Enable {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingCreated(location string) {
	m.bookingsCreated.WithLabelValues(location).Inc()
}

func (m *Metrics) BookingDeleted() {
	m.bookingsDeleted.Inc()
}

func (m *Metrics) Notification(outcome string) {
	m.notifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AdminVerification(allowed bool) {
	m.adminVerification.WithLabelValues(strconv.FormatBool(allowed)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
