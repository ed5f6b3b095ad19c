package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tiene su propio registry (no el global) para que los tests no choquen.
type Metrics struct {
	reg *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	reminderScans prometheus.Counter
	remindersSent prometheus.Counter

	entities *prometheus.GaugeVec
}

func New(namespace string) *Metrics {
	ns := sanitize(namespace)
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reminderScans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "reminder_scans_total",
			Help:      "Reminder scans executed.",
		}),
		remindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "reminders_delivered_total",
			Help:      "Reminders delivered to at least one notifier.",
		}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "registry_entities",
			Help:      "Entities held in memory by kind.",
		}, []string{"kind"}),
	}

	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.reminderScans,
		m.remindersSent,
		m.entities,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) ObserveScan(delivered int) {
	m.reminderScans.Inc()
	m.remindersSent.Add(float64(delivered))
}

func (m *Metrics) SetEntities(animals, bookings, expenses int) {
	m.entities.WithLabelValues("animals").Set(float64(animals))
	m.entities.WithLabelValues("bookings").Set(float64(bookings))
	m.entities.WithLabelValues("expenses").Set(float64(expenses))
}

// sanitize deja el namespace en [a-z0-9_].
func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
