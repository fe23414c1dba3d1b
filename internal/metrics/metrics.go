package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nexus_sentinel"

// Metrics owns a private Prometheus registry and the collectors recorded by the
// HTTP layer and services. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec
	ConcurrentRequests         prometheus.Gauge
	PanicRecoveriesTotal       prometheus.Counter

	LifecycleTransitionsTotal *prometheus.CounterVec
	BulkImportRowsTotal       *prometheus.CounterVec
	MailSendsTotal            *prometheus.CounterVec
	AccountsCreatedTotal      prometheus.Counter
}

// New builds and registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),

		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"method", "endpoint"}),

		ConcurrentRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_concurrent_requests",
			Help:      "Number of HTTP requests currently being served",
		}),

		PanicRecoveriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "panic_recoveries_total",
			Help:      "Total number of recovered handler panics",
		}),

		LifecycleTransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "endpoint_lifecycle_transitions_total",
			Help:      "Endpoint device lifecycle operations by action and outcome",
		}, []string{"action", "outcome"}),

		BulkImportRowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_import_rows_total",
			Help:      "Rows processed by bulk import by outcome",
		}, []string{"outcome"}),

		MailSendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mail_sends_total",
			Help:      "Outgoing mail attempts by template and outcome",
		}, []string{"template", "outcome"}),

		AccountsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_created_total",
			Help:      "Organization owner accounts created through signup",
		}),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.ConcurrentRequests,
		m.PanicRecoveriesTotal,
		m.LifecycleTransitionsTotal,
		m.BulkImportRowsTotal,
		m.MailSendsTotal,
		m.AccountsCreatedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeNotFound = "not_found"
)

func (m *Metrics) RecordLifecycle(action, outcome string) {
	if m == nil {
		return
	}
	m.LifecycleTransitionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) RecordImportRows(succeeded, failed int) {
	if m == nil {
		return
	}
	m.BulkImportRowsTotal.WithLabelValues(OutcomeSuccess).Add(float64(succeeded))
	m.BulkImportRowsTotal.WithLabelValues(OutcomeFailure).Add(float64(failed))
}

func (m *Metrics) RecordMail(template string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.MailSendsTotal.WithLabelValues(template, outcome).Inc()
}

func (m *Metrics) RecordAccountCreated() {
	if m == nil {
		return
	}
	m.AccountsCreatedTotal.Inc()
}

func (m *Metrics) RecordPanic() {
	if m == nil {
		return
	}
	m.PanicRecoveriesTotal.Inc()
}
