package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLifecycle("approve", OutcomeSuccess)
		m.RecordImportRows(1, 2)
		m.RecordMail("welcome", nil)
		m.RecordAccountCreated()
		m.RecordPanic()
	})
}

func TestRecorders(t *testing.T) {
	m := New()

	m.RecordLifecycle("approve", OutcomeSuccess)
	m.RecordLifecycle("approve", OutcomeSuccess)
	m.RecordLifecycle("reject", OutcomeNotFound)
	m.RecordImportRows(3, 1)
	m.RecordMail("agent", errors.New("smtp down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LifecycleTransitionsTotal.WithLabelValues("approve", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LifecycleTransitionsTotal.WithLabelValues("reject", OutcomeNotFound)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.BulkImportRowsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BulkImportRowsTotal.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MailSendsTotal.WithLabelValues("agent", OutcomeFailure)))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.RecordAccountCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "nexus_sentinel_accounts_created_total 1"))
}

func TestRegistryGathersDurationHistogram(t *testing.T) {
	m := New()
	m.HTTPRequestDurationSeconds.WithLabelValues(http.MethodGet, "/health").Observe(0.02)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var duration *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "nexus_sentinel_http_request_duration_seconds" {
			duration = mf
		}
	}
	require.NotNil(t, duration)
	assert.Equal(t, dto.MetricType_HISTOGRAM, duration.GetType())
	require.Len(t, duration.GetMetric(), 1)
	assert.Equal(t, uint64(1), duration.GetMetric()[0].GetHistogram().GetSampleCount())
}
