package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kwagala/config"
	"kwagala/shared/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New(&config.Config{})

	m.BookingCreated("CBD")
	m.BookingCreated("CBD")
	m.BookingCreated("Naka")
	m.BookingDeleted()
	m.Notification(metrics.OutcomeSent)
	m.Notification(metrics.OutcomeFailed)
	m.AdminVerification(false)

	expected := `
# HELP kwagala_bookings_created_total Bookings persisted, by location.
# TYPE kwagala_bookings_created_total counter
kwagala_bookings_created_total{location="CBD"} 2
kwagala_bookings_created_total{location="Naka"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "kwagala_bookings_created_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "kwagala_booking_notifications_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Handler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Enable = true

	m := metrics.New(cfg)
	m.ObserveHTTP(http.MethodPost, "/api/bookings/", http.StatusCreated, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `kwagala_http_requests_total{method="POST",route="/api/bookings/",status="201"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
