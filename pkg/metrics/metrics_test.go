package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("scheduler", reg)

	m.IncBookingsCreated()
	m.IncBookingsCreated()
	m.IncBookingConflicts()
	m.IncBookingsCancelled()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("scheduler")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingConflicts.WithLabelValues("scheduler")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsCancelled.WithLabelValues("scheduler")))
}

func TestMetrics_DBQueryErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("scheduler", reg)

	m.ObserveDBQuery("query_row", time.Millisecond, sql.ErrNoRows)
	m.ObserveDBQuery("exec", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 0.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("scheduler", "query_row")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("scheduler", "exec")))
}

func TestMetrics_HTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("scheduler", reg)

	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 409, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("scheduler", "POST", "/api/v1/bookings", "409")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingsCreated()
		m.IncBookingConflicts()
		m.IncBookingsCancelled()
		m.ObserveDBQuery("exec", time.Second, nil)
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.SetPoolStats(sql.DBStats{})
	})
}
