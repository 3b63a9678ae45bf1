package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	bookingsCreated   *prometheus.CounterVec
	bookingConflicts  *prometheus.CounterVec
	bookingsCancelled *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of created bookings",
		}, []string{"service"}),
		bookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Total number of booking attempts rejected because of an overlapping booking",
		}, []string{"service"}),
		bookingsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total number of cancelled bookings",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.bookingsCreated,
		m.bookingConflicts,
		m.bookingsCancelled,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполнение запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetPoolStats обновляет метрики connection pool
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(stats.Idle))
}

// IncBookingsCreated увеличивает счётчик созданных бронирований
func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(m.serviceName).Inc()
}

// IncBookingConflicts увеличивает счётчик отклонённых из-за пересечения бронирований
func (m *Metrics) IncBookingConflicts() {
	if m == nil {
		return
	}
	m.bookingConflicts.WithLabelValues(m.serviceName).Inc()
}

// IncBookingsCancelled увеличивает счётчик отменённых бронирований
func (m *Metrics) IncBookingsCancelled() {
	if m == nil {
		return
	}
	m.bookingsCancelled.WithLabelValues(m.serviceName).Inc()
}
