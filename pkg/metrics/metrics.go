package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы бронирования и выезда для счетчиков
const (
	OutcomeCreated          = "created"
	OutcomeValidationError  = "validation_error"
	OutcomeNoCapacity       = "no_capacity"
	OutcomeConflictRetry    = "conflict_retry"
	OutcomeError            = "error"
	OutcomeCompleted        = "completed"
	OutcomeNotFound         = "not_found"
	OutcomeAlreadyCompleted = "already_completed"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	BookingsTotal  *prometheus.CounterVec
	CheckoutsTotal *prometheus.CounterVec
	OccupancyRate  *prometheus.GaugeVec
	ActiveAlerts   *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает метрики в указанном registry (используется в тестах)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "operation"},
		),
		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "db_connections",
				Help: "Database connection pool state",
			},
			[]string{"service", "state"},
		),
		BookingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parking_bookings_total",
				Help: "Total number of booking attempts by outcome",
			},
			[]string{"service", "outcome"},
		),
		CheckoutsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parking_checkouts_total",
				Help: "Total number of checkout attempts by outcome",
			},
			[]string{"service", "outcome"},
		),
		OccupancyRate: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "parking_occupancy_rate_percent",
				Help: "Occupancy rate computed on the last dashboard evaluation",
			},
			[]string{"service"},
		),
		ActiveAlerts: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "parking_active_alerts",
				Help: "Alerts produced by the last evaluation by kind",
			},
			[]string{"service", "kind"},
		),
	}
}

// ServiceName возвращает имя сервиса, используемое в label
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// RecordHTTPRequest учитывает HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordDBQuery учитывает длительность запроса к БД
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBConnections выставляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	m.DBConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.DBConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// RecordBooking учитывает попытку бронирования
func (m *Metrics) RecordBooking(outcome string) {
	m.BookingsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

// RecordCheckout учитывает попытку выезда
func (m *Metrics) RecordCheckout(outcome string) {
	m.CheckoutsTotal.WithLabelValues(m.serviceName, outcome).Inc()
}

// SetOccupancy выставляет текущую загрузку парковки
func (m *Metrics) SetOccupancy(rate float64) {
	m.OccupancyRate.WithLabelValues(m.serviceName).Set(rate)
}

// SetActiveAlerts выставляет количество алертов по типам
// Типы, которых нет в counts, обнуляются
func (m *Metrics) SetActiveAlerts(kinds []string, counts map[string]int) {
	for _, kind := range kinds {
		m.ActiveAlerts.WithLabelValues(m.serviceName, kind).Set(float64(counts[kind]))
	}
}
