package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Каждый экземпляр использует собственный реестр, поэтому его можно создавать в тестах многократно
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreated      *prometheus.CounterVec
	availabilityConflict prometheus.Counter
	availabilityChecks   *prometheus.CounterVec
	guestsCreated        prometheus.Counter
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Number of bookings created, by room category",
			ConstLabels: labels,
		}, []string{"category"}),
		availabilityConflict: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_availability_conflicts_total",
			Help:        "Number of booking attempts rejected because the room was taken",
			ConstLabels: labels,
		}),
		availabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "room_availability_checks_total",
			Help:        "Number of advisory availability checks, by result",
			ConstLabels: labels,
		}, []string{"available"}),
		guestsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "guests_created_total",
			Help:        "Number of new guest records",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsCreated,
		m.availabilityConflict,
		m.availabilityChecks,
		m.guestsCreated,
	)

	return m
}

// Handler возвращает HTTP handler для отдачи метрик в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated(category string) {
	m.bookingsCreated.WithLabelValues(category).Inc()
}

// BookingConflict увеличивает счетчик отказов из-за занятости номера
func (m *Metrics) BookingConflict() {
	m.availabilityConflict.Inc()
}

// AvailabilityChecked фиксирует результат advisory проверки доступности
func (m *Metrics) AvailabilityChecked(available bool) {
	m.availabilityChecks.WithLabelValues(strconv.FormatBool(available)).Inc()
}

// GuestCreated увеличивает счетчик новых гостей
func (m *Metrics) GuestCreated() {
	m.guestsCreated.Inc()
}

// Nop реализация без сбора метрик (когда метрики выключены в конфиге)
type Nop struct{}

func (Nop) BookingCreated(string)    {}
func (Nop) BookingConflict()         {}
func (Nop) AvailabilityChecked(bool) {}
func (Nop) GuestCreated()            {}
