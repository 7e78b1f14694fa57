package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all order-taking service metrics
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Workflow metrics
	OrdersPlaced       *prometheus.CounterVec
	PlaceOrderDuration *prometheus.HistogramVec

	// Event metrics
	EventsPublished *prometheus.CounterVec

	// Circuit breaker metrics
	CircuitBreakerTrips *prometheus.CounterVec
}

// Config holds metrics configuration
type Config struct {
	ServiceName string
	Namespace   string
}

// DefaultConfig returns default metrics configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName: serviceName,
		Namespace:   "ordertaking",
	}
}

// New creates a new Metrics instance
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		serviceName: config.ServiceName,
		registry:    registry,
	}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "path"},
	)

	m.OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of place-order runs by outcome",
		},
		[]string{"service", "outcome"},
	)

	m.PlaceOrderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "place_order_duration_seconds",
			Help:      "Place-order workflow duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"service"},
	)

	m.EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "events_published_total",
			Help:      "Total number of place-order events published",
		},
		[]string{"service", "event_type", "status"},
	)

	m.CircuitBreakerTrips = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "circuit_breaker_trips_total",
			Help:      "Total number of circuit breaker trips",
		},
		[]string{"service", "breaker"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.OrdersPlaced,
		m.PlaceOrderDuration,
		m.EventsPublished,
		m.CircuitBreakerTrips,
	)

	return m
}

// Handler returns the HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordOrderPlaced records a place-order run by outcome
func (m *Metrics) RecordOrderPlaced(outcome string) {
	m.OrdersPlaced.WithLabelValues(m.serviceName, outcome).Inc()
}

// ObservePlaceOrderDuration records the workflow duration
func (m *Metrics) ObservePlaceOrderDuration(duration time.Duration) {
	m.PlaceOrderDuration.WithLabelValues(m.serviceName).Observe(duration.Seconds())
}

// RecordEventPublished records an event publish attempt
func (m *Metrics) RecordEventPublished(eventType, status string) {
	m.EventsPublished.WithLabelValues(m.serviceName, eventType, status).Inc()
}

// RecordCircuitBreakerTrip records a circuit breaker trip
func (m *Metrics) RecordCircuitBreakerTrip(breaker string) {
	m.CircuitBreakerTrips.WithLabelValues(m.serviceName, breaker).Inc()
}
