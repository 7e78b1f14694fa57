package resilience

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when the breaker rejects a call without
// attempting it.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Circuit breaker default configuration values
const (
	DefaultMaxRequests      uint32        = 3
	DefaultInterval         time.Duration = 60 * time.Second
	DefaultTimeout          time.Duration = 30 * time.Second
	DefaultFailureThreshold uint32        = 5
)

// CircuitBreakerConfig holds configuration for a circuit breaker
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // Maximum number of requests allowed in half-open state
	Interval         time.Duration // Time interval to clear failure count (0 = never clear)
	Timeout          time.Duration // How long to wait before transitioning from open to half-open
	FailureThreshold uint32        // Consecutive failures to trip the circuit
}

// DefaultCircuitBreakerConfig returns sensible defaults
func DefaultCircuitBreakerConfig(name string) *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      DefaultMaxRequests,
		Interval:         DefaultInterval,
		Timeout:          DefaultTimeout,
		FailureThreshold: DefaultFailureThreshold,
	}
}

// CircuitBreaker wraps gobreaker with logging and an optional trip hook
type CircuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	name   string
	logger *slog.Logger
}

// NewCircuitBreaker creates a new circuit breaker. onTrip, when non-nil, is
// invoked each time the breaker opens.
func NewCircuitBreaker(config *CircuitBreakerConfig, logger *slog.Logger, onTrip func(name string)) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
			if to == gobreaker.StateOpen && onTrip != nil {
				onTrip(name)
			}
		},
	}

	return &CircuitBreaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		name:   config.Name,
		logger: logger,
	}
}

// Execute runs fn through the breaker
func (b *CircuitBreaker) Execute(fn func() (any, error)) (any, error) {
	result, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrCircuitOpen
	}
	return result, err
}

// State returns the current breaker state
func (b *CircuitBreaker) State() gobreaker.State {
	return b.cb.State()
}

// Name returns the breaker name
func (b *CircuitBreaker) Name() string {
	return b.name
}
