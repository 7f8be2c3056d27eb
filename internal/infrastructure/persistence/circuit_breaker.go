// Package persistence holds decorators that wrap any repository.NodeStore.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// CircuitBreakerConfig holds configuration for the store circuit breaker.
type CircuitBreakerConfig struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// FailureThreshold is the failure ratio that trips the breaker once
	// MinRequests have been counted.
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultCircuitBreakerConfig returns a default configuration.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// CircuitBreakerNodeStore fails fast while the underlying store is unhealthy.
type CircuitBreakerNodeStore struct {
	inner   repository.NodeStore
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewCircuitBreakerNodeStore wraps inner with a breaker.
func NewCircuitBreakerNodeStore(inner repository.NodeStore, config CircuitBreakerConfig, logger *zap.Logger) *CircuitBreakerNodeStore {
	s := &CircuitBreakerNodeStore{inner: inner, logger: logger}
	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < config.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= config.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		IsSuccessful: isSuccessful,
	})
	return s
}

// isSuccessful counts answers from a healthy store as successes. A missing
// row or a caller cancellation says nothing about the store's health.
func isSuccessful(err error) bool {
	switch {
	case err == nil:
		return true
	case appErrors.IsNotFound(err), appErrors.IsValidation(err):
		return true
	case errors.Is(err, context.Canceled):
		return true
	default:
		return false
	}
}

// State reports the breaker state.
func (s *CircuitBreakerNodeStore) State() gobreaker.State {
	return s.breaker.State()
}

// ListByPosition implements repository.NodeStore.
func (s *CircuitBreakerNodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.inner.ListByPosition(ctx)
	})
	if err != nil {
		return nil, s.translate(err)
	}
	return result.([]pathway.Node), nil
}

// UpdateByID implements repository.NodeStore.
func (s *CircuitBreakerNodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.inner.UpdateByID(ctx, node)
	})
	if err != nil {
		return nil, s.translate(err)
	}
	return result.(*pathway.Node), nil
}

func (s *CircuitBreakerNodeStore) translate(err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		s.logger.Debug("Circuit breaker is OPEN, rejecting store call", zap.String("breaker", s.breaker.Name()))
		return appErrors.NewUnavailableError("pathway store").WithCode("CIRCUIT_OPEN").WithCause(err)
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return appErrors.NewUnavailableError("pathway store").WithCode("CIRCUIT_HALF_OPEN").WithCause(err)
	default:
		return err
	}
}
