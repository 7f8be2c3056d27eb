package observability

import (
	"context"
	"time"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// InstrumentedNodeStore records the count, outcome and latency of store calls.
type InstrumentedNodeStore struct {
	inner     repository.NodeStore
	collector *Collector
	driver    string
}

// NewInstrumentedNodeStore wraps inner.
func NewInstrumentedNodeStore(inner repository.NodeStore, collector *Collector, driver string) *InstrumentedNodeStore {
	return &InstrumentedNodeStore{inner: inner, collector: collector, driver: driver}
}

// ListByPosition implements repository.NodeStore.
func (s *InstrumentedNodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	start := time.Now()
	nodes, err := s.inner.ListByPosition(ctx)
	s.observe("list", start, err)
	if err == nil {
		s.collector.NodesListed.Set(float64(len(nodes)))
	}
	return nodes, err
}

// UpdateByID implements repository.NodeStore.
func (s *InstrumentedNodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	start := time.Now()
	updated, err := s.inner.UpdateByID(ctx, node)
	s.observe("update", start, err)
	return updated, err
}

func (s *InstrumentedNodeStore) observe(operation string, start time.Time, err error) {
	s.collector.StoreOperations.WithLabelValues(operation, s.driver, outcome(err)).Inc()
	s.collector.StoreDuration.WithLabelValues(operation, s.driver).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case appErrors.IsNotFound(err):
		return "not_found"
	case appErrors.IsUnavailable(err):
		return "unavailable"
	default:
		return "error"
	}
}
