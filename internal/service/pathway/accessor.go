// Package pathway is the content store accessor. It turns the row store's
// errors into empty or absent results so renderers never handle failures.
package pathway

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// Operation names the accessor call that failed.
type Operation string

const (
	OperationList   Operation = "list_nodes"
	OperationUpdate Operation = "update_node"
)

// Reporter receives failures the accessor swallowed.
type Reporter interface {
	ReportFailure(op Operation, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(op Operation, err error)

// ReportFailure implements Reporter.
func (f ReporterFunc) ReportFailure(op Operation, err error) {
	f(op, err)
}

// Accessor reads and updates pathway nodes through a row store.
type Accessor struct {
	store    repository.NodeStore
	logger   *zap.Logger
	reporter Reporter
}

// NewAccessor creates an accessor over store.
func NewAccessor(store repository.NodeStore, logger *zap.Logger) *Accessor {
	return &Accessor{store: store, logger: logger}
}

// WithReporter returns a copy of the accessor that also reports failures to
// r. The receiver is not modified.
func (a *Accessor) WithReporter(r Reporter) *Accessor {
	clone := *a
	clone.reporter = r
	return &clone
}

// ListNodes returns every node ordered ascending by position. Any store
// failure is logged and reported and yields an empty, non-nil slice.
func (a *Accessor) ListNodes(ctx context.Context) []domain.Node {
	nodes, err := a.store.ListByPosition(ctx)
	if err != nil {
		a.fail(OperationList, err)
		return []domain.Node{}
	}
	if nodes == nil {
		return []domain.Node{}
	}

	if !domain.IsOrderedByPosition(nodes) {
		a.logger.Debug("Store returned nodes out of order, re-sorting", zap.Int("count", len(nodes)))
		domain.SortByPosition(nodes)
	}
	return nodes
}

// UpdateNode writes all fields of node to the row with node.ID and returns the
// row as stored. It returns nil when the store fails or no row matched.
func (a *Accessor) UpdateNode(ctx context.Context, node domain.Node) *domain.Node {
	updated, err := a.store.UpdateByID(ctx, node)
	if err != nil {
		a.fail(OperationUpdate, err, zap.String("node_id", node.ID))
		return nil
	}
	if updated == nil {
		a.logger.Warn("Store returned no row for update", zap.String("node_id", node.ID))
		return nil
	}
	return updated
}

func (a *Accessor) fail(op Operation, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("operation", string(op)), zap.Error(err))
	a.logger.Error("Pathway store call failed", fields...)
	if a.reporter != nil {
		a.reporter.ReportFailure(op, err)
	}
}
