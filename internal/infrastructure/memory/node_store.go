// Package memory is an in-process pathway node store used for local
// development, the static site source and tests.
package memory

import (
	"context"
	"sync"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// NodeStore keeps rows in insertion order; ListByPosition sorts a copy.
type NodeStore struct {
	mu    sync.RWMutex
	nodes []pathway.Node
}

// NewNodeStore creates a store holding copies of nodes.
func NewNodeStore(nodes []pathway.Node) *NodeStore {
	return &NodeStore{nodes: pathway.CloneAll(nodes)}
}

// ListByPosition implements repository.NodeStore.
func (s *NodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := pathway.CloneAll(s.nodes)
	s.mu.RUnlock()

	pathway.SortByPosition(out)
	return out, nil
}

// UpdateByID implements repository.NodeStore.
func (s *NodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.nodes {
		if s.nodes[i].ID != node.ID {
			continue
		}
		s.nodes[i] = node.Clone()
		updated := s.nodes[i].Clone()
		return &updated, nil
	}
	return nil, repository.ErrNodeNotFound(node.ID)
}

// Seed implements repository.Seeder. It refuses to add to a non-empty store.
func (s *NodeStore) Seed(ctx context.Context, nodes []pathway.Node) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.nodes) > 0 {
		return 0, nil
	}
	s.nodes = pathway.CloneAll(nodes)
	return len(nodes), nil
}

// Replace swaps the whole collection, used when a content file reloads.
func (s *NodeStore) Replace(nodes []pathway.Node) {
	s.mu.Lock()
	s.nodes = pathway.CloneAll(nodes)
	s.mu.Unlock()
}

// Snapshot returns the rows in insertion order.
func (s *NodeStore) Snapshot() []pathway.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pathway.CloneAll(s.nodes)
}
