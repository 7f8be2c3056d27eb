// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
)

// MockNodeStore mocks repository.NodeStore.
type MockNodeStore struct {
	mock.Mock
}

// ListByPosition implements repository.NodeStore.
func (m *MockNodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	args := m.Called(ctx)
	if nodes := args.Get(0); nodes != nil {
		return nodes.([]pathway.Node), args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateByID implements repository.NodeStore.
func (m *MockNodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	args := m.Called(ctx, node)
	if updated := args.Get(0); updated != nil {
		return updated.(*pathway.Node), args.Error(1)
	}
	return nil, args.Error(1)
}
