// Package repository defines the row store contract the pathway service reads
// from and writes to. The store itself is an opaque collaborator: every driver
// offers exactly an ordered read of all rows and an update by key.
package repository

import (
	"context"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
)

// NodeStore is the pathway_nodes row store.
type NodeStore interface {
	// ListByPosition returns every node ordered ascending by position.
	ListByPosition(ctx context.Context) ([]pathway.Node, error)

	// UpdateByID overwrites title, description, details, icon and position of
	// the row whose id matches node.ID and returns the row as stored. It returns
	// a NotFound error when no row matched.
	UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error)
}

// Seeder is implemented by stores that accept out-of-band inserts. It is used
// only by the operator CLI to load the built-in catalog into an empty store.
type Seeder interface {
	Seed(ctx context.Context, nodes []pathway.Node) (int, error)
}

// Pinger is implemented by stores with a cheap liveness check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Closer is implemented by stores holding connections.
type Closer interface {
	Close() error
}
