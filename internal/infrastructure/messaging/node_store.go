package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// PublishingNodeStore emits a NodeUpdatedEvent after every confirmed update.
// The update result is returned unchanged when publishing fails.
type PublishingNodeStore struct {
	inner     repository.NodeStore
	publisher Publisher
	logger    *zap.Logger
}

// NewPublishingNodeStore wraps inner.
func NewPublishingNodeStore(inner repository.NodeStore, publisher Publisher, logger *zap.Logger) *PublishingNodeStore {
	return &PublishingNodeStore{inner: inner, publisher: publisher, logger: logger}
}

// ListByPosition implements repository.NodeStore.
func (s *PublishingNodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	return s.inner.ListByPosition(ctx)
}

// UpdateByID implements repository.NodeStore.
func (s *PublishingNodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	updated, err := s.inner.UpdateByID(ctx, node)
	if err != nil {
		return nil, err
	}

	event := NewNodeUpdatedEvent(*updated)
	if err := s.publisher.PublishNodeUpdated(ctx, event); err != nil {
		s.logger.Warn("Failed to publish node update event",
			zap.String("node_id", updated.ID),
			zap.String("event_id", event.EventID),
			zap.Error(err))
	}
	return updated, nil
}
