// Package messaging publishes pathway change notifications to EventBridge.
package messaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
)

// EventTypeNodeUpdated is the detail-type of node update events.
const EventTypeNodeUpdated = "PathwayNodeUpdated"

// NodeUpdatedEvent is emitted after the store confirms an update.
type NodeUpdatedEvent struct {
	EventID    string       `json:"eventId"`
	EventType  string       `json:"eventType"`
	NodeID     string       `json:"nodeId"`
	Node       pathway.Node `json:"node"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// NewNodeUpdatedEvent builds the event for node.
func NewNodeUpdatedEvent(node pathway.Node) NodeUpdatedEvent {
	return NodeUpdatedEvent{
		EventID:    uuid.NewString(),
		EventType:  EventTypeNodeUpdated,
		NodeID:     node.ID,
		Node:       node.Clone(),
		OccurredAt: time.Now().UTC(),
	}
}
