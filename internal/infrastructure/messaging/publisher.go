package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
)

// EventBridgeAPI is the subset of the EventBridge client the publisher uses.
type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher sends node events.
type Publisher interface {
	PublishNodeUpdated(ctx context.Context, event NodeUpdatedEvent) error
}

// EventBridgePublisher implements Publisher using AWS EventBridge.
type EventBridgePublisher struct {
	client   EventBridgeAPI
	eventBus string
	source   string
}

// NewEventBridgeClient builds a client with the same timeouts as the
// DynamoDB client.
func NewEventBridgeClient(cfg aws.Config) *eventbridge.Client {
	return eventbridge.NewFromConfig(cfg, func(o *eventbridge.Options) {
		o.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	})
}

// NewEventBridgePublisher creates a new EventBridge publisher.
func NewEventBridgePublisher(client EventBridgeAPI, eventBus, source string) *EventBridgePublisher {
	if eventBus == "" {
		eventBus = "default"
	}
	if source == "" {
		source = "gradcap.pathway"
	}
	return &EventBridgePublisher{client: client, eventBus: eventBus, source: source}
}

// PublishNodeUpdated implements Publisher.
func (p *EventBridgePublisher) PublishNodeUpdated(ctx context.Context, event NodeUpdatedEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	output, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{{
			EventBusName: aws.String(p.eventBus),
			Source:       aws.String(p.source),
			DetailType:   aws.String(event.EventType),
			Detail:       aws.String(string(detail)),
			Time:         aws.Time(event.OccurredAt),
			Resources:    []string{event.NodeID},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to put events: %w", err)
	}
	if output.FailedEntryCount > 0 {
		reason := ""
		if len(output.Entries) > 0 {
			reason = aws.ToString(output.Entries[0].ErrorMessage)
		}
		return fmt.Errorf("%d events failed to publish: %s", output.FailedEntryCount, reason)
	}
	return nil
}
