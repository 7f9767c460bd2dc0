// Package redis publishes delivery domain events on a Redis pub/sub channel
// for consumers outside this service.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pod/internal/core/domain/model/delivery"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultChannel is the channel delivery events are published on.
const DefaultChannel = "pod.delivery.events"

// Message is the JSON envelope written to the channel.
type Message struct {
	Event               string    `json:"event"`
	DeliveryID          string    `json:"deliveryId"`
	BillID              string    `json:"billId"`
	MessengerID         string    `json:"messengerId,omitempty"`
	PreviousMessengerID string    `json:"previousMessengerId,omitempty"`
	OccurredAt          time.Time `json:"occurredAt"`
}

type EventPublisher struct {
	client  goredis.UniversalClient
	channel string
}

func NewEventPublisher(client goredis.UniversalClient, channel string) *EventPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &EventPublisher{client: client, channel: channel}
}

// Publish sends every event in order. It stops at the first failure.
func (p *EventPublisher) Publish(ctx context.Context, events ...delivery.Event) error {
	for _, event := range events {
		msg, err := toMessage(event)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", event.EventName(), err)
		}

		if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
			return fmt.Errorf("publish %s for delivery %s: %w", event.EventName(), event.AggregateID(), err)
		}
	}
	return nil
}

func toMessage(event delivery.Event) (Message, error) {
	switch e := event.(type) {
	case delivery.DeliveryCompleted:
		return Message{
			Event:       e.EventName(),
			DeliveryID:  e.DeliveryID.String(),
			BillID:      e.BillID.String(),
			MessengerID: e.MessengerID.String(),
			OccurredAt:  e.OccurredAt,
		}, nil
	case delivery.DeliveryReassigned:
		return Message{
			Event:               e.EventName(),
			DeliveryID:          e.DeliveryID.String(),
			BillID:              e.BillID.String(),
			MessengerID:         e.NewMessengerID.String(),
			PreviousMessengerID: e.PreviousMessengerID.String(),
			OccurredAt:          e.OccurredAt,
		}, nil
	case nil:
		return Message{}, errors.New("nil event")
	default:
		return Message{}, fmt.Errorf("unsupported event %s", event.EventName())
	}
}

// NopPublisher drops events. It is used when no Redis address is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...delivery.Event) error { return nil }
