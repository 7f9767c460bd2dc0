package commands

import (
	"context"
	"log/slog"

	"pod/internal/core/application/eventhandlers"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/ports"
)

// DeliveryEvents routes the events a delivery records. Apply runs before
// commit so projections share the transaction; Publish runs after commit and
// only logs failures, since the state change is already durable.
type DeliveryEvents struct {
	dispatcher EventDispatcher
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewDeliveryEvents(dispatcher EventDispatcher, publisher ports.EventPublisher, logger *slog.Logger) DeliveryEvents {
	return DeliveryEvents{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger.With("component", "delivery-events"),
	}
}

func (e DeliveryEvents) Apply(ctx context.Context, repos eventhandlers.Repositories, events []delivery.Event) error {
	if len(events) == 0 {
		return nil
	}
	return e.dispatcher.Dispatch(ctx, repos, events)
}

func (e DeliveryEvents) Publish(ctx context.Context, events []delivery.Event) {
	if len(events) == 0 {
		return
	}
	if err := e.publisher.Publish(ctx, events...); err != nil {
		e.logger.Warn("Failed to publish delivery events",
			"count", len(events),
			"error", err)
	}
}
