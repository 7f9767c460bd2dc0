package ports

import (
	"context"

	"pod/internal/core/domain/model/delivery"
)

// EventPublisher fans delivery events out to consumers outside this service.
type EventPublisher interface {
	Publish(ctx context.Context, events ...delivery.Event) error
}
