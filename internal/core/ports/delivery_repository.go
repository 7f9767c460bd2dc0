package ports

import (
	"context"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
)

// DeliveryRepository defines the persistence contract for delivery aggregates
// together with the proof images they own.
type DeliveryRepository interface {
	// Add persists a new delivery and its proof images.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists a delivery, inserting proof images appended since it was loaded.
	// Returns an ObjectNotFoundError if the delivery does not exist.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery with its proof images in capture order.
	// Returns an ObjectNotFoundError if the delivery does not exist.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// FindByBill retrieves every delivery of a bill.
	FindByBill(ctx context.Context, billID kernel.UUID) ([]*delivery.Delivery, error)

	// FindCreatedBetween retrieves the deliveries created inside period, bounds included.
	FindCreatedBetween(ctx context.Context, period report.Period) ([]*delivery.Delivery, error)

	// DeleteByMessenger removes every delivery of a messenger and returns how many were removed.
	DeleteByMessenger(ctx context.Context, messengerID kernel.UUID) (int64, error)
}
