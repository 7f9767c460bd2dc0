package ports

import (
	"context"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/report"
)

// BillRepository defines the persistence contract for bill aggregates.
type BillRepository interface {
	// Add persists a new bill.
	Add(ctx context.Context, aggregate *bill.Bill) error

	// Update persists changes to an existing bill.
	// Returns an ObjectNotFoundError if the bill does not exist.
	Update(ctx context.Context, aggregate *bill.Bill) error

	// Get retrieves a bill by id.
	// Returns an ObjectNotFoundError if the bill does not exist.
	Get(ctx context.Context, id kernel.UUID) (*bill.Bill, error)

	// GetMany retrieves the bills with the given ids. Missing ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*bill.Bill, error)

	// FindCreatedBetween retrieves the bills created inside period, bounds included.
	FindCreatedBetween(ctx context.Context, period report.Period) ([]*bill.Bill, error)

	// FindAssignedTo retrieves the bills currently assigned to a messenger.
	FindAssignedTo(ctx context.Context, messengerID kernel.UUID) ([]*bill.Bill, error)
}
