package ports

import (
	"context"

	"pod/internal/core/domain/model/kernel"
)

// ProofStorage keeps proof-of-delivery payloads and returns the reference
// stored on the delivery.
type ProofStorage interface {
	// Store saves imageData for deliveryID and returns its reference.
	Store(ctx context.Context, deliveryID kernel.UUID, imageData string) (string, error)
}
