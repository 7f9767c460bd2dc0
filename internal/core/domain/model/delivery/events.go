package delivery

import (
	"time"

	"pod/internal/core/domain/model/kernel"
)

// Event is a fact recorded by the Delivery aggregate. Handlers drain events
// with PullEvents after a successful mutation and dispatch them inside the
// same unit of work.
type Event interface {
	EventName() string
	AggregateID() kernel.UUID
}

// DeliveryCompleted is recorded when a delivery reaches delivered, either
// through UpdateStatus or AttachProof.
type DeliveryCompleted struct {
	DeliveryID  kernel.UUID
	BillID      kernel.UUID
	MessengerID kernel.UUID
	OccurredAt  time.Time
}

func (e DeliveryCompleted) EventName() string        { return "delivery.completed" }
func (e DeliveryCompleted) AggregateID() kernel.UUID { return e.DeliveryID }

// DeliveryReassigned is recorded when a coordinator moves a delivery to another messenger.
type DeliveryReassigned struct {
	DeliveryID          kernel.UUID
	BillID              kernel.UUID
	PreviousMessengerID kernel.UUID
	NewMessengerID      kernel.UUID
	OccurredAt          time.Time
}

func (e DeliveryReassigned) EventName() string        { return "delivery.reassigned" }
func (e DeliveryReassigned) AggregateID() kernel.UUID { return e.DeliveryID }
