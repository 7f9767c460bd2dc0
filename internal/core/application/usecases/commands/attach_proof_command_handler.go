package commands

import (
	"context"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/ports"
)

// AttachProofCommandHandler stores the payload, appends a proof image and
// marks the delivery delivered, whatever its previous status.
type AttachProofCommandHandler struct {
	uowFactory UoWFactory
	storage    ports.ProofStorage
	events     DeliveryEvents
	clock      kernel.Clock
}

func NewAttachProofCommandHandler(
	uowFactory UoWFactory,
	storage ports.ProofStorage,
	events DeliveryEvents,
	clock kernel.Clock,
) AttachProofCommandHandler {
	return AttachProofCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		events:     events,
		clock:      clock,
	}
}

// Handle checks ownership before anything is uploaded.
func (h AttachProofCommandHandler) Handle(ctx context.Context, cmd AttachProofCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if !d.IsOwnedBy(cmd.RequesterID()) {
		return nil, delivery.ErrNotDeliveryOwner
	}

	ref, err := h.storage.Store(ctx, d.ID(), cmd.ImageData())
	if err != nil {
		return nil, err
	}

	image, err := delivery.NewProofImage(ref, h.clock.Now(), len(cmd.ImageData()))
	if err != nil {
		return nil, err
	}

	if err = d.AttachProof(cmd.RequesterID(), image); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return nil, err
	}

	events := d.PullEvents()
	if err = h.events.Apply(ctx, uow, events); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.Publish(ctx, events)
	return d, nil
}
