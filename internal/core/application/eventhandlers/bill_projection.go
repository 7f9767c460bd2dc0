// Package eventhandlers applies delivery domain events to the bills they
// concern. Handlers run inside the unit of work of the command that recorded
// the events, so the bill changes commit or roll back with the delivery.
package eventhandlers

import (
	"context"
	"fmt"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/ports"
)

// Repositories is the part of a unit of work the projection writes through.
type Repositories interface {
	BillRepository() ports.BillRepository
	DeliveryRepository() ports.DeliveryRepository
}

// BillProjection keeps Bill.status in line with the deliveries of the bill:
// a bill is delivered while at least one of its deliveries is delivered.
type BillProjection struct{}

func NewBillProjection() BillProjection {
	return BillProjection{}
}

// Dispatch applies events in order. Events it does not know are skipped.
func (p BillProjection) Dispatch(ctx context.Context, repos Repositories, events []delivery.Event) error {
	for _, event := range events {
		var err error
		switch e := event.(type) {
		case delivery.DeliveryCompleted:
			err = p.onCompleted(ctx, repos, e)
		case delivery.DeliveryReassigned:
			err = p.onReassigned(ctx, repos, e)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("project %s: %w", event.EventName(), err)
		}
	}
	return nil
}

func (p BillProjection) onCompleted(ctx context.Context, repos Repositories, e delivery.DeliveryCompleted) error {
	billRepo := repos.BillRepository()

	b, err := billRepo.Get(ctx, e.BillID)
	if err != nil {
		return err
	}

	b.MarkDelivered(e.OccurredAt)
	return billRepo.Update(ctx, b)
}

// onReassigned expects the reassigned delivery to be saved already, so the
// remaining deliveries of the bill reflect its new status.
func (p BillProjection) onReassigned(ctx context.Context, repos Repositories, e delivery.DeliveryReassigned) error {
	billRepo := repos.BillRepository()

	b, err := billRepo.Get(ctx, e.BillID)
	if err != nil {
		return err
	}

	deliveries, err := repos.DeliveryRepository().FindByBill(ctx, e.BillID)
	if err != nil {
		return err
	}

	stillDelivered := false
	for _, d := range deliveries {
		if d.Status() == delivery.Delivered {
			stillDelivered = true
			break
		}
	}

	if err := b.Reassign(e.NewMessengerID, stillDelivered, e.OccurredAt); err != nil {
		return err
	}
	return billRepo.Update(ctx, b)
}
