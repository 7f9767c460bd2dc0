// Package commands contains the operations that change POD state: bill entry
// and assignment, the delivery lifecycle, messenger management and report
// generation. Every handler validates its command, opens a fresh unit of
// work and commits only when all writes succeeded.
package commands

import (
	"context"

	"pod/internal/core/application/eventhandlers"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	BillRepoFactory interface {
		BillRepository() ports.BillRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// BillUoW manages transactions for bill-only operations.
	BillUoW interface {
		TxManager
		BillRepoFactory
	}

	BillUoWFactory interface {
		Create() BillUoW
	}

	// UoW spans bills, deliveries and users. The delivery lifecycle needs all
	// three: deliveries change, the bill projection follows, and messengers
	// are looked up.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().Get(ctx, id)
	//   // ... mutate, save, dispatch events
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BillRepoFactory
		DeliveryRepoFactory
		UserRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// EventDispatcher applies delivery events to other aggregates inside the
// caller's unit of work.
type EventDispatcher interface {
	Dispatch(ctx context.Context, repos eventhandlers.Repositories, events []delivery.Event) error
}
