package commands

import (
	"errors"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var (
	ErrDeleteMessengerCommandIsNotConstructed = errors.New(
		"DeleteMessengerCommand must be created via NewDeleteMessengerCommand constructor",
	)
	// ErrCannotDeleteSelf is returned when the requester targets their own account.
	ErrCannotDeleteSelf = errs.NewValueIsInvalidErrorWithCause("messengerId", errors.New("cannot delete your own account"))
)

// DeleteMessengerCommand removes a messenger together with their deliveries.
type DeleteMessengerCommand struct {
	messengerID kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMessengerCommand(messengerID, requesterID kernel.UUID) (DeleteMessengerCommand, error) {
	if err := errors.Join(messengerID.Validate(), requesterID.Validate()); err != nil {
		return DeleteMessengerCommand{}, err
	}
	if messengerID.IsEqual(requesterID) {
		return DeleteMessengerCommand{}, ErrCannotDeleteSelf
	}

	return DeleteMessengerCommand{
		messengerID: messengerID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMessengerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMessengerCommandIsNotConstructed)
}

func (c DeleteMessengerCommand) MessengerID() kernel.UUID { return c.messengerID }
func (c DeleteMessengerCommand) RequesterID() kernel.UUID { return c.requesterID }
