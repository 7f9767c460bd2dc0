package commands

import (
	"errors"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var ErrAssignBillsCommandIsNotConstructed = errors.New(
	"AssignBillsCommand must be created via NewAssignBillsCommand constructor",
)

// AssignBillsCommand hands a set of bills to one messenger on behalf of a coordinator.
//
// Example:
//
//	cmd, err := NewAssignBillsCommand(billIDs, messengerID, coordinatorID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type AssignBillsCommand struct {
	billIDs       []kernel.UUID
	messengerID   kernel.UUID
	coordinatorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignBillsCommand(billIDs []kernel.UUID, messengerID, coordinatorID kernel.UUID) (AssignBillsCommand, error) {
	cmd := AssignBillsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBillIDs(billIDs),
		cmd.setMessengerID(messengerID),
		cmd.setCoordinatorID(coordinatorID),
	); err != nil {
		return AssignBillsCommand{}, err
	}

	return cmd, nil
}

func (c AssignBillsCommand) Validate() error {
	return c.guard.Validate(ErrAssignBillsCommandIsNotConstructed)
}

func (c AssignBillsCommand) BillIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.billIDs...)
}

func (c AssignBillsCommand) MessengerID() kernel.UUID   { return c.messengerID }
func (c AssignBillsCommand) CoordinatorID() kernel.UUID { return c.coordinatorID }

func (c *AssignBillsCommand) setBillIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("billIds")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.billIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (c *AssignBillsCommand) setMessengerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.messengerID = id
	return nil
}

func (c *AssignBillsCommand) setCoordinatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.coordinatorID = id
	return nil
}
