package commands

import (
	"context"
	"errors"
	"fmt"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"
	"pod/internal/core/ports"
	"pod/internal/pkg/errs"
)

type UpdateMessengerCommandHandler struct {
	uowFactory UserUoWFactory
	clock      kernel.Clock
}

func NewUpdateMessengerCommandHandler(uowFactory UserUoWFactory, clock kernel.Clock) UpdateMessengerCommandHandler {
	return UpdateMessengerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateMessengerCommandHandler) Handle(ctx context.Context, cmd UpdateMessengerCommand) (*user.User, error) {
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

	users := uow.UserRepository()

	m, err := getMessenger(ctx, users, cmd.MessengerID())
	if err != nil {
		return nil, err
	}

	if err = checkEmailFree(ctx, users, cmd.Email(), m); err != nil {
		return nil, err
	}

	if err = m.Update(cmd.Name(), cmd.Email(), cmd.Profile(), cmd.Active(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = users.Update(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// checkEmailFree fails with user.ErrEmailTaken when email belongs to someone
// other than owner. An empty email means no change.
func checkEmailFree(ctx context.Context, users ports.UserRepository, email string, owner *user.User) error {
	if email == "" || user.NormalizeEmail(email) == owner.Email() {
		return nil
	}

	other, err := users.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !other.IsEqual(owner) {
		return fmt.Errorf("%w: %s", user.ErrEmailTaken, other.Email())
	}
	return nil
}
