package commands

import (
	"context"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"
)

// CreateUserCommandHandler creates users of any role; messenger creation by
// coordinators goes through it with the role fixed to messenger.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      kernel.Clock
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory, clock kernel.Clock) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Password(), cmd.Role(), cmd.Profile(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
