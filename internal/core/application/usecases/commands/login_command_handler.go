package commands

import (
	"context"
	"errors"

	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/errs"
)

// LoginCommandHandler authenticates a user. Unknown emails and wrong
// passwords both yield user.ErrInvalidCredentials so callers cannot probe
// which accounts exist. Issuing the session token is left to the caller.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewLoginCommandHandler(uowFactory UserUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*user.User, error) {
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

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = u.CheckPassword(cmd.Password()); err != nil {
		return nil, err
	}

	if !u.IsActive() {
		return nil, user.ErrAccountInactive
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
