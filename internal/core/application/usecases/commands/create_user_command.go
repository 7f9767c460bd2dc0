package commands

import (
	"errors"
	"strings"

	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers an account. Field rules (email shape, password
// length) are enforced by user.NewUser.
type CreateUserCommand struct {
	name     string
	email    string
	password string
	role     user.Role
	profile  user.Profile

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(name, email, password string, role user.Role, profile user.Profile) (CreateUserCommand, error) {
	if err := role.Validate(); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		name:     strings.TrimSpace(name),
		email:    email,
		password: password,
		role:     role,
		profile:  profile,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Name() string          { return c.name }
func (c CreateUserCommand) Email() string         { return c.email }
func (c CreateUserCommand) Password() string      { return c.password }
func (c CreateUserCommand) Role() user.Role       { return c.role }
func (c CreateUserCommand) Profile() user.Profile { return c.profile }
