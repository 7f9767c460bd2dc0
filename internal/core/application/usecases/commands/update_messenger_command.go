package commands

import (
	"errors"
	"strings"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/guard"
)

var ErrUpdateMessengerCommandIsNotConstructed = errors.New(
	"UpdateMessengerCommand must be created via NewUpdateMessengerCommand constructor",
)

// UpdateMessengerCommand edits a messenger's account. Empty strings leave the
// stored value unchanged and a nil active keeps the current flag.
type UpdateMessengerCommand struct {
	messengerID kernel.UUID
	name        string
	email       string
	profile     user.Profile
	active      *bool

	guard guard.ConstructorGuard
}

func NewUpdateMessengerCommand(
	messengerID kernel.UUID,
	name, email string,
	profile user.Profile,
	active *bool,
) (UpdateMessengerCommand, error) {
	if err := messengerID.Validate(); err != nil {
		return UpdateMessengerCommand{}, err
	}

	cmd := UpdateMessengerCommand{
		messengerID: messengerID,
		name:        strings.TrimSpace(name),
		email:       strings.TrimSpace(email),
		profile:     profile,
		guard:       guard.NewConstructorGuard(),
	}
	if active != nil {
		v := *active
		cmd.active = &v
	}
	return cmd, nil
}

func (c UpdateMessengerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMessengerCommandIsNotConstructed)
}

func (c UpdateMessengerCommand) MessengerID() kernel.UUID { return c.messengerID }
func (c UpdateMessengerCommand) Name() string             { return c.name }
func (c UpdateMessengerCommand) Email() string            { return c.email }
func (c UpdateMessengerCommand) Profile() user.Profile    { return c.profile }

func (c UpdateMessengerCommand) Active() *bool {
	if c.active == nil {
		return nil
	}
	v := *c.active
	return &v
}
