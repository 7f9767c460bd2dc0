package ports

import (
	"context"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. Emails are unique.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id.
	// Returns an ObjectNotFoundError if the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns an ObjectNotFoundError if no user has that email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// FindByRole retrieves the users holding role, ordered by name.
	FindByRole(ctx context.Context, role user.Role) ([]*user.User, error)

	// Delete removes a user.
	// Returns an ObjectNotFoundError if the user does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every user and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
