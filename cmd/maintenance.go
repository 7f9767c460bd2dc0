package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"pod/internal/adapters/out/postgres"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// AdminEmail is the account SeedAdmin creates.
const AdminEmail = "admin@gmail.com"

// SeedAdmin migrates the schema, removes every existing user and creates the
// administrator account with password.
func SeedAdmin(ctx context.Context, db *gorm.DB, password string, clock kernel.Clock) (*user.User, error) {
	if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	admin, err := user.NewUser(kernel.NewUUID(), "Administrator", AdminEmail, password, user.Admin, user.Profile{
		EmployeeID: "ADMIN-001",
		Phone:      "0000-0000000",
		Area:       "HQ",
	}, clock.Now())
	if err != nil {
		return nil, err
	}

	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.UserRepository().DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear users: %w", err)
	}
	if err = uow.UserRepository().Add(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return admin, nil
}

// DropUsersTable drops the users table together with its indexes so the next
// migration recreates them. Constraints referencing the table go with it.
func DropUsersTable(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS users CASCADE`); err != nil {
		return fmt.Errorf("drop users table: %w", err)
	}
	return nil
}
