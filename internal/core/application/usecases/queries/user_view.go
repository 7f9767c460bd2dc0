package queries

import (
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserView is an account without its password hash.
type UserView struct {
	ID         kernel.UUID
	Name       string
	Email      string
	Role       user.Role
	EmployeeID string
	Phone      string
	Area       string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type userRow struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       string
	EmployeeID string
	Phone      string
	Area       string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const userColumns = "id, name, email, role, employee_id, phone, area, is_active, created_at, updated_at"

func (r userRow) toView() (UserView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return UserView{}, err
	}
	role, err := user.ParseRole(r.Role)
	if err != nil {
		return UserView{}, err
	}

	return UserView{
		ID:         id,
		Name:       r.Name,
		Email:      r.Email,
		Role:       role,
		EmployeeID: r.EmployeeID,
		Phone:      r.Phone,
		Area:       r.Area,
		Active:     r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}
