package userrepo

import (
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row layout of the users table.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;index"`
	EmployeeID   string
	Phone        string
	Area         string
	IsActive     bool
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	p := u.Profile()
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		EmployeeID:   p.EmployeeID,
		Phone:        p.Phone,
		Area:         p.Area,
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		role,
		user.Profile{EmployeeID: dto.EmployeeID, Phone: dto.Phone, Area: dto.Area},
		dto.IsActive,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
