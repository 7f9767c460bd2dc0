package queries

import (
	"context"

	"pod/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	var rows []userRow
	err := h.db.WithContext(ctx).
		Table("users").
		Select(userColumns).
		Where("id = ?", query.UserID().Bytes()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return UserView{}, err
	}
	if len(rows) == 0 {
		return UserView{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	return rows[0].toView()
}
