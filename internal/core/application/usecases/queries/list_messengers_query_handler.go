package queries

import (
	"context"

	"pod/internal/core/domain/model/user"

	"gorm.io/gorm"
)

type ListMessengersQueryHandler struct {
	db *gorm.DB
}

func NewListMessengersQueryHandler(db *gorm.DB) ListMessengersQueryHandler {
	return ListMessengersQueryHandler{db: db}
}

func (h ListMessengersQueryHandler) Handle(ctx context.Context, query ListMessengersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []userRow
	err := h.db.WithContext(ctx).
		Table("users").
		Select(userColumns).
		Where("role = ?", user.Messenger.String()).
		Order("name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, nil
}
