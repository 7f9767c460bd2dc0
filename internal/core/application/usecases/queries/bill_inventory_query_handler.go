package queries

import (
	"context"

	"pod/internal/core/domain/model/bill"

	"gorm.io/gorm"
)

type BillInventoryQueryHandler struct {
	db *gorm.DB
}

func NewBillInventoryQueryHandler(db *gorm.DB) BillInventoryQueryHandler {
	return BillInventoryQueryHandler{db: db}
}

func (h BillInventoryQueryHandler) Handle(ctx context.Context, query BillInventoryQuery) ([]InventoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM bills
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]InventoryEntry, 0)
	for rows.Next() {
		var raw string
		var count int
		if err = rows.Scan(&raw, &count); err != nil {
			return nil, err
		}

		status, parseErr := bill.ParseStatus(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		entries = append(entries, InventoryEntry{Status: status, Count: count})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
