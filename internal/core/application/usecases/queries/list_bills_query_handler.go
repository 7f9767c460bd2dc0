package queries

import (
	"context"
	"time"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListBillsQueryHandler struct {
	db *gorm.DB
}

func NewListBillsQueryHandler(db *gorm.DB) ListBillsQueryHandler {
	return ListBillsQueryHandler{db: db}
}

type billRow struct {
	ID            uuid.UUID
	AccountNumber string
	CustomerName  string
	Address       string
	Route         string
	Area          string
	BillType      string
	BillingMonth  *time.Time
	Amount        float64
	Quantity      int
	Notes         string
	Status        string
	AssignedTo    *uuid.UUID
	AssigneeName  *string
	AssigneeEmail *string
	AssigneePhone *string
	AssigneeArea  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (h ListBillsQueryHandler) Handle(ctx context.Context, query ListBillsQuery) ([]BillView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := h.db.WithContext(ctx).
		Table("bills AS b").
		Select(`
			b.id, b.account_number, b.customer_name, b.address, b.route, b.area,
			b.bill_type, b.billing_month, b.amount, b.quantity, b.notes, b.status,
			b.assigned_to,
			u.name AS assignee_name, u.email AS assignee_email,
			u.phone AS assignee_phone, u.area AS assignee_area,
			b.created_at, b.updated_at`).
		Joins("LEFT JOIN users u ON u.id = b.assigned_to").
		Order("b.created_at DESC")

	f := query.Filter()
	if f.Status != nil {
		q = q.Where("b.status = ?", f.Status.String())
	}
	if f.Route != "" {
		q = q.Where("b.route = ?", f.Route)
	}
	if f.Type != nil {
		q = q.Where("b.bill_type = ?", f.Type.String())
	}

	var rows []billRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]BillView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	return views, nil
}

func (r billRow) toView() (BillView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return BillView{}, err
	}
	typ, err := bill.ParseType(r.BillType)
	if err != nil {
		return BillView{}, err
	}
	status, err := bill.ParseStatus(r.Status)
	if err != nil {
		return BillView{}, err
	}

	v := BillView{
		ID:            id,
		AccountNumber: r.AccountNumber,
		CustomerName:  r.CustomerName,
		Address:       r.Address,
		Route:         r.Route,
		Area:          r.Area,
		Type:          typ,
		BillingMonth:  r.BillingMonth,
		Amount:        r.Amount,
		Quantity:      r.Quantity,
		Notes:         r.Notes,
		Status:        status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	assignee, err := optionalID(r.AssignedTo)
	if err != nil {
		return BillView{}, err
	}
	if assignee != nil {
		v.AssignedTo = &PersonSummary{
			ID:    *assignee,
			Name:  deref(r.AssigneeName),
			Email: deref(r.AssigneeEmail),
			Phone: deref(r.AssigneePhone),
			Area:  deref(r.AssigneeArea),
		}
	}

	return v, nil
}
