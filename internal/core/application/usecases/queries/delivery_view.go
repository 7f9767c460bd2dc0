// Package queries contains the read side of POD: bill, delivery, user and
// report listings. Handlers read PostgreSQL through GORM directly and return
// flat read models instead of aggregates.
package queries

import (
	"time"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillSummary is the bill as seen from one of its deliveries. The account,
// customer, address and route come from the snapshot taken at assignment.
type BillSummary struct {
	ID            kernel.UUID
	AccountNumber string
	CustomerName  string
	Address       string
	Route         string
	Area          string
	Type          bill.Type
	Status        bill.Status
}

// PersonSummary names a user referenced by another record.
type PersonSummary struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
	Area  string
}

// DeliveryView is one delivery row with its bill and messenger joined in.
type DeliveryView struct {
	ID                 kernel.UUID
	Bill               BillSummary
	Messenger          PersonSummary
	CoordinatorID      *kernel.UUID
	Status             delivery.Status
	DeliveryDate       *time.Time
	FailureReason      string
	Notes              string
	VerificationStatus delivery.VerificationStatus
	VerifiedBy         *kernel.UUID
	VerifiedAt         *time.Time
	VerificationNotes  string
	ProofCount         int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// deliveryRow is the flat scan target for selectDeliveries.
type deliveryRow struct {
	ID                 uuid.UUID
	BillID             uuid.UUID
	MessengerID        uuid.UUID
	CoordinatorID      *uuid.UUID
	Status             string
	DeliveryDate       *time.Time
	FailureReason      string
	Notes              string
	VerificationStatus string
	VerifiedBy         *uuid.UUID
	VerifiedAt         *time.Time
	VerificationNotes  string
	AccountNumber      string
	CustomerName       string
	Address            string
	Route              string
	BillArea           *string
	BillType           *string
	BillStatus         *string
	MessengerName      *string
	MessengerEmail     *string
	MessengerPhone     *string
	MessengerArea      *string
	ProofCount         int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// selectDeliveries starts a newest-first delivery listing. Bills and users are
// left-joined because either may have been removed since assignment.
func selectDeliveries(db *gorm.DB) *gorm.DB {
	return db.Table("deliveries AS d").
		Select(`
			d.id, d.bill_id, d.messenger_id, d.coordinator_id, d.status,
			d.delivery_date, d.failure_reason, d.notes,
			d.verification_status, d.verified_by, d.verified_at, d.verification_notes,
			d.account_number, d.customer_name, d.address, d.route,
			b.area AS bill_area, b.bill_type, b.status AS bill_status,
			u.name AS messenger_name, u.email AS messenger_email,
			u.phone AS messenger_phone, u.area AS messenger_area,
			(SELECT COUNT(*) FROM proof_images p WHERE p.delivery_id = d.id) AS proof_count,
			d.created_at, d.updated_at`).
		Joins("LEFT JOIN bills b ON b.id = d.bill_id").
		Joins("LEFT JOIN users u ON u.id = d.messenger_id").
		Order("d.created_at DESC")
}

func (r deliveryRow) toView() (DeliveryView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return DeliveryView{}, err
	}
	billID, err := kernel.UUIDFromBytes(r.BillID[:])
	if err != nil {
		return DeliveryView{}, err
	}
	messengerID, err := kernel.UUIDFromBytes(r.MessengerID[:])
	if err != nil {
		return DeliveryView{}, err
	}
	status, err := delivery.ParseStatus(r.Status)
	if err != nil {
		return DeliveryView{}, err
	}
	verification, err := delivery.ParseVerificationStatus(r.VerificationStatus)
	if err != nil {
		return DeliveryView{}, err
	}

	v := DeliveryView{
		ID: id,
		Bill: BillSummary{
			ID:            billID,
			AccountNumber: r.AccountNumber,
			CustomerName:  r.CustomerName,
			Address:       r.Address,
			Route:         r.Route,
			Area:          deref(r.BillArea),
		},
		Messenger: PersonSummary{
			ID:    messengerID,
			Name:  deref(r.MessengerName),
			Email: deref(r.MessengerEmail),
			Phone: deref(r.MessengerPhone),
			Area:  deref(r.MessengerArea),
		},
		Status:             status,
		DeliveryDate:       r.DeliveryDate,
		FailureReason:      r.FailureReason,
		Notes:              r.Notes,
		VerificationStatus: verification,
		VerifiedAt:         r.VerifiedAt,
		VerificationNotes:  r.VerificationNotes,
		ProofCount:         r.ProofCount,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.BillType != nil {
		if v.Bill.Type, err = bill.ParseType(*r.BillType); err != nil {
			return DeliveryView{}, err
		}
	}
	if r.BillStatus != nil {
		if v.Bill.Status, err = bill.ParseStatus(*r.BillStatus); err != nil {
			return DeliveryView{}, err
		}
	}
	if v.CoordinatorID, err = optionalID(r.CoordinatorID); err != nil {
		return DeliveryView{}, err
	}
	if v.VerifiedBy, err = optionalID(r.VerifiedBy); err != nil {
		return DeliveryView{}, err
	}

	return v, nil
}

func toDeliveryViews(rows []deliveryRow) ([]DeliveryView, error) {
	views := make([]DeliveryView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
