package billrepo

import (
	"time"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BillDTO is the row layout of the bills table.
type BillDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountNumber string    `gorm:"not null;index"`
	CustomerName  string    `gorm:"not null"`
	Address       string    `gorm:"not null"`
	Route         string    `gorm:"index"`
	Area          string
	BillType      string `gorm:"not null"`
	BillingMonth  *time.Time
	Amount        float64
	Quantity      int `gorm:"not null"`
	Notes         string
	Status        string     `gorm:"not null;index"`
	AssignedTo    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt     time.Time  `gorm:"not null;autoUpdateTime:false"`
}

func (BillDTO) TableName() string {
	return "bills"
}

func fromDomain(b *bill.Bill) BillDTO {
	d := b.Details()

	var assignedTo *uuid.UUID
	if id := b.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	return BillDTO{
		ID:            b.ID().Bytes(),
		AccountNumber: d.AccountNumber,
		CustomerName:  d.CustomerName,
		Address:       d.Address,
		Route:         d.Route,
		Area:          d.Area,
		BillType:      d.Type.String(),
		BillingMonth:  d.BillingMonth,
		Amount:        d.Amount,
		Quantity:      d.Quantity,
		Notes:         d.Notes,
		Status:        b.Status().String(),
		AssignedTo:    assignedTo,
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func toDomain(dto BillDTO) (*bill.Bill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	typ, err := bill.ParseType(dto.BillType)
	if err != nil {
		return nil, err
	}

	status, err := bill.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		aID, assignErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assignErr != nil {
			return nil, assignErr
		}
		assignedTo = &aID
	}

	return bill.RestoreBill(id, bill.Details{
		AccountNumber: dto.AccountNumber,
		CustomerName:  dto.CustomerName,
		Address:       dto.Address,
		Route:         dto.Route,
		Area:          dto.Area,
		Type:          typ,
		BillingMonth:  dto.BillingMonth,
		Amount:        dto.Amount,
		Quantity:      dto.Quantity,
		Notes:         dto.Notes,
	}, status, assignedTo, dto.CreatedAt, dto.UpdatedAt)
}

func toDomainList(dtos []BillDTO) ([]*bill.Bill, error) {
	bills := make([]*bill.Bill, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, nil
}
