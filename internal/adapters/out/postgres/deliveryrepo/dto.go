package deliveryrepo

import (
	"time"

	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the row layout of the deliveries table. Proof images live in
// their own table, ordered by Position.
type DeliveryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BillID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	MessengerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CoordinatorID      *uuid.UUID `gorm:"type:uuid"`
	Status             string     `gorm:"not null;index"`
	DeliveryDate       *time.Time
	FailureReason      string
	Notes              string
	VerificationStatus string     `gorm:"not null"`
	VerifiedBy         *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt         *time.Time
	VerificationNotes  string
	AccountNumber      string
	CustomerName       string
	Address            string
	Route              string
	CreatedAt          time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt          time.Time       `gorm:"not null;autoUpdateTime:false"`
	ProofImages        []ProofImageDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ProofImageDTO is one proof image row. Images are append-only, so
// (delivery_id, position) identifies them.
type ProofImageDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	URL        string    `gorm:"type:text;not null"`
	Timestamp  time.Time `gorm:"not null"`
	Size       int
}

func (ProofImageDTO) TableName() string {
	return "proof_images"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	snapshot := d.Bill()
	images := d.ProofImages()

	dto := DeliveryDTO{
		ID:                 d.ID().Bytes(),
		BillID:             d.BillID().Bytes(),
		MessengerID:        d.MessengerID().Bytes(),
		CoordinatorID:      optionalID(d.CoordinatorID()),
		Status:             d.Status().String(),
		DeliveryDate:       d.DeliveryDate(),
		FailureReason:      d.FailureReason(),
		Notes:              d.Notes(),
		VerificationStatus: d.VerificationStatus().String(),
		VerifiedBy:         optionalID(d.VerifiedBy()),
		VerifiedAt:         d.VerifiedAt(),
		VerificationNotes:  d.VerificationNotes(),
		AccountNumber:      snapshot.AccountNumber,
		CustomerName:       snapshot.CustomerName,
		Address:            snapshot.Address,
		Route:              snapshot.Route,
		CreatedAt:          d.CreatedAt(),
		UpdatedAt:          d.UpdatedAt(),
		ProofImages:        make([]ProofImageDTO, 0, len(images)),
	}

	for i, img := range images {
		dto.ProofImages = append(dto.ProofImages, ProofImageDTO{
			DeliveryID: dto.ID,
			Position:   i,
			URL:        img.URL(),
			Timestamp:  img.Timestamp(),
			Size:       img.Size(),
		})
	}

	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	billID, err := kernel.UUIDFromBytes(dto.BillID[:])
	if err != nil {
		return nil, err
	}
	messengerID, err := kernel.UUIDFromBytes(dto.MessengerID[:])
	if err != nil {
		return nil, err
	}
	coordinatorID, err := restoreOptionalID(dto.CoordinatorID)
	if err != nil {
		return nil, err
	}
	verifiedBy, err := restoreOptionalID(dto.VerifiedBy)
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	verification, err := delivery.ParseVerificationStatus(dto.VerificationStatus)
	if err != nil {
		return nil, err
	}

	images := make([]delivery.ProofImage, 0, len(dto.ProofImages))
	for _, img := range dto.ProofImages {
		p, imgErr := delivery.NewProofImage(img.URL, img.Timestamp, img.Size)
		if imgErr != nil {
			return nil, imgErr
		}
		images = append(images, p)
	}

	return delivery.RestoreDelivery(delivery.State{
		ID:                 id,
		BillID:             billID,
		MessengerID:        messengerID,
		CoordinatorID:      coordinatorID,
		Status:             status,
		DeliveryDate:       dto.DeliveryDate,
		FailureReason:      dto.FailureReason,
		Notes:              dto.Notes,
		ProofImages:        images,
		VerificationStatus: verification,
		VerifiedBy:         verifiedBy,
		VerifiedAt:         dto.VerifiedAt,
		VerificationNotes:  dto.VerificationNotes,
		Bill: delivery.BillSnapshot{
			AccountNumber: dto.AccountNumber,
			CustomerName:  dto.CustomerName,
			Address:       dto.Address,
			Route:         dto.Route,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}

func toDomainList(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
