package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not built via
	// NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrNotDeliveryOwner is returned when someone other than the assigned
	// messenger tries to change the delivery.
	ErrNotDeliveryOwner = errors.New("requesting user is not the delivery's messenger")

	// ErrProofRequired is returned when marking a delivery delivered without proof.
	ErrProofRequired = errors.New("proof image required before marking delivered")
)

// BillSnapshot holds the bill fields copied onto the delivery at assignment time.
type BillSnapshot struct {
	AccountNumber string
	CustomerName  string
	Address       string
	Route         string
}

// Delivery is the aggregate root for one bill hand-off.
//
// Invariants:
//   - status delivered implies at least one proof image
//   - failureReason is set only by a transition to failed
//   - verifiedBy and verifiedAt are set only by Verify
//
// Every mutating method validates all of its preconditions before touching
// state, so a returned error means the delivery is unchanged.
type Delivery struct {
	id            kernel.UUID
	billID        kernel.UUID
	messengerID   kernel.UUID
	coordinatorID *kernel.UUID
	status        Status
	deliveryDate  *time.Time
	failureReason string
	notes         string
	proofImages   []ProofImage

	verificationStatus VerificationStatus
	verifiedBy         *kernel.UUID
	verifiedAt         *time.Time
	verificationNotes  string

	bill      BillSnapshot
	createdAt time.Time
	updatedAt time.Time

	events []Event
	guard  guard.ConstructorGuard
}

// NewDelivery creates an assigned delivery of b for messengerID.
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), b, messengerID, &coordinatorID, time.Now())
func NewDelivery(
	id kernel.UUID,
	b *bill.Bill,
	messengerID kernel.UUID,
	coordinatorID *kernel.UUID,
	now time.Time,
) (*Delivery, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	d := &Delivery{
		billID:             b.ID(),
		status:             Assigned,
		verificationStatus: VerificationPending,
		bill: BillSnapshot{
			AccountNumber: b.AccountNumber(),
			CustomerName:  b.CustomerName(),
			Address:       b.Address(),
			Route:         b.Route(),
		},
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setMessenger(messengerID),
		d.setCoordinator(coordinatorID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// State is the full persisted form of a Delivery, used by RestoreDelivery.
type State struct {
	ID                 kernel.UUID
	BillID             kernel.UUID
	MessengerID        kernel.UUID
	CoordinatorID      *kernel.UUID
	Status             Status
	DeliveryDate       *time.Time
	FailureReason      string
	Notes              string
	ProofImages        []ProofImage
	VerificationStatus VerificationStatus
	VerifiedBy         *kernel.UUID
	VerifiedAt         *time.Time
	VerificationNotes  string
	Bill               BillSnapshot
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreDelivery rebuilds a Delivery from storage and re-checks its invariants.
func RestoreDelivery(s State) (*Delivery, error) {
	d := &Delivery{
		failureReason:     s.FailureReason,
		notes:             s.Notes,
		proofImages:       append([]ProofImage(nil), s.ProofImages...),
		verificationNotes: s.VerificationNotes,
		bill:              s.Bill,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		guard:             guard.NewConstructorGuard(),
	}

	err := errors.Join(
		d.setID(s.ID),
		s.BillID.Validate(),
		d.setMessenger(s.MessengerID),
		d.setCoordinator(s.CoordinatorID),
		s.Status.Validate(),
		s.VerificationStatus.Validate(),
	)
	if s.VerifiedBy != nil {
		err = errors.Join(err, s.VerifiedBy.Validate())
	}
	if err != nil {
		return nil, err
	}
	if s.Status == Delivered && len(s.ProofImages) == 0 {
		return nil, fmt.Errorf("restore delivery %s: %w", s.ID, ErrProofRequired)
	}

	d.billID = s.BillID
	d.status = s.Status
	d.verificationStatus = s.VerificationStatus
	d.deliveryDate = copyTime(s.DeliveryDate)
	d.verifiedAt = copyTime(s.VerifiedAt)
	d.verifiedBy = copyID(s.VerifiedBy)

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID                        { return d.id }
func (d *Delivery) BillID() kernel.UUID                    { return d.billID }
func (d *Delivery) MessengerID() kernel.UUID               { return d.messengerID }
func (d *Delivery) CoordinatorID() *kernel.UUID            { return copyID(d.coordinatorID) }
func (d *Delivery) Status() Status                         { return d.status }
func (d *Delivery) DeliveryDate() *time.Time               { return copyTime(d.deliveryDate) }
func (d *Delivery) FailureReason() string                  { return d.failureReason }
func (d *Delivery) Notes() string                          { return d.notes }
func (d *Delivery) VerificationStatus() VerificationStatus { return d.verificationStatus }
func (d *Delivery) VerifiedBy() *kernel.UUID               { return copyID(d.verifiedBy) }
func (d *Delivery) VerifiedAt() *time.Time                 { return copyTime(d.verifiedAt) }
func (d *Delivery) VerificationNotes() string              { return d.verificationNotes }
func (d *Delivery) Bill() BillSnapshot                     { return d.bill }
func (d *Delivery) CreatedAt() time.Time                   { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time                   { return d.updatedAt }

// ProofImages returns a copy of the proof images in capture order.
func (d *Delivery) ProofImages() []ProofImage {
	return append([]ProofImage(nil), d.proofImages...)
}

// HasProof reports whether at least one proof image is attached.
func (d *Delivery) HasProof() bool {
	return len(d.proofImages) > 0
}

// FirstProof returns the earliest attached proof image.
func (d *Delivery) FirstProof() (ProofImage, bool) {
	if len(d.proofImages) == 0 {
		return ProofImage{}, false
	}
	return d.proofImages[0], true
}

// IsOwnedBy reports whether userID is the assigned messenger.
func (d *Delivery) IsOwnedBy(userID kernel.UUID) bool {
	return d.messengerID.IsEqual(userID)
}

// UpdateStatus applies a messenger-requested transition.
//
// Checks, in order: ownership (ErrNotDeliveryOwner), that target is one of
// in-progress, delivered or failed, proof presence for delivered
// (ErrProofRequired), then the transition table (ErrInvalidTransition).
// On success deliveryDate is set to now, failureReason is recorded only for
// failed and notes are appended on a new line.
func (d *Delivery) UpdateStatus(
	requesterID kernel.UUID,
	target Status,
	failureReason, notes string,
	now time.Time,
) error {
	if !d.IsOwnedBy(requesterID) {
		return ErrNotDeliveryOwner
	}
	if !target.IsMessengerSettable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot be set by a messenger", target),
		)
	}
	if target == Delivered && !d.HasProof() {
		return ErrProofRequired
	}
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	d.status = next
	d.deliveryDate = &now
	if next == Failed {
		d.failureReason = strings.TrimSpace(failureReason)
	}
	d.appendNotes(notes)
	d.updatedAt = now

	if next == Delivered {
		d.recordCompleted(now)
	}
	return nil
}

// AttachProof appends a proof image and marks the delivery delivered from
// any status.
func (d *Delivery) AttachProof(requesterID kernel.UUID, image ProofImage) error {
	if !d.IsOwnedBy(requesterID) {
		return ErrNotDeliveryOwner
	}
	if image.URL() == "" {
		return errs.NewValueIsRequiredError("proof image")
	}
	if err := d.status.Validate(); err != nil {
		return err
	}

	now := image.Timestamp()
	d.proofImages = append(d.proofImages, image)
	d.status = Delivered
	d.deliveryDate = &now
	d.updatedAt = now

	d.recordCompleted(now)
	return nil
}

// Reassign hands the delivery to another messenger and resets it to assigned.
// Proof images, verification fields and the failure reason are preserved.
func (d *Delivery) Reassign(messengerID kernel.UUID, now time.Time) error {
	if err := messengerID.Validate(); err != nil {
		return err
	}
	if err := d.status.Validate(); err != nil {
		return err
	}

	previous := d.messengerID
	d.messengerID = messengerID
	d.status = Assigned
	d.updatedAt = now

	d.events = append(d.events, DeliveryReassigned{
		DeliveryID:          d.id,
		BillID:              d.billID,
		PreviousMessengerID: previous,
		NewMessengerID:      messengerID,
		OccurredAt:          now,
	})
	return nil
}

// Verify records a coordinator's review. Only verified or rejected are
// accepted; the delivery status itself is not checked.
func (d *Delivery) Verify(coordinatorID kernel.UUID, decision VerificationStatus, notes string, now time.Time) error {
	if err := coordinatorID.Validate(); err != nil {
		return err
	}
	if !decision.IsDecision() {
		return errs.NewValueIsInvalidErrorWithCause(
			"verificationStatus",
			fmt.Errorf("%s is not a verification decision", decision),
		)
	}

	d.verificationStatus = decision
	d.verificationNotes = notes
	d.verifiedBy = &coordinatorID
	d.verifiedAt = &now
	d.updatedAt = now
	return nil
}

// PullEvents returns the recorded events and clears them.
func (d *Delivery) PullEvents() []Event {
	events := d.events
	d.events = nil
	return events
}

func (d *Delivery) recordCompleted(now time.Time) {
	d.events = append(d.events, DeliveryCompleted{
		DeliveryID:  d.id,
		BillID:      d.billID,
		MessengerID: d.messengerID,
		OccurredAt:  now,
	})
}

func (d *Delivery) appendNotes(notes string) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return
	}
	if d.notes == "" {
		d.notes = notes
		return
	}
	d.notes += "\n" + notes
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setMessenger(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("messengerId", err)
	}
	d.messengerID = id
	return nil
}

func (d *Delivery) setCoordinator(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("coordinatorId", err)
	}
	d.coordinatorID = copyID(id)
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
