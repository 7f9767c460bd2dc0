package bill

import (
	"errors"
	"strings"
	"time"

	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"
	"pod/internal/pkg/guard"
)

var (
	// ErrBillIsNotConstructed is returned when a Bill was not built via NewBill or RestoreBill.
	ErrBillIsNotConstructed    = errors.New("Bill must be created via NewBill constructor")
	ErrAccountNumberIsRequired = errs.NewValueIsRequiredError("accountNumber")
	ErrCustomerNameIsRequired  = errs.NewValueIsRequiredError("customerName")
	ErrAddressIsRequired       = errs.NewValueIsRequiredError("address")
)

// Details holds the descriptive fields entered by a coordinator.
// Zero Type means RegularBill and zero Quantity means 1.
type Details struct {
	AccountNumber string
	CustomerName  string
	Address       string
	Route         string
	Area          string
	Type          Type
	BillingMonth  *time.Time
	Amount        float64
	Quantity      int
	Notes         string
}

// Bill is the aggregate root for a billing record.
//
// Invariants:
//   - account number, customer name and address are non-empty
//   - an assigned or delivered bill has an assignee
//   - a delivered bill never goes back to assigned through Assign
type Bill struct {
	id         kernel.UUID
	details    Details
	status     Status
	assignedTo *kernel.UUID
	createdAt  time.Time
	updatedAt  time.Time
	guard      guard.ConstructorGuard
}

// NewBill creates an unassigned bill.
func NewBill(id kernel.UUID, details Details, now time.Time) (*Bill, error) {
	b := &Bill{
		status:    Unassigned,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setDetails(details),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBill rebuilds a Bill from storage.
func RestoreBill(
	id kernel.UUID,
	details Details,
	status Status,
	assignedTo *kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Bill, error) {
	b := &Bill{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	b.status = status

	if assignedTo != nil {
		if err := assignedTo.Validate(); err != nil {
			return nil, err
		}
		a := *assignedTo
		b.assignedTo = &a
	}

	return b, nil
}

func (b *Bill) Validate() error {
	if b == nil {
		return ErrBillIsNotConstructed
	}
	return b.guard.Validate(ErrBillIsNotConstructed)
}

func (b *Bill) IsEqual(other *Bill) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Bill) ID() kernel.UUID       { return b.id }
func (b *Bill) Details() Details      { return b.details }
func (b *Bill) AccountNumber() string { return b.details.AccountNumber }
func (b *Bill) CustomerName() string  { return b.details.CustomerName }
func (b *Bill) Address() string       { return b.details.Address }
func (b *Bill) Route() string         { return b.details.Route }
func (b *Bill) Area() string          { return b.details.Area }
func (b *Bill) Type() Type            { return b.details.Type }
func (b *Bill) Status() Status        { return b.status }
func (b *Bill) CreatedAt() time.Time  { return b.createdAt }
func (b *Bill) UpdatedAt() time.Time  { return b.updatedAt }

// AssignedTo returns the messenger id, or nil for an unassigned bill.
func (b *Bill) AssignedTo() *kernel.UUID {
	if b.assignedTo == nil {
		return nil
	}
	a := *b.assignedTo
	return &a
}

// IsDisconnectionNotice reports whether the bill is a disconnection notice.
func (b *Bill) IsDisconnectionNotice() bool {
	return b.details.Type == DisconnectionNotice
}

// Assign hands the bill to a messenger.
func (b *Bill) Assign(messengerID kernel.UUID, now time.Time) error {
	if err := messengerID.Validate(); err != nil {
		return err
	}
	next, err := b.status.Assign()
	if err != nil {
		return err
	}

	b.status = next
	b.assignedTo = &messengerID
	b.updatedAt = now
	return nil
}

// MarkDelivered records that one of the bill's deliveries was delivered.
func (b *Bill) MarkDelivered(now time.Time) {
	b.status = Delivered
	b.updatedAt = now
}

// Reassign moves the bill to a new messenger. stillDelivered tells whether
// another delivery of the bill remains delivered, which keeps the bill delivered.
func (b *Bill) Reassign(messengerID kernel.UUID, stillDelivered bool, now time.Time) error {
	if err := messengerID.Validate(); err != nil {
		return err
	}

	b.assignedTo = &messengerID
	if stillDelivered {
		b.status = Delivered
	} else {
		b.status = Assigned
	}
	b.updatedAt = now
	return nil
}

// Unassign clears the assignee, as done when the assigned messenger is
// removed. stillDelivered tells whether a delivery of the bill by someone else
// remains delivered, which keeps the bill delivered.
func (b *Bill) Unassign(stillDelivered bool, now time.Time) {
	b.assignedTo = nil
	if stillDelivered {
		b.status = Delivered
	} else {
		b.status = Unassigned
	}
	b.updatedAt = now
}

func (b *Bill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bill) setDetails(d Details) error {
	d.AccountNumber = strings.TrimSpace(d.AccountNumber)
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.Address = strings.TrimSpace(d.Address)
	d.Route = strings.TrimSpace(d.Route)
	d.Area = strings.TrimSpace(d.Area)

	if d.Type == UnknownType {
		d.Type = RegularBill
	}
	if d.Quantity == 0 {
		d.Quantity = 1
	}

	var err error
	if d.AccountNumber == "" {
		err = errors.Join(err, ErrAccountNumberIsRequired)
	}
	if d.CustomerName == "" {
		err = errors.Join(err, ErrCustomerNameIsRequired)
	}
	if d.Address == "" {
		err = errors.Join(err, ErrAddressIsRequired)
	}
	if d.Quantity < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("quantity", d.Quantity, 1, "unbounded"))
	}
	if d.Amount < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("amount", d.Amount, 0, "unbounded"))
	}
	err = errors.Join(err, d.Type.Validate())
	if err != nil {
		return err
	}

	if d.BillingMonth != nil {
		m := *d.BillingMonth
		d.BillingMonth = &m
	}
	b.details = d
	return nil
}
