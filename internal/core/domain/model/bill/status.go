package bill

import (
	"fmt"

	"pod/internal/pkg/errs"
)

// Status is the bill lifecycle state.
type Status int

const (
	// Unknown is the invalid zero value.
	Unknown Status = iota
	Unassigned
	Assigned
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Unassigned: "unassigned",
		Assigned:   "assigned",
		Delivered:  "delivered",
	}
}

// ParseStatus converts the stored or wire form to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("bill status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("bill status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Assign transitions to Assigned. Delivered bills stay delivered.
func (s Status) Assign() (Status, error) {
	if s != Unassigned && s != Assigned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"bill status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return Assigned, nil
}

// Type distinguishes ordinary bills from disconnection notices.
type Type int

const (
	UnknownType Type = iota
	RegularBill
	DisconnectionNotice
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType:         "unknown",
		RegularBill:         "regular_bill",
		DisconnectionNotice: "disconnection_notice",
	}
}

// ParseType converts the wire form; the empty string means RegularBill.
func ParseType(s string) (Type, error) {
	if s == "" {
		return RegularBill, nil
	}
	for t, str := range getTypeStrings() {
		if t != UnknownType && str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("billType", fmt.Errorf("%q is not a valid bill type", s))
}

func (t Type) Validate() error {
	if t != RegularBill && t != DisconnectionNotice {
		return errs.NewValueIsInvalidErrorWithCause("billType", fmt.Errorf("%d is not a valid bill type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
