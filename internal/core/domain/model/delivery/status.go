package delivery

import (
	"fmt"

	"pod/internal/pkg/errs"
)

// ErrInvalidTransition is wrapped by every rejected status transition.
var ErrInvalidTransition = errs.NewValueIsInvalidError("status transition")

// Status represents the lifecycle state of a delivery.
//
// Transitions allowed by the messenger:
//
//	Start:   assigned, in-progress            -> in-progress
//	Deliver: assigned, in-progress, delivered -> delivered
//	Fail:    assigned, in-progress            -> failed
//
// AttachProof and Reassign are accepted from any valid status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the state of a delivery that exists but has no messenger yet.
	Pending

	// Assigned is the initial state of every delivery created by Assign.
	Assigned

	// InProgress means the messenger is on the way.
	InProgress

	// Delivered is terminal for the messenger and requires proof.
	Delivered

	// Failed is terminal for the messenger; a coordinator may reassign it.
	Failed

	// Verified is a legacy value kept so that older records still load.
	// Verification is tracked by VerificationStatus.
	Verified
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in-progress",
		Delivered:  "delivered",
		Failed:     "failed",
		Verified:   "verified",
	}
}

// ParseStatus converts the stored or wire form ("in-progress", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the six named states.
func (s Status) Validate() error {
	if s <= Unknown || s > Verified {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsMessengerSettable reports whether a messenger may request s through UpdateStatus.
func (s Status) IsMessengerSettable() bool {
	return s == InProgress || s == Delivered || s == Failed
}

// Start transitions to InProgress.
func (s Status) Start() (Status, error) {
	if s != Assigned && s != InProgress {
		return Unknown, transitionError(s, "start")
	}
	return InProgress, nil
}

// Deliver transitions to Delivered. Re-confirming a delivered delivery is allowed.
func (s Status) Deliver() (Status, error) {
	if s != Assigned && s != InProgress && s != Delivered {
		return Unknown, transitionError(s, "deliver")
	}
	return Delivered, nil
}

// Fail transitions to Failed.
func (s Status) Fail() (Status, error) {
	if s != Assigned && s != InProgress {
		return Unknown, transitionError(s, "fail")
	}
	return Failed, nil
}

// TransitionTo dispatches to Start, Deliver or Fail according to target.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case InProgress:
		return s.Start()
	case Delivered:
		return s.Deliver()
	case Failed:
		return s.Fail()
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot be set by a messenger", target),
		)
	}
}

func transitionError(from Status, action string) error {
	return fmt.Errorf("%w: %s is not a valid status to %s", ErrInvalidTransition, from, action)
}

// VerificationStatus is the coordinator review state of a delivery.
type VerificationStatus int

const (
	UnknownVerification VerificationStatus = iota
	VerificationPending
	VerificationVerified
	VerificationRejected
)

func getVerificationStrings() map[VerificationStatus]string {
	return map[VerificationStatus]string{
		UnknownVerification:  "unknown",
		VerificationPending:  "pending",
		VerificationVerified: "verified",
		VerificationRejected: "rejected",
	}
}

// ParseVerificationStatus converts "pending", "verified" or "rejected".
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	for v, str := range getVerificationStrings() {
		if v != UnknownVerification && str == s {
			return v, nil
		}
	}
	return UnknownVerification, errs.NewValueIsInvalidErrorWithCause(
		"verificationStatus",
		fmt.Errorf("%q is not a valid verification status", s),
	)
}

func (v VerificationStatus) Validate() error {
	if v <= UnknownVerification || v > VerificationRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"verificationStatus",
			fmt.Errorf("%d is not a valid verification status", v),
		)
	}
	return nil
}

func (v VerificationStatus) String() string {
	if str, ok := getVerificationStrings()[v]; ok {
		return str
	}
	return "unknown"
}

// IsDecision reports whether v is an outcome a coordinator can record.
func (v VerificationStatus) IsDecision() bool {
	return v == VerificationVerified || v == VerificationRejected
}
