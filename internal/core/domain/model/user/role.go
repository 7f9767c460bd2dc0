package user

import (
	"fmt"
	"strings"

	"pod/internal/pkg/errs"
)

// Role is the closed set of user roles.
type Role int

const (
	// UnknownRole is the zero value and never valid.
	UnknownRole Role = iota
	Admin
	Coordinator
	Messenger
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Admin:       "admin",
		Coordinator: "coordinator",
		Messenger:   "messenger",
	}
}

// ParseRole converts the wire form ("admin", "coordinator", "messenger") to a Role.
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == needle {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if r <= UnknownRole || r > Messenger {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Capability names an operation class guarded at the HTTP boundary.
type Capability int

const (
	ManageUsers Capability = iota + 1
	ManageMessengers
	ManageBills
	VerifyDeliveries
	GenerateReports
	PerformDeliveries
	ViewDeliveries
)

func (c Capability) String() string {
	switch c {
	case ManageUsers:
		return "ManageUsers"
	case ManageMessengers:
		return "ManageMessengers"
	case ManageBills:
		return "ManageBills"
	case VerifyDeliveries:
		return "VerifyDeliveries"
	case GenerateReports:
		return "GenerateReports"
	case PerformDeliveries:
		return "PerformDeliveries"
	case ViewDeliveries:
		return "ViewDeliveries"
	default:
		return "Unknown"
	}
}

// capabilities is the role table. Admins inherit everything coordinators have.
var capabilities = map[Role]map[Capability]bool{
	Admin: {
		ManageUsers:      true,
		ManageMessengers: true,
		ManageBills:      true,
		VerifyDeliveries: true,
		GenerateReports:  true,
		ViewDeliveries:   true,
	},
	Coordinator: {
		ManageMessengers: true,
		ManageBills:      true,
		VerifyDeliveries: true,
		GenerateReports:  true,
		ViewDeliveries:   true,
	},
	Messenger: {
		PerformDeliveries: true,
		ViewDeliveries:    true,
	},
}

// Can reports whether the role grants capability c.
func (r Role) Can(c Capability) bool {
	return capabilities[r][c]
}
