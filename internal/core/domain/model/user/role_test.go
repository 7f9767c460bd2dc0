package user_test

import (
	"testing"

	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("should parse every role case-insensitively", func(t *testing.T) {
		for input, want := range map[string]user.Role{
			"admin":       user.Admin,
			"Coordinator": user.Coordinator,
			" messenger ": user.Messenger,
		} {
			got, err := user.ParseRole(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, want.String(), got.String())
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "driver"} {
			_, err := user.ParseRole(input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}

func TestRole_Can(t *testing.T) {
	tests := []struct {
		role    user.Role
		allowed []user.Capability
		denied  []user.Capability
	}{
		{
			role:    user.Admin,
			allowed: []user.Capability{user.ManageUsers, user.ManageMessengers, user.ManageBills, user.VerifyDeliveries, user.GenerateReports, user.ViewDeliveries},
			denied:  []user.Capability{user.PerformDeliveries},
		},
		{
			role:    user.Coordinator,
			allowed: []user.Capability{user.ManageMessengers, user.ManageBills, user.VerifyDeliveries, user.GenerateReports, user.ViewDeliveries},
			denied:  []user.Capability{user.ManageUsers, user.PerformDeliveries},
		},
		{
			role:    user.Messenger,
			allowed: []user.Capability{user.PerformDeliveries, user.ViewDeliveries},
			denied:  []user.Capability{user.ManageUsers, user.ManageMessengers, user.ManageBills, user.VerifyDeliveries, user.GenerateReports},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			for _, c := range tt.allowed {
				assert.True(t, tt.role.Can(c), c.String())
			}
			for _, c := range tt.denied {
				assert.False(t, tt.role.Can(c), c.String())
			}
		})
	}

	t.Run("unknown role has no capabilities", func(t *testing.T) {
		assert.False(t, user.UnknownRole.Can(user.ViewDeliveries))
		assert.Error(t, user.UnknownRole.Validate())
	})
}
