package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pod/internal/adapters/in/http/auth"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "required", err: errs.NewValueIsRequiredError("name"), want: http.StatusBadRequest},
		{name: "out of range", err: errs.NewValueIsOutOfRangeError("quantity", -1, 1, "unbounded"), want: http.StatusBadRequest},
		{name: "invalid transition", err: fmt.Errorf("%w: delivered to assigned", delivery.ErrInvalidTransition), want: http.StatusBadRequest},
		{name: "proof required", err: delivery.ErrProofRequired, want: http.StatusBadRequest},
		{name: "not found", err: errs.NewObjectNotFoundError("deliveryId", "x"), want: http.StatusNotFound},
		{name: "not owner", err: delivery.ErrNotDeliveryOwner, want: http.StatusForbidden},
		{name: "missing capability", err: fmt.Errorf("%w: messenger", auth.ErrForbidden), want: http.StatusForbidden},
		{name: "bad credentials", err: user.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "inactive", err: user.ErrAccountInactive, want: http.StatusUnauthorized},
		{name: "bad token", err: fmt.Errorf("%w: garbage", auth.ErrInvalidToken), want: http.StatusUnauthorized},
		{name: "email taken", err: fmt.Errorf("%w: a@b.c", user.ErrEmailTaken), want: http.StatusConflict},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), want: http.StatusMethodNotAllowed},
		{name: "store failure", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := httpError(tt.err)

			assert.Equal(t, tt.want, got.Code)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestHTTPError_HidesStoreDetails(t *testing.T) {
	got := httpError(errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusText(http.StatusInternalServerError), got.Message)
}
