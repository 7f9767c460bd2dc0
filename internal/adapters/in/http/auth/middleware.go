package auth

import (
	"errors"
	"fmt"
	"strings"

	"pod/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

var (
	ErrMissingToken = errors.New("authorization token is missing")
	ErrForbidden    = errors.New("insufficient permissions")
)

const principalKey = "pod.principal"

// Authenticate rejects requests without a valid bearer token and stores the
// caller for Require and PrincipalFrom.
func Authenticate(tokens *JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				return ErrMissingToken
			}

			principal, err := tokens.VerifyToken(strings.TrimSpace(tokenString))
			if err != nil {
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// Require lets the request through only when the caller's role grants capability.
// It must run after Authenticate.
func Require(capability user.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return ErrMissingToken
			}
			if !principal.Can(capability) {
				return fmt.Errorf("%w: %s requires %s", ErrForbidden, principal.Role, capability)
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller stored by Authenticate.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}
