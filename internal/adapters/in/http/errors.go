package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"pod/internal/adapters/in/http/auth"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/user"
	"pod/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// httpError classifies err into a status code and response body. Store and
// other unexpected failures are reported as 500 without their details.
func httpError(err error) Error {
	var he *echo.HTTPError

	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrAccountInactive):
		return Error{Code: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, auth.ErrForbidden),
		errors.Is(err, delivery.ErrNotDeliveryOwner):
		return Error{Code: http.StatusForbidden, Message: err.Error()}
	case errors.Is(err, user.ErrEmailTaken):
		return Error{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, delivery.ErrProofRequired),
		errs.IsValidation(err):
		return Error{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.As(err, &he):
		return Error{Code: he.Code, Message: fmt.Sprint(he.Message)}
	default:
		return Error{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	}
}

// errorHandler replaces echo's default handler so that handlers and
// middleware can return domain errors unchanged.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := httpError(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.WarnContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
