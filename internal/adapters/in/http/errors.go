package http

import (
	"errors"
	"net/http"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps domain and application errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, loyalty.ErrInsufficientBalance),
		errors.Is(err, loyalty.ErrInvalidReferralCode),
		errors.Is(err, loyalty.ErrAlreadyReferred):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error body for the given failure.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
