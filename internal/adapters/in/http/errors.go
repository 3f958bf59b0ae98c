package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/rider"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to an HTTP status. Conflicts win over
// validation failures when an error carries both.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, rider.ErrRiderIsBusy):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, account.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// failed writes err as an Error body. Internal errors are logged and their
// text is not leaked to the client.
func (s *Server) failed(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return errorJSON(ctx, status, http.StatusText(status))
	}
	return errorJSON(ctx, status, err.Error())
}

// claimFailed is failed for rider claims on an order (accept, assign): a
// refused status transition means someone else got there first.
func (s *Server) claimFailed(ctx echo.Context, err error) error {
	if statusFor(err) == http.StatusBadRequest && errors.Is(err, errs.ErrValueIsInvalid) {
		return errorJSON(ctx, http.StatusConflict, err.Error())
	}
	return s.failed(ctx, err)
}

func badRequest(ctx echo.Context, err error) error {
	return errorJSON(ctx, http.StatusBadRequest, err.Error())
}

// errorHandler renders echo's own errors (routing, binding, JWT) in the
// same Error shape as the handlers.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = errorJSON(ctx, status, message)
}
