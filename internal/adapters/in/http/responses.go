package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error kinds returned in the failure envelope.
const (
	KindNotFound                     = "NotFound"
	KindValidation                   = "ValidationError"
	KindForbiddenFieldEdit           = "ForbiddenFieldEdit"
	KindInvalidTransition            = "InvalidTransition"
	KindConflictRequiresReassignment = "ConflictRequiresReassignment"
	KindReassignTargetNotFound       = "ReassignTargetNotFound"
	KindRejected                     = "Rejected"
	KindInternal                     = "Internal"
)

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Kind    string         `json:"kind"`
	Details map[string]any `json:"details,omitempty"`
}

func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, SuccessResponse{Success: true, Data: data})
}

// ErrorStatus maps an error to its HTTP status and envelope.
func ErrorStatus(err error) (int, ErrorResponse) {
	var (
		httpErr      *echo.HTTPError
		forbidden    *errs.ForbiddenFieldEditError
		invalid      *errs.InvalidTransitionError
		reassignment *errs.ReassignmentRequiredError
	)

	switch {
	case errors.As(err, &httpErr):
		kind := KindValidation
		switch {
		case httpErr.Code == http.StatusNotFound:
			kind = KindNotFound
		case httpErr.Code >= http.StatusInternalServerError:
			kind = KindInternal
		}
		return httpErr.Code, ErrorResponse{Error: fmt.Sprint(httpErr.Message), Kind: kind}

	case errors.As(err, &forbidden):
		return http.StatusForbidden, ErrorResponse{
			Error:   err.Error(),
			Kind:    KindForbiddenFieldEdit,
			Details: map[string]any{"fields": forbidden.Fields},
		}

	case errors.As(err, &invalid):
		return http.StatusConflict, ErrorResponse{
			Error:   err.Error(),
			Kind:    KindInvalidTransition,
			Details: map[string]any{"from": invalid.From, "to": invalid.To},
		}

	case errors.As(err, &reassignment):
		return http.StatusConflict, ErrorResponse{
			Error:   err.Error(),
			Kind:    KindConflictRequiresReassignment,
			Details: map[string]any{"orderCount": reassignment.OrderCount},
		}

	case errors.Is(err, errs.ErrReassignTargetNotFound):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: KindReassignTargetNotFound}

	case errors.Is(err, errs.ErrOperationRejected):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Kind: KindRejected}

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: KindNotFound}

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: KindValidation}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Kind: KindInternal}
}

// ErrorHandler renders handler errors as failure envelopes. Internal errors are logged
// and their message is not exposed.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := ErrorStatus(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
