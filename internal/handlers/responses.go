package handlers

import (
	stderrors "errors"

	"purchase-report/internal/errors"
	"purchase-report/internal/logging"
	"purchase-report/internal/repositories"
	"purchase-report/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers answer failures with the helpers below:
//
// 1. SendError - client errors and expected business outcomes (4xx)
//    - bad input: SendError(c, errors.ValidationInvalidDate, errors.WithDetails("..."))
//    - nothing to report: SendError(c, errors.PurchaseRecordsNotFound)
//
// 2. SendValidationError - go-playground/validator failures, one detail per field
//
// 3. SendSystemError - store and other internal failures (500). The cause is logged, never returned.
//    Database failures answer SYSTEM_002, anything else SYSTEM_001.

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(logging.TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// ValidationErrorCode picks the error code for a validator failure.
// A malformed date wins over a missing field.
func ValidationErrorCode(err error) errors.ErrorCode {
	switch {
	case validation.HasTag(err, "iso_date"):
		return errors.ValidationInvalidDate
	case validation.HasTag(err, "required"):
		return errors.ValidationRequiredField
	default:
		return errors.ValidationGeneral
	}
}

// SendValidationError renders validator failures with one sorted detail per field
func SendValidationError(c echo.Context, err error) error {
	fields, ok := validation.FieldErrors(err)
	if !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	errorResponse := errors.NewValidationError(ValidationErrorCode(err), fields, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)

	var errorResponse *errors.ErrorResponse
	var internalErr error
	if stderrors.Is(err, repositories.ErrDatabase) {
		errorResponse, internalErr = errors.WrapDatabaseError(err, traceID)
	} else {
		errorResponse, internalErr = errors.WrapSystemError(err, traceID)
	}

	logging.ForRequest(logrus.StandardLogger(), c).
		WithError(internalErr).
		WithField("error_code", errorResponse.Error.Code).
		Error("request failed with internal error")

	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
