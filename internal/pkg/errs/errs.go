package errs

import (
	"fmt"
	"net/http"
	"strings"

	"authsite/internal/pkg/logx"
)

// CustomError is the error structure rendered back to the visitor.
// It carries a business code, a human-readable message and the HTTP status to respond with.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the user-facing error text shown on the page.
	Message string

	// Status is the HTTP status code the page is rendered with.
	Status int
}

// Error implements the standard Go error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError builds a *CustomError from a predefined error code.
// Details are used as printf arguments when the message template has placeholders;
// for ErrUnknown the first detail may be the underlying error, which is logged.
// An unregistered code falls back to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]
	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)
		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr
	if customErr.Status == 0 {
		customErr.Status = http.StatusOK
	}

	switch {
	case len(details) == 0:
	case code == ErrUnknown:
		if originalErr, ok := details[0].(error); ok {
			logx.Error(originalErr, "Handling ErrUnknown with underlying error")
		}
	case strings.Contains(customErr.Message, "%"):
		customErr.Message = fmt.Sprintf(customErr.Message, details...)
	default:
		logx.Warn("Details provided for error, but message template has no formatting placeholders. Details ignored.",
			"code", code)
	}

	return &customErr
}
