package egov

import (
	"errors"
	"fmt"
)

// ErrorCategory is the normalized failure taxonomy of registry calls.
type ErrorCategory string

const (
	// ErrorTimeout indicates the registry took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorCanceled indicates the caller abandoned the request
	ErrorCanceled ErrorCategory = "canceled"

	// ErrorBadData indicates the registry returned a body we could not decode
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorBadRequest indicates the registry rejected our parameters (4xx)
	ErrorBadRequest ErrorCategory = "bad_request"

	// ErrorNotFound indicates the requested law or revision doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorProviderOutage indicates the registry is unavailable (5xx, transport)
	ErrorProviderOutage ErrorCategory = "provider_outage"
)

// Error wraps registry failures with a normalized category.
type Error struct {
	Category   ErrorCategory
	Op         string
	StatusCode int // 0 when no response was received
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("egov %s [%s]: %s", e.Op, e.Category, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func newError(category ErrorCategory, op string, status int, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		Op:         op,
		StatusCode: status,
		Message:    message,
		Underlying: underlying,
	}
}

// GetCategory extracts the category from an error chain; empty if none.
func GetCategory(err error) ErrorCategory {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ""
}

func categoryForStatus(status int) ErrorCategory {
	switch {
	case status == 404:
		return ErrorNotFound
	case status == 429:
		return ErrorRateLimited
	case status == 408 || status == 504:
		return ErrorTimeout
	case status >= 500:
		return ErrorProviderOutage
	default:
		return ErrorBadRequest
	}
}
