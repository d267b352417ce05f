package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies relay failures.
type ErrorKind int

const (
	// KindInternal covers transport failures, malformed payloads and anything unclassified.
	KindInternal ErrorKind = iota
	// KindValidation is a caller error detected before any upstream call.
	KindValidation
	// KindUpstream is a non-success status returned by the upstream gateway.
	KindUpstream
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ErrPromptRequired is returned when a chat request carries no prompt.
var ErrPromptRequired = NewValidationError("Prompt is required")

// Error is a classified relay error.
type Error struct {
	Kind    ErrorKind
	Status  int    // upstream status, KindUpstream only
	Message string // caller-facing summary
	Details string // raw upstream body, KindUpstream only
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a caller error.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewUpstreamError creates an error carrying the upstream status and raw body.
func NewUpstreamError(status int, body string) *Error {
	return &Error{
		Kind:    KindUpstream,
		Status:  status,
		Message: fmt.Sprintf("upstream API error: %d", status),
		Details: body,
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, KindInternal when err is not a classified error.
func KindOf(err error) ErrorKind {
	var relayErr *Error
	if errors.As(err, &relayErr) {
		return relayErr.Kind
	}
	return KindInternal
}

// StatusCode maps err to the HTTP status returned to the caller.
func StatusCode(err error) int {
	var relayErr *Error
	if !errors.As(err, &relayErr) {
		return http.StatusInternalServerError
	}

	switch relayErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUpstream:
		if relayErr.Status < http.StatusBadRequest || relayErr.Status > 599 {
			return http.StatusBadGateway
		}
		return relayErr.Status
	default:
		return http.StatusInternalServerError
	}
}
