package domain

import "fmt"

// DomainError represents a gateway-level error with a stable code.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes, one per failure class the gateway distinguishes.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeUnavailable  = "UNAVAILABLE"
	ErrCodeUpstream     = "UPSTREAM_ERROR"
)

// Validation errors
var (
	ErrMissingTenantID      = NewDomainError(ErrCodeValidation, "tenant_id is required")
	ErrMissingContent       = NewDomainError(ErrCodeValidation, "content is required")
	ErrMissingQuery         = NewDomainError(ErrCodeValidation, "query is required")
	ErrInvalidSourceKind    = NewDomainError(ErrCodeValidation, "source must be one of: message, text, json")
	ErrInvalidLimit         = NewDomainError(ErrCodeValidation, "limit must be a positive integer")
	ErrDeleteNotConfirmed   = NewDomainError(ErrCodeValidation, "must set confirm=true to delete tenant data")
	ErrInvalidReferenceTime = NewDomainError(ErrCodeValidation, "reference_time must be a valid RFC3339 timestamp")
)

// Authorization errors
var (
	ErrInvalidAPIKey = NewDomainError(ErrCodeUnauthorized, "invalid api key")
)

// Availability errors
var (
	// ErrGraphUnavailable is returned when a handler runs before the graph
	// engine finished (or survived) startup.
	ErrGraphUnavailable = NewDomainError(ErrCodeUnavailable, "graph engine not initialized")
)

// Upstream wraps any error surfaced by the graph engine. No upstream subtypes
// are distinguished and no retry is attempted: a partially applied ingestion
// is reported as a flat failure.
func Upstream(err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeUpstream, "graph engine call failed", err)
}
