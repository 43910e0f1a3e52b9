package shared

import (
	"errors"
	"fmt"
)

// Error codes surfaced across the core boundary
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeIncompatibleUnits = "INCOMPATIBLE_UNITS"
	CodeInvalidState      = "INVALID_STATE"
	CodeConflict          = "CONFLICT"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so callers can write
// errors.Is(err, shared.ErrValidation) regardless of the message.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrValidation        = NewDomainError(CodeValidation, "Validation failed")
	ErrNotFound          = NewDomainError(CodeNotFound, "Resource not found")
	ErrIncompatibleUnits = NewDomainError(CodeIncompatibleUnits, "Units belong to different categories")
	ErrInvalidState      = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrConflict          = NewDomainError(CodeConflict, "Resource already exists")
)

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError(CodeValidation, fmt.Sprintf(format, args...))
}

// NewNotFoundError creates a not-found error naming the missing resource
func NewNotFoundError(resource string, id any) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s %v not found", resource, id))
}

// NewStateError creates an invalid-state error with a formatted message
func NewStateError(format string, args ...any) *DomainError {
	return NewDomainError(CodeInvalidState, fmt.Sprintf(format, args...))
}

// NewConflictError creates a conflict error with a formatted message
func NewConflictError(format string, args ...any) *DomainError {
	return NewDomainError(CodeConflict, fmt.Sprintf(format, args...))
}

// NewIncompatibleUnitsError reports a conversion across unit categories
func NewIncompatibleUnitsError(from, to string) *DomainError {
	return NewDomainError(CodeIncompatibleUnits, fmt.Sprintf("cannot convert %s to %s", from, to))
}

// AsDomainError extracts a DomainError from an error chain
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
