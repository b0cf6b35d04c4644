package shared

import "errors"

// DomainError represents a domain-level error.
// Two DomainErrors match under errors.Is when their codes are equal, so a
// wrapped or re-worded error still matches the sentinel it was derived from.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapDomainError creates a domain error carrying an underlying cause
func WrapDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Error codes
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotAuthenticated   = "NOT_AUTHENTICATED"
	CodeExternalService    = "EXTERNAL_SERVICE_ERROR"
	CodePersistence        = "PERSISTENCE_ERROR"
	CodePartialPersistence = "PARTIAL_PERSISTENCE_FAILURE"
	CodeAccountingFailure  = "ACCOUNTING_FAILURE"
	CodeDuplicateRequest   = "DUPLICATE_REQUEST"
	CodeForbidden          = "FORBIDDEN"
)

// Common domain errors
var (
	ErrNotFound           = NewDomainError(CodeNotFound, "Resource not found")
	ErrValidation         = NewDomainError(CodeValidation, "Invalid input provided")
	ErrNotAuthenticated   = NewDomainError(CodeNotAuthenticated, "No resolvable owner identity")
	ErrExternalService    = NewDomainError(CodeExternalService, "External service call failed")
	ErrPersistence        = NewDomainError(CodePersistence, "Store write failed")
	ErrPartialPersistence = NewDomainError(CodePartialPersistence, "Store wrote some but not all rows")
	ErrAccountingFailure  = NewDomainError(CodeAccountingFailure, "Usage accounting failed")
	ErrDuplicateRequest   = NewDomainError(CodeDuplicateRequest, "Request was already processed")
	ErrForbidden          = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
)

// NewValidationError returns a validation error with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewPersistenceError wraps a store failure
func NewPersistenceError(op string, cause error) *DomainError {
	return WrapDomainError(CodePersistence, op+" failed", cause)
}

// NewExternalServiceError wraps a failed or timed-out external call
func NewExternalServiceError(message string, cause error) *DomainError {
	return WrapDomainError(CodeExternalService, message, cause)
}
