package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	ErrCodeValidation  = "ERR_VALIDATION"
	ErrCodeBadRequest  = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"

	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
	ErrCodeRateLimited     = "ERR_RATE_LIMITED"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when no owner identity can be resolved
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeDuplicateRequest is used when an idempotency key was already consumed
	ErrCodeDuplicateRequest = "ERR_DUPLICATE_REQUEST"
)

// Collaborator error codes
const (
	// ErrCodeExternalService is used when the generation service fails or times out
	ErrCodeExternalService = "ERR_EXTERNAL_SERVICE"
	// ErrCodePersistence is used when a store write fails
	ErrCodePersistence = "ERR_PERSISTENCE"
	// ErrCodePartialPersistence is used when a multi-row write stopped part way
	ErrCodePartialPersistence = "ERR_PARTIAL_PERSISTENCE"
	ErrCodeAccountingFailure  = "ERR_ACCOUNTING_FAILURE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRateLimited:     http.StatusTooManyRequests,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeDuplicateRequest: http.StatusConflict,

	// Collaborator errors
	ErrCodeExternalService:    http.StatusBadGateway,
	ErrCodePersistence:        http.StatusInternalServerError,
	ErrCodePartialPersistence: http.StatusInternalServerError,
	ErrCodeAccountingFailure:  http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                   ErrCodeNotFound,
	"VALIDATION_ERROR":            ErrCodeValidation,
	"NOT_AUTHENTICATED":           ErrCodeUnauthorized,
	"FORBIDDEN":                   ErrCodeForbidden,
	"EXTERNAL_SERVICE_ERROR":      ErrCodeExternalService,
	"PERSISTENCE_ERROR":           ErrCodePersistence,
	"PARTIAL_PERSISTENCE_FAILURE": ErrCodePartialPersistence,
	"ACCOUNTING_FAILURE":          ErrCodeAccountingFailure,
	"DUPLICATE_REQUEST":           ErrCodeDuplicateRequest,
}

// NormalizeErrorCode converts a domain error code to the API format.
// Codes already in the API format, or unknown, are returned as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
