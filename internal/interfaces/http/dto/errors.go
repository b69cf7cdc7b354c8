package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is returned for any rejected input value
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is missing or soft-deleted
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeForbidden is used when the client address may not reach a resource
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests such as bad path ids
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when the body is not valid JSON
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodePayloadTooLarge is used when the body exceeds the configured limit
	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API codes. Every
// field-level domain code is a validation failure.
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"INVALID_INPUT":        ErrCodeValidation,
	"INVALID_STATE":        ErrCodeValidation,
	"VALIDATION_ERROR":     ErrCodeValidation,
	"INVALID_NAME":         ErrCodeValidation,
	"INVALID_CATEGORY":     ErrCodeValidation,
	"INVALID_UNIT":         ErrCodeValidation,
	"INVALID_TITLE":        ErrCodeValidation,
	"INVALID_CUISINE":      ErrCodeValidation,
	"INVALID_COOKING_TIME": ErrCodeValidation,
	"INVALID_SERVINGS":     ErrCodeValidation,
	"INVALID_DIFFICULTY":   ErrCodeValidation,
	"INVALID_MEAL_TYPE":    ErrCodeValidation,
	"INVALID_URL":          ErrCodeValidation,
	"INVALID_INGREDIENT":   ErrCodeValidation,
	"INVALID_STATUS":       ErrCodeValidation,
	"INVALID_DATE":         ErrCodeValidation,
	"INVALID_DATE_RANGE":   ErrCodeValidation,
	"BAD_REQUEST":          ErrCodeBadRequest,
}

// NormalizeErrorCode converts a domain error code to its API code. Codes
// already in the API format pass through; anything else is internal.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	if _, ok := ErrorCodeHTTPStatus[code]; ok {
		return code
	}
	return ErrCodeInternal
}

// IsInternal reports whether code hides its message from clients
func IsInternal(code string) bool {
	return code == ErrCodeInternal
}
