package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidType      = "VALIDATION_INVALID_TYPE"
	ErrCodeInvalidParent    = "VALIDATION_INVALID_PARENT"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodePageNotFound    = "RESOURCE_PAGE_NOT_FOUND"
	ErrCodeSectionNotFound = "RESOURCE_SECTION_NOT_FOUND"
	ErrCodeStaffNotFound   = "RESOURCE_STAFF_NOT_FOUND"
	ErrCodeResourceExists  = "RESOURCE_ALREADY_EXISTS"
)

// Rate limiting errors (RATE_*)
const (
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
