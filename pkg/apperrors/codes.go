package apperrors

// ErrorCode is the machine-readable code carried in every error response.
type ErrorCode string

const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business rules
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeConflict             ErrorCode = "CONFLICT"
	CodeLimitExceeded        ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidTransition    ErrorCode = "INVALID_TRANSITION"
	CodeFileRejected         ErrorCode = "FILE_REJECTED"
	CodeExtractionParseError ErrorCode = "EXTRACTION_PARSE_ERROR"

	// Auth
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
