package apperrors

import (
	"net/http"
)

// =========================================================================
// Factories
// =========================================================================

// ErrNotFound wraps a repository "record not found" for the given domain.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrConflict is returned for unique-key clashes and stale writes.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrExternalService wraps a failure of a third-party collaborator
// (generative model, payment processor, registry lookup, object storage).
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// ErrInvalidTransition rejects a status edge outside the transition table.
func ErrInvalidTransition(domain, from, to string) *AppError {
	return New(CodeInvalidTransition, domain, "Status change not allowed", http.StatusConflict).
		WithDetails(map[string]string{"from": from, "to": to})
}

// ErrFileRejected rejects an upload by type or size. Size violations use 413.
func ErrFileRejected(message string, tooLarge bool) *AppError {
	code := http.StatusUnsupportedMediaType
	if tooLarge {
		code = http.StatusRequestEntityTooLarge
	}
	return New(CodeFileRejected, "upload", message, code)
}

// ErrExtractionParse means the assistant replied with something that is not a JSON object.
func ErrExtractionParse(err error) *AppError {
	return Wrap(err, CodeExtractionParseError, "assistant", "The assistant reply could not be read, please try again", http.StatusUnprocessableEntity)
}

// ErrAssistantUnavailable covers every failure to get a usable reply from the model.
func ErrAssistantUnavailable(err error) *AppError {
	return ErrExternalService(err, "assistant", "Could not reach the assistant, please try again")
}

// =========================================================================
// Predefined errors
// =========================================================================

var ErrRateLimited = New(
	CodeLimitExceeded,
	"assistant",
	"Too many requests, please wait a moment",
	http.StatusTooManyRequests,
)

var ErrInvalidSignature = New(
	CodeUnauthorized,
	"payment",
	"Invalid webhook signature",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeConflict,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)
