package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the domain errors used across
the application tracker: lookup misses, missing preconditions and
failures of external collaborators (SMTP).
*/

// ErrNotFound wraps a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation into a 409.
func ErrAlreadyExists(err error, domain string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the domain does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus builds a 400 for status values outside the known set.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrExternalService wraps an outbound call failure (email send) into a 502.
// The failure is reported once; nothing in this system retries it.
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// ErrMissingDBHandle fires when an operation is invoked without a database
// handle. Operations never fall back to ambient state.
var ErrMissingDBHandle = New(
	CodePrecondition,
	"system",
	"Database handle is required",
	http.StatusInternalServerError,
)

// ErrEmailNotConfigured fires when a send is attempted without SMTP credentials.
var ErrEmailNotConfigured = New(
	CodeInvalidOperation,
	"email",
	"Email account is not configured",
	http.StatusBadRequest,
)
