package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a BAD_REQUEST-class error carrying the joined
// validation messages as its message.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// WrapInternal classifies an unanticipated failure as INTERNAL, keeping the
// cause for logs. Already-classified domain errors pass through unchanged.
func WrapInternal(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return WrapError(ErrInternal, err)
}

// Predefined domain errors
var (
	// Account errors
	ErrUserNotFound       = NewDomainError("USER_NOT_FOUND", "User not found")
	ErrUserExists         = NewDomainError("USER_EXISTS", "User already exists")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "Invalid email or password.")
	ErrEmailImmutable     = NewDomainError("EMAIL_IMMUTABLE", "You cannot change your registered email")
	ErrInvalidUserID      = NewDomainError("INVALID_USER_ID", "Invalid User ID or format")

	// Profile errors
	ErrProfileNotFound   = NewDomainError("PROFILE_NOT_FOUND", "Profile not found")
	ErrProfileOwnerFixed = NewDomainError("PROFILE_OWNER_FIXED", "You cannot update userId")
	ErrInvalidProfileID  = NewDomainError("INVALID_PROFILE_ID", "Invalid Profile ID or format")

	// Authentication errors
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Unauthorized")
	ErrInvalidToken        = NewDomainError("INVALID_TOKEN", "Invalid or expired token")
	ErrTokenExpired        = NewDomainError("TOKEN_EXPIRED", "Token has expired")
	ErrInvalidRefreshToken = NewDomainError("INVALID_REFRESH_TOKEN", "Invalid refresh token")
	ErrTokenGeneration     = NewDomainError("TOKEN_GENERATION", "Failed to generate authentication tokens")

	// Validation errors
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input")

	// System errors
	ErrInternal           = NewDomainError("INTERNAL_ERROR", "Internal server error")
	ErrServiceUnavailable = NewDomainError("SERVICE_UNAVAILABLE", "Service unavailable")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request
	case "VALIDATION_FAILED", "INVALID_INPUT", "INVALID_USER_ID",
		"INVALID_PROFILE_ID", "PROFILE_OWNER_FIXED", "EMAIL_IMMUTABLE":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "INVALID_TOKEN",
		"TOKEN_EXPIRED", "INVALID_REFRESH_TOKEN":
		return http.StatusUnauthorized

	// 404 Not Found
	case "USER_NOT_FOUND", "PROFILE_NOT_FOUND":
		return http.StatusNotFound

	// 409 Conflict
	case "USER_EXISTS":
		return http.StatusConflict

	// 503 Service Unavailable
	case "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
