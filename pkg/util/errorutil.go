package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. The HTTP boundary translates
// it into the wire error shape; business logic only constructs and returns it.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewInvalidCredentials reports a failed login. The message is deliberately
// identical for unknown usernames and wrong passwords so callers cannot
// enumerate accounts.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "invalid username or password", http.StatusUnauthorized)
}

// NewInvalidToken reports a missing-signature, malformed, tampered or expired
// bearer token.
func NewInvalidToken(message string) error {
	return NewDomainError("INVALID_TOKEN", message, http.StatusUnauthorized)
}

// NewUnauthenticated reports a request that carried no identity at all.
func NewUnauthenticated() error {
	return NewDomainError("AUTHENTICATION_REQUIRED", "authentication required", http.StatusUnauthorized)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden)
}

func NewNotFound(resource string) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

// NewInternalError wraps an unexpected error. The wire message is a generic
// notice; the wrapped cause is only ever logged server-side.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "an unexpected error occurred, please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "an unexpected error occurred, please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
