package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// APIError carries the HTTP status a failure maps to. Controllers turn it
// into the uniform {success:false, message} response body.
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

const (
	ErrCodeValidation     = "validation_error"
	ErrCodeConflict       = "conflict"
	ErrCodeAuthentication = "authentication_error"
	ErrCodeAuthorization  = "authorization_error"
	ErrCodeNotFound       = "not_found"
)

func NewValidationError(message string) *APIError {
	return &APIError{Code: ErrCodeValidation, Message: message, Status: fiber.StatusBadRequest}
}

func NewConflictError(message string) *APIError {
	return &APIError{Code: ErrCodeConflict, Message: message, Status: fiber.StatusBadRequest}
}

func NewAuthenticationError(message string, status int) *APIError {
	return &APIError{Code: ErrCodeAuthentication, Message: message, Status: status}
}

func NewAuthorizationError(message string) *APIError {
	return &APIError{Code: ErrCodeAuthorization, Message: message, Status: fiber.StatusForbidden}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Code: ErrCodeNotFound, Message: message, Status: fiber.StatusNotFound}
}

// IsNotFound reports whether err is a missing-row failure, either our own
// NotFound error or a bare gorm record-not-found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrCodeNotFound
	}
	return errors.Is(err, gorm.ErrRecordNotFound)
}
