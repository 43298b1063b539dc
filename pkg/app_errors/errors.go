package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventUnavailable    = errors.New("event temporarily unavailable")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrValidation          = errors.New("validation failed")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrDuplicateTitle      = errors.New("duplicate title for creator")
	ErrScheduleLocked      = errors.New("scheduled date cannot change while live")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already exists")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFile     = errors.New("unsupported file type")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError 欄位驗證錯誤，errors.Is(err, ErrValidation) 為 true
type ValidationError struct {
	Field   string
	Message string
	cause   error
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, cause: ErrValidation}
}

// WrapValidation keeps a more specific sentinel reachable through errors.Is.
func WrapValidation(field, message string, cause error) *ValidationError {
	return &ValidationError{Field: field, Message: message, cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
