package domain

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidUserID   = errors.New("invalid user ID format")
	ErrEmailImmutable  = errors.New("you can't update email")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrNoImage         = errors.New("no image provided")
	ErrUploadFailed    = errors.New("image upload failed")
)

// ValidationError carries every violated signup rule so the client sees the
// full list in one response, not just the first failure.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
