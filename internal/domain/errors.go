package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotPublished indicates the site exists but is not visible to guests.
	ErrNotPublished = errors.New("site not published")
	// ErrSlugTaken indicates a slug uniqueness violation on save.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrInvalidCredentials indicates a failed email/password login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidSitePassword indicates a wrong guest password for a protected site.
	ErrInvalidSitePassword = errors.New("incorrect site password")
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// ValidationError carries field-level messages for malformed input.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, "; "))
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
