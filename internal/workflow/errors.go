package workflow

import "errors"

// Sentinel errors for common workflow failures
var (
	ErrNotFound           = errors.New("not found")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotConfigured      = errors.New("not configured")
)

// ValidationError is a form-level failure surfaced inline next to the
// offending field. Workflows that return one have written nothing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
