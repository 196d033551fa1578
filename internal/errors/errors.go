package gerr

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required form field is absent from the request body.
	ErrMissingField = errors.New("missing form field")
	// ErrMalformedForm is returned when the request body can't be decoded as form data.
	ErrMalformedForm = errors.New("malformed form body")

	ErrPersistence         = errors.New("persistence failure")
	ErrDuplicateSubscriber = errors.New("submitted email already subscribed")

	ErrStartup = errors.New("startup failure")
	ErrHarness = errors.New("test harness failure")

	BadMailRequest      = errors.New("bad mail request")
	MailApiLimitReached = errors.New("mail api limit reached")
)

// ValidationError describes a client supplied value that failed domain validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid subscriber %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err (or anything it wraps) is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsClientError reports whether err should be answered with a 400.
func IsClientError(err error) bool {
	return IsValidation(err) || errors.Is(err, ErrMissingField) || errors.Is(err, ErrMalformedForm)
}
