package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

const MinPasswordLen = 6

// ErrValidation is the sentinel all field errors unwrap to. Validation runs
// entirely before any request is built; a failure here never reaches the
// network layer.
var ErrValidation = errors.New("validation failed")

// FieldError scopes a validation failure to the offending input field so the
// caller can surface it next to the right widget.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func Email(email string) error {
	if len(email) == 0 {
		return &FieldError{Field: "email", Reason: "empty email"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &FieldError{Field: "email", Reason: "not a valid email address"}
	}
	return nil
}

func Password(password string) error {
	if len(password) < MinPasswordLen {
		return &FieldError{
			Field:  "password",
			Reason: fmt.Sprintf("too short; min %d characters", MinPasswordLen),
		}
	}
	return nil
}

// Credentials gates a login or registration form. Email is checked first so
// the first broken field is the one reported.
func Credentials(email, password string) error {
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}

func Name(field, name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return &FieldError{Field: field, Reason: "empty name"}
	}
	return nil
}
