package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every resource lookup miss so the transport layer
// can map the whole family to a single status code.
var ErrNotFound = errors.New("not found")

var (
	ErrAboutNotFound   = fmt.Errorf("about entry %w", ErrNotFound)
	ErrSkillNotFound   = fmt.Errorf("skill %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrMessageNotFound = fmt.Errorf("message %w", ErrNotFound)
)

// ErrInvalidInput marks a request rejected by a required-field or range check.
var ErrInvalidInput = errors.New("invalid input")

// ErrUploadsDisabled is returned when a file is submitted but no asset host is configured.
var ErrUploadsDisabled = errors.New("image uploads are not configured")

// InvalidInput wraps ErrInvalidInput with a user-facing message.
func InvalidInput(msg string) error {
	return &inputError{msg: msg}
}

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Unwrap() error { return ErrInvalidInput }

// InputMessage returns the user-facing text of an invalid-input error,
// ignoring any context wrapped around it.
func InputMessage(err error) string {
	var ie *inputError
	if errors.As(err, &ie) {
		return ie.msg
	}
	return ErrInvalidInput.Error()
}
