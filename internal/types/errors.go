package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every InputError via errors.Is
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a missing or malformed required argument
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is makes errors.Is(err, ErrInvalidInput) true for any InputError
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// RequireText returns an InputError when value is empty or whitespace only.
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &InputError{Field: field, Message: "must not be empty"}
	}
	return nil
}
