package config

import (
	"errors"
	"fmt"
)

// ErrMissingRequired indicates a required variable is absent from the environment.
var ErrMissingRequired = errors.New("missing required configuration")

// MissingRequiredError names the variable that could not be resolved.
type MissingRequiredError struct {
	Key string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf(
		"required environment variable %q is not set; define it in your .env file or export it in your shell",
		e.Key,
	)
}

// Unwrap lets errors.Is match ErrMissingRequired.
func (e *MissingRequiredError) Unwrap() error {
	return ErrMissingRequired
}

// Warning describes a value that could not be coerced and was replaced by its default.
type Warning struct {
	Key     string
	Value   string
	Default int
}

func (w *Warning) String() string {
	return fmt.Sprintf("invalid integer for %s, using default: %d", w.Key, w.Default)
}
