package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue indicates a setting outside its accepted range.
	ErrInvalidValue = errors.New("config: invalid value")

	// ErrUnknownPreset indicates a preset name with no entry in Presets.
	ErrUnknownPreset = errors.New("config: unknown preset")

	ErrUnknownTheme = errors.New("config: unknown theme")
)

// FieldError wraps a validation error with the offending field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s=%v", e.Err.Error(), e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
