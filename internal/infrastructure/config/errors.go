package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfigMissingField is matched by every MissingFieldError.
	ErrConfigMissingField = errors.New("settings document is missing a required field")

	// ErrInvalidDocument is returned for unparsable documents, mistyped values
	// and unknown keys.
	ErrInvalidDocument = errors.New("invalid settings document")
)

// MissingFieldError lists the required keys absent from a settings document.
type MissingFieldError struct {
	Path   string
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("settings file %s is missing required field(s): %s",
		e.Path, strings.Join(e.Fields, ", "))
}

// Is reports whether target is ErrConfigMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrConfigMissingField
}
