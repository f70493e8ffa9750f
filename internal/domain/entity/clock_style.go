package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidClockStyle is returned for a non-positive size or an empty colour.
var ErrInvalidClockStyle = errors.New("invalid clock style")

// Default clock style, used for a freshly created settings file.
const (
	DefaultFontSize  = 100
	DefaultFontColor = "#dddddd"
)

// ClockStyle is the font size (px) and colour of the clock text.
type ClockStyle struct {
	Size  int
	Color string
}

// DefaultClockStyle returns the style of a new installation.
func DefaultClockStyle() ClockStyle {
	return ClockStyle{Size: DefaultFontSize, Color: DefaultFontColor}
}

// NewClockStyle builds a validated style. Surrounding whitespace in color is dropped.
func NewClockStyle(size int, color string) (ClockStyle, error) {
	s := ClockStyle{Size: size, Color: strings.TrimSpace(color)}
	if err := s.Validate(); err != nil {
		return ClockStyle{}, err
	}
	return s, nil
}

// Validate checks the size is positive and a colour is given.
func (s ClockStyle) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", ErrInvalidClockStyle, s.Size)
	}
	if strings.TrimSpace(s.Color) == "" {
		return fmt.Errorf("%w: color cannot be empty", ErrInvalidClockStyle)
	}
	return nil
}

func (s ClockStyle) String() string {
	return fmt.Sprintf("%dpx %s", s.Size, s.Color)
}
