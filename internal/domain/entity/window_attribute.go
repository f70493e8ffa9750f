package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAttributeNotPresent is returned when removing an attribute the set does not hold.
var ErrAttributeNotPresent = errors.New("window attribute not present")

// WindowAttribute is a single boolean behaviour of the overlay's native window.
type WindowAttribute uint8

const (
	// AttrFrameless removes the window frame and title bar.
	AttrFrameless WindowAttribute = iota
	// AttrNoTaskbarEntry keeps the overlay out of taskbars and app switchers.
	AttrNoTaskbarEntry
	// AttrStaysOnTop keeps the window above normal windows.
	AttrStaysOnTop
	// AttrTransparentForInput lets pointer events pass through the window.
	AttrTransparentForInput

	attrCount
)

var attributeNames = [attrCount]string{
	AttrFrameless:           "frameless",
	AttrNoTaskbarEntry:      "no-taskbar-entry",
	AttrStaysOnTop:          "stays-on-top",
	AttrTransparentForInput: "transparent-for-input",
}

// String returns the attribute's kebab-case name.
func (a WindowAttribute) String() string {
	if a >= attrCount {
		return fmt.Sprintf("attribute(%d)", uint8(a))
	}
	return attributeNames[a]
}

// BaseAttributes are held by every overlay window from process start.
func BaseAttributes() []WindowAttribute {
	return []WindowAttribute{AttrFrameless, AttrNoTaskbarEntry}
}

// AttributeMask is the bitwise union of a set of window attributes.
// Bit n is set when WindowAttribute(n) is held.
type AttributeMask uint32

// Has reports whether attr is part of the mask.
func (m AttributeMask) Has(attr WindowAttribute) bool {
	return m&attr.bit() != 0
}

func (a WindowAttribute) bit() AttributeMask {
	return AttributeMask(1) << a
}

// WindowAttributeSet is an unordered set of window attributes.
// The zero value is an empty set ready to use.
type WindowAttributeSet struct {
	held AttributeMask
}

// NewWindowAttributeSet returns a set holding attrs.
func NewWindowAttributeSet(attrs ...WindowAttribute) WindowAttributeSet {
	var s WindowAttributeSet
	for _, attr := range attrs {
		s.Add(attr)
	}
	return s
}

// Add inserts attr. Adding a held attribute is a no-op.
func (s *WindowAttributeSet) Add(attr WindowAttribute) {
	s.held |= attr.bit()
}

// Remove deletes attr, failing with ErrAttributeNotPresent when it is not held.
func (s *WindowAttributeSet) Remove(attr WindowAttribute) error {
	if !s.Contains(attr) {
		return fmt.Errorf("remove %s: %w", attr, ErrAttributeNotPresent)
	}
	s.held &^= attr.bit()
	return nil
}

// Contains reports whether attr is held.
func (s WindowAttributeSet) Contains(attr WindowAttribute) bool {
	return s.held.Has(attr)
}

// Toggle adds attr when absent and removes it when present.
func (s *WindowAttributeSet) Toggle(attr WindowAttribute) {
	if s.Contains(attr) {
		// Contains was just checked, Remove cannot fail.
		_ = s.Remove(attr)
		return
	}
	s.Add(attr)
}

// Combined returns the union of all held attributes.
func (s WindowAttributeSet) Combined() AttributeMask {
	return s.held
}

// Attributes lists the held attributes in declaration order.
func (s WindowAttributeSet) Attributes() []WindowAttribute {
	attrs := make([]WindowAttribute, 0, attrCount)
	for a := WindowAttribute(0); a < attrCount; a++ {
		if s.Contains(a) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// String renders the set as "frameless|stays-on-top|...".
func (s WindowAttributeSet) String() string {
	attrs := s.Attributes()
	if len(attrs) == 0 {
		return "none"
	}
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, "|")
}
