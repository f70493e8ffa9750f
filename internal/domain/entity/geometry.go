// Package entity defines domain entities for the clock overlay.
package entity

import "fmt"

// Point is a saved top-left window position in screen coordinates.
// A nil component means no position was saved and the host places the window.
type Point struct {
	X *int
	Y *int
}

// NewPoint returns a point with both components set.
func NewPoint(x, y int) Point {
	return Point{X: &x, Y: &y}
}

// UnsetPoint returns the point meaning "let the host decide".
func UnsetPoint() Point {
	return Point{}
}

// IsSet reports whether both components are present.
func (p Point) IsSet() bool {
	return p.X != nil && p.Y != nil
}

// Coords returns the components, ok is false unless both are set.
func (p Point) Coords() (x, y int, ok bool) {
	if !p.IsSet() {
		return 0, 0, false
	}
	return *p.X, *p.Y, true
}

// Equal compares components by value.
func (p Point) Equal(other Point) bool {
	return intPtrEqual(p.X, other.X) && intPtrEqual(p.Y, other.Y)
}

// clone detaches the point from the caller's integers.
func (p Point) clone() Point {
	return Point{X: copyInt(p.X), Y: copyInt(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", formatIntPtr(p.X), formatIntPtr(p.Y))
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func formatIntPtr(v *int) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *v)
}
