// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"math"
	"strconv"
)

// Location is a two-dimensional coordinate pair.
// It is a plain value: copies never share state.
type Location struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewLocation creates a Location from its coordinates.
func NewLocation(x, y float64) Location {
	return Location{X: x, Y: y}
}

// IsZeroEquivalent reports whether a coordinate counts as absent.
// Zero (including negative zero) and NaN are zero-equivalent.
func IsZeroEquivalent(f float64) bool {
	return f == 0 || math.IsNaN(f)
}

// IsZeroEquivalent returns true if either coordinate is zero-equivalent.
func (l Location) IsZeroEquivalent() bool {
	return IsZeroEquivalent(l.X) || IsZeroEquivalent(l.Y)
}

// IsFinite returns true if neither coordinate is NaN or infinite.
func (l Location) IsFinite() bool {
	return !math.IsNaN(l.X) && !math.IsInf(l.X, 0) && !math.IsNaN(l.Y) && !math.IsInf(l.Y, 0)
}

// Equals checks if two Locations have the same coordinates.
func (l Location) Equals(other Location) bool {
	return l.X == other.X && l.Y == other.Y
}

// Offset returns a new Location moved by dx and dy.
func (l Location) Offset(dx, dy float64) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// String returns the "(x, y)" representation
func (l Location) String() string {
	return "(" + formatCoord(l.X) + ", " + formatCoord(l.Y) + ")"
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
