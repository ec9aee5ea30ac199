package values

import "fmt"

// Bounds is an inclusive box given by its lower-left and upper-right corners.
type Bounds struct {
	Min Location `json:"min" yaml:"min"`
	Max Location `json:"max" yaml:"max"`
}

// NewBounds creates Bounds from corner coordinates.
func NewBounds(minX, minY, maxX, maxY float64) Bounds {
	return Bounds{Min: NewLocation(minX, minY), Max: NewLocation(maxX, maxY)}
}

// Contains reports whether loc lies inside the box, edges included.
func (b Bounds) Contains(loc Location) bool {
	return loc.X >= b.Min.X && loc.X <= b.Max.X && loc.Y >= b.Min.Y && loc.Y <= b.Max.Y
}

// String returns the "(x, y)..(x, y)" representation
func (b Bounds) String() string {
	return fmt.Sprintf("%s..%s", b.Min, b.Max)
}
