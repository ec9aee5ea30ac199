package entities

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/reglet-dev/locus/internal/domain/values"
)

// optimumFactor scales the radius when Draw picks where to place a circle.
const optimumFactor = 0.1

// Circle is a named circle whose default location is held in a LocationCell.
// The location can only be read and written through the circle's accessors.
type Circle struct {
	location *LocationCell
	name     string
	id       values.CircleID
	radius   float64
}

// NewCircle creates a circle at the default location {0, 0}.
// Options configure the underlying location cell. Besides those rules the
// cell rejects any location whose bounding box would not be finite.
func NewCircle(name string, radius float64, opts ...CellOption) (*Circle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &InvalidCircleError{Field: "name", Reason: "cannot be empty"}
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, &InvalidCircleError{
			Field:  "radius",
			Reason: fmt.Sprintf("must be a positive number, got %v", radius),
		}
	}

	return &Circle{
		id:       values.NewCircleID(),
		name:     name,
		radius:   radius,
		location: NewLocationCell(append([]CellOption{WithRule(extentRule{radius: radius})}, opts...)...),
	}, nil
}

// ID returns the circle's unique identifier
func (c *Circle) ID() values.CircleID {
	return c.id
}

// Name returns the circle name
func (c *Circle) Name() string {
	return c.name
}

// Radius returns the circle radius
func (c *Circle) Radius() float64 {
	return c.radius
}

// DefaultLocation returns a copy of the circle's default location.
func (c *Circle) DefaultLocation() values.Location {
	return c.location.Get()
}

// SetDefaultLocation moves the circle. See LocationCell.Set.
func (c *Circle) SetDefaultLocation(loc values.Location) error {
	return c.location.Set(loc)
}

// BoundingBox returns the lower-left and upper-right corners of the circle
// around its default location.
func (c *Circle) BoundingBox() (values.Location, values.Location) {
	center := c.location.Get()
	return center.Offset(-c.radius, -c.radius), center.Offset(c.radius, c.radius)
}

// Draw writes a one-line rendering of the circle to w.
func (c *Circle) Draw(w io.Writer) error {
	at := c.computeOptimumLocation(optimumFactor)
	_, err := fmt.Fprintf(w, "circle %s r=%s at %s\n", c.name, formatRadius(c.radius), at.String())
	return err
}

// computeOptimumLocation nudges the default location by radius*factor.
func (c *Circle) computeOptimumLocation(factor float64) values.Location {
	d := c.radius * factor
	return c.location.Get().Offset(d, d)
}

// extentRule rejects centers whose bounding box leaves the float64 range.
type extentRule struct {
	radius float64
}

func (r extentRule) IsSatisfiedBy(loc values.Location) (bool, string) {
	if !loc.Offset(-r.radius, -r.radius).IsFinite() || !loc.Offset(r.radius, r.radius).IsFinite() {
		return false, fmt.Sprintf("bounding box for radius %s is not finite", formatRadius(r.radius))
	}
	return true, ""
}

func formatRadius(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}
