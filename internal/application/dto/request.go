// Package dto contains data transfer objects for the application layer.
package dto

import "github.com/reglet-dev/locus/internal/domain/values"

// CreateCircleRequest asks the circle service to create a circle.
type CreateCircleRequest struct {
	// Location is applied through the cell's setter. Nil keeps the default.
	Location *values.Location

	// Name must be unique within the repository.
	Name string

	// Bounds optionally confines every location to a box.
	Bounds *values.Bounds

	// Rule is an optional expression every location must satisfy.
	Rule string

	Radius float64
}
