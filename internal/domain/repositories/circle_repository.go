// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"
	"errors"

	"github.com/reglet-dev/locus/internal/domain/entities"
	"github.com/reglet-dev/locus/internal/domain/values"
)

// ErrNotFound is returned when no circle matches a lookup.
var ErrNotFound = errors.New("circle not found")

// CircleRepository defines the interface for storing circles.
type CircleRepository interface {
	// Save persists a circle, replacing any circle with the same ID.
	Save(ctx context.Context, circle *entities.Circle) error

	// FindByID retrieves a circle by its unique ID.
	FindByID(ctx context.Context, id values.CircleID) (*entities.Circle, error)

	// FindByName retrieves a circle by name.
	FindByName(ctx context.Context, name string) (*entities.Circle, error)

	// List returns all circles ordered by name.
	List(ctx context.Context) ([]*entities.Circle, error)
}
