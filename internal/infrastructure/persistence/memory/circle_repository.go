// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/reglet-dev/locus/internal/domain/entities"
	"github.com/reglet-dev/locus/internal/domain/repositories"
	"github.com/reglet-dev/locus/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.CircleRepository = (*CircleRepository)(nil)

// CircleRepository is an in-memory implementation of CircleRepository.
// Useful for testing and ephemeral storage.
type CircleRepository struct {
	circles map[uuid.UUID]*entities.Circle
	mu      sync.RWMutex
}

// NewCircleRepository creates a new in-memory repository.
func NewCircleRepository() *CircleRepository {
	return &CircleRepository{
		circles: make(map[uuid.UUID]*entities.Circle),
	}
}

// Save persists a circle.
// In memory, we store the pointer. Callers hand ownership to the repository.
func (r *CircleRepository) Save(_ context.Context, circle *entities.Circle) error {
	if circle == nil {
		return fmt.Errorf("cannot save nil circle")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.circles {
		if existing.Name() == circle.Name() && id != circle.ID().UUID() {
			return fmt.Errorf("circle name %q already in use", circle.Name())
		}
	}

	r.circles[circle.ID().UUID()] = circle
	return nil
}

// FindByID retrieves a circle by its unique ID.
func (r *CircleRepository) FindByID(_ context.Context, id values.CircleID) (*entities.Circle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	circle, ok := r.circles[id.UUID()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
	}
	return circle, nil
}

// FindByName retrieves a circle by name.
func (r *CircleRepository) FindByName(_ context.Context, name string) (*entities.Circle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, circle := range r.circles {
		if circle.Name() == name {
			return circle, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", repositories.ErrNotFound, name)
}

// List returns all circles sorted by name.
func (r *CircleRepository) List(_ context.Context) ([]*entities.Circle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	circles := make([]*entities.Circle, 0, len(r.circles))
	for _, circle := range r.circles {
		circles = append(circles, circle)
	}

	sort.Slice(circles, func(i, j int) bool {
		return circles[i].Name() < circles[j].Name()
	})

	return circles, nil
}
