// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/reglet-dev/locus/internal/application/dto"
	apperrors "github.com/reglet-dev/locus/internal/application/errors"
	"github.com/reglet-dev/locus/internal/domain/entities"
	"github.com/reglet-dev/locus/internal/domain/repositories"
	"github.com/reglet-dev/locus/internal/domain/services"
	"github.com/reglet-dev/locus/internal/domain/values"
)

// CircleService orchestrates circle use cases.
// Cells are not safe for concurrent use, so the service serializes every
// access to stored circles.
type CircleService struct {
	repository repositories.CircleRepository
	logger     *slog.Logger
	mu         sync.Mutex
}

// NewCircleService creates a circle service.
func NewCircleService(repository repositories.CircleRepository, logger *slog.Logger) *CircleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CircleService{
		repository: repository,
		logger:     logger,
	}
}

// Create builds a circle, applies the requested location and stores it.
func (s *CircleService) Create(ctx context.Context, req dto.CreateCircleRequest) (*dto.CircleView, error) {
	rule, err := services.BuildLocationRule(req.Rule, req.Bounds)
	if err != nil {
		return nil, apperrors.WrapValidationError("rule", err)
	}

	circle, err := entities.NewCircle(req.Name, req.Radius, entities.WithRule(rule))
	if err != nil {
		return nil, apperrors.WrapValidationError("circle", err)
	}

	if req.Location != nil {
		if err := circle.SetDefaultLocation(*req.Location); err != nil {
			return nil, apperrors.WrapValidationError("location", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.Save(ctx, circle); err != nil {
		return nil, fmt.Errorf("failed to save circle %s: %w", circle.Name(), err)
	}

	s.logger.Debug("circle created",
		"id", circle.ID().String(),
		"name", circle.Name(),
		"location", circle.DefaultLocation().String(),
	)

	return dto.NewCircleView(circle), nil
}

// Get returns a snapshot of the circle with the given ID.
func (s *CircleService) Get(ctx context.Context, id string) (*dto.CircleView, error) {
	cid, err := values.ParseCircleID(id)
	if err != nil {
		return nil, apperrors.WrapValidationError("id", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	circle, err := s.find(ctx, cid)
	if err != nil {
		return nil, err
	}
	return dto.NewCircleView(circle), nil
}

// Move sets a new default location on the circle with the given ID.
// A rejected location leaves the circle unchanged.
func (s *CircleService) Move(ctx context.Context, id string, loc values.Location) (*dto.CircleView, error) {
	cid, err := values.ParseCircleID(id)
	if err != nil {
		return nil, apperrors.WrapValidationError("id", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	circle, err := s.find(ctx, cid)
	if err != nil {
		return nil, err
	}

	previous := circle.DefaultLocation()
	if err := circle.SetDefaultLocation(loc); err != nil {
		return nil, apperrors.WrapValidationError("location", err)
	}

	s.logger.Debug("circle moved",
		"id", id,
		"from", previous.String(),
		"to", loc.String(),
	)

	return dto.NewCircleView(circle), nil
}

// Draw renders the circle with the given ID to w.
func (s *CircleService) Draw(ctx context.Context, id string, w io.Writer) error {
	cid, err := values.ParseCircleID(id)
	if err != nil {
		return apperrors.WrapValidationError("id", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	circle, err := s.find(ctx, cid)
	if err != nil {
		return err
	}
	if err := circle.Draw(w); err != nil {
		return fmt.Errorf("failed to draw circle %s: %w", circle.Name(), err)
	}
	return nil
}

// List returns snapshots of all circles ordered by name.
func (s *CircleService) List(ctx context.Context) ([]dto.CircleView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	circles, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list circles: %w", err)
	}

	views := make([]dto.CircleView, 0, len(circles))
	for _, c := range circles {
		views = append(views, *dto.NewCircleView(c))
	}
	return views, nil
}

func (s *CircleService) find(ctx context.Context, id values.CircleID) (*entities.Circle, error) {
	circle, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("circle", id.String(), err)
		}
		return nil, fmt.Errorf("failed to load circle %s: %w", id, err)
	}
	return circle, nil
}
