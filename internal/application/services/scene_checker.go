package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/reglet-dev/locus/internal/application/dto"
	"github.com/reglet-dev/locus/internal/application/ports"
	"github.com/reglet-dev/locus/internal/infrastructure/config"
	"github.com/reglet-dev/locus/internal/infrastructure/persistence/memory"
)

// SceneChecker validates scene documents and snapshots their circles.
// Each scene is built into its own CircleService and repository, so circles
// are never shared between goroutines.
type SceneChecker struct {
	loader      ports.SceneLoader
	logger      *slog.Logger
	concurrency int
}

// NewSceneChecker creates a scene checker. A concurrency of zero or less
// means no limit.
func NewSceneChecker(loader ports.SceneLoader, concurrency int, logger *slog.Logger) *SceneChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &SceneChecker{
		loader:      loader,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Check validates every scene and returns a report in input order.
// An invalid scene is recorded in the report, not returned as an error.
func (c *SceneChecker) Check(ctx context.Context, paths []string) (*dto.SceneReport, error) {
	g, ctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		g.SetLimit(c.concurrency)
	}

	results := make([]dto.SceneResult, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.checkScene(ctx, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dto.NewSceneReport(results), nil
}

// BuildScene creates every circle of the scene through a fresh CircleService.
// Views come back in declaration order. Circles whose input is rejected are
// left out and reported in the returned *config.SceneValidationError.
func (c *SceneChecker) BuildScene(ctx context.Context, scene *config.Scene) (*CircleService, []dto.CircleView, error) {
	svc := NewCircleService(memory.NewCircleRepository(), c.logger)
	views := make([]dto.CircleView, 0, len(scene.Circles))
	verr := &config.SceneValidationError{}

	for _, spec := range scene.Circles {
		view, err := svc.Create(ctx, dto.CreateCircleRequest{
			Name:     spec.Name,
			Radius:   spec.Radius,
			Location: spec.Location,
			Rule:     scene.Rule,
			Bounds:   scene.Bounds,
		})
		if err != nil {
			verr.Add(fmt.Sprintf("circle %s", spec.Name), err)
			continue
		}
		views = append(views, *view)
	}

	if len(verr.Problems) > 0 {
		return svc, views, verr
	}
	return svc, views, nil
}

// Draw loads a scene and draws its circles to w in declaration order.
// Nothing is drawn unless every circle is valid.
func (c *SceneChecker) Draw(ctx context.Context, path string, w io.Writer) error {
	scene, err := c.loader.LoadScene(path)
	if err != nil {
		return err
	}

	svc, views, err := c.BuildScene(ctx, scene)
	if err != nil {
		return err
	}

	for _, view := range views {
		if err := svc.Draw(ctx, view.ID, w); err != nil {
			return err
		}
	}
	return nil
}

func (c *SceneChecker) checkScene(ctx context.Context, path string) dto.SceneResult {
	result := dto.SceneResult{Path: path, Circles: []dto.CircleView{}}

	scene, err := c.loader.LoadScene(path)
	if err != nil {
		result.Errors = problemsOf(err)
		c.logger.Debug("scene rejected", "path", path, "error", err)
		return result
	}
	result.Version = scene.Version
	result.Rule = scene.Rule
	result.Bounds = scene.Bounds

	_, views, err := c.BuildScene(ctx, scene)
	result.Circles = append(result.Circles, views...)
	if err != nil {
		result.Errors = problemsOf(err)
		c.logger.Debug("scene has invalid circles", "path", path, "error", err)
		return result
	}

	result.Valid = true
	c.logger.Debug("scene valid", "path", path, "circles", len(views))
	return result
}

func problemsOf(err error) []string {
	var verr *config.SceneValidationError
	if errors.As(err, &verr) {
		return verr.Problems
	}
	return []string{err.Error()}
}
