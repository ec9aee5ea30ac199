package dto

import (
	"github.com/reglet-dev/locus/internal/domain/entities"
	"github.com/reglet-dev/locus/internal/domain/values"
)

// CircleView is a read-only snapshot of a circle.
type CircleView struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Location values.Location `json:"location" yaml:"location"`
	Min      values.Location `json:"min" yaml:"min"`
	Max      values.Location `json:"max" yaml:"max"`
	Radius   float64         `json:"radius" yaml:"radius"`
}

// NewCircleView snapshots a circle.
func NewCircleView(c *entities.Circle) *CircleView {
	lo, hi := c.BoundingBox()
	return &CircleView{
		ID:       c.ID().String(),
		Name:     c.Name(),
		Radius:   c.Radius(),
		Location: c.DefaultLocation(),
		Min:      lo,
		Max:      hi,
	}
}

// SceneResult is the outcome of checking one scene document.
type SceneResult struct {
	Path    string         `json:"path" yaml:"path"`
	Version string         `json:"version,omitempty" yaml:"version,omitempty"`
	Rule    string         `json:"rule,omitempty" yaml:"rule,omitempty"`
	Bounds  *values.Bounds `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	Circles []CircleView   `json:"circles" yaml:"circles"`
	Errors  []string       `json:"errors,omitempty" yaml:"errors,omitempty"`
	Valid   bool           `json:"valid" yaml:"valid"`
}

// SceneReport aggregates the results of a check run.
type SceneReport struct {
	Scenes  []SceneResult `json:"scenes" yaml:"scenes"`
	Summary ReportSummary `json:"summary" yaml:"summary"`
}

// ReportSummary counts scenes and circles.
type ReportSummary struct {
	TotalScenes   int `json:"total_scenes" yaml:"total_scenes"`
	ValidScenes   int `json:"valid_scenes" yaml:"valid_scenes"`
	InvalidScenes int `json:"invalid_scenes" yaml:"invalid_scenes"`
	TotalCircles  int `json:"total_circles" yaml:"total_circles"`
}

// NewSceneReport builds a report and its summary.
func NewSceneReport(scenes []SceneResult) *SceneReport {
	report := &SceneReport{Scenes: scenes}
	for _, s := range scenes {
		report.Summary.TotalScenes++
		report.Summary.TotalCircles += len(s.Circles)
		if s.Valid {
			report.Summary.ValidScenes++
		} else {
			report.Summary.InvalidScenes++
		}
	}
	return report
}

// Failed returns true if any scene is invalid.
func (r *SceneReport) Failed() bool {
	return r.Summary.InvalidScenes > 0
}
