package config

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/locus/internal/domain/values"
)

// Scene is a document declaring a set of circles.
type Scene struct {
	Version string         `yaml:"version" json:"version"`
	Rule    string         `yaml:"rule,omitempty" json:"rule,omitempty"`
	Bounds  *values.Bounds `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Circles []CircleSpec   `yaml:"circles" json:"circles"`
}

// CircleSpec declares one circle in a scene.
type CircleSpec struct {
	// Location is optional; when omitted the circle keeps its default.
	Location *values.Location `yaml:"location,omitempty" json:"location,omitempty"`
	Name     string           `yaml:"name" json:"name"`
	Radius   float64          `yaml:"radius" json:"radius"`
}

// SceneValidationError lists every problem found in a scene.
type SceneValidationError struct {
	Causes   []error // Domain errors behind some of the problems
	Problems []string
}

func (e *SceneValidationError) Error() string {
	return fmt.Sprintf("scene validation failed:\n  - %s", strings.Join(e.Problems, "\n  - "))
}

func (e *SceneValidationError) Unwrap() []error {
	return e.Causes
}

// Add records a problem about subject caused by err.
func (e *SceneValidationError) Add(subject string, err error) {
	e.Problems = append(e.Problems, fmt.Sprintf("%s: %v", subject, err))
	e.Causes = append(e.Causes, err)
}
