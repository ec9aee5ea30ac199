// Package ports defines interfaces the application layer depends on.
package ports

import (
	"io"

	"github.com/reglet-dev/locus/internal/application/dto"
	"github.com/reglet-dev/locus/internal/infrastructure/config"
)

// SceneLoader loads a scene document from a path.
type SceneLoader interface {
	LoadScene(path string) (*config.Scene, error)
}

// OutputFormatter formats scene reports.
type OutputFormatter interface {
	Format(report *dto.SceneReport) error
}

// FormatterOptions tunes formatter output.
type FormatterOptions struct {
	Indent bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
