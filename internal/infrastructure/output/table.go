package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/locus/internal/application/dto"
)

// TableFormatter formats scene reports as a human-readable table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes the report as a table.
func (f *TableFormatter) Format(report *dto.SceneReport) error {
	if len(report.Scenes) == 0 {
		_, err := fmt.Fprintln(f.writer, "No scenes checked.")
		return err
	}

	var b strings.Builder
	for _, scene := range report.Scenes {
		f.formatScene(&b, scene)
	}

	fmt.Fprintln(&b, strings.Repeat("─", 60))
	s := report.Summary
	fmt.Fprintf(&b, "Scenes: %d total, %d valid, %d invalid\n", s.TotalScenes, s.ValidScenes, s.InvalidScenes)
	fmt.Fprintf(&b, "Circles: %d\n", s.TotalCircles)

	_, err := io.WriteString(f.writer, b.String())
	return err
}

func (f *TableFormatter) formatScene(b *strings.Builder, scene dto.SceneResult) {
	symbol := "✓"
	if !scene.Valid {
		symbol = "✗"
	}

	fmt.Fprintf(b, "%s %s", symbol, scene.Path)
	if scene.Version != "" {
		fmt.Fprintf(b, " (v%s)", scene.Version)
	}
	fmt.Fprintln(b)

	if scene.Rule != "" {
		fmt.Fprintf(b, "  Rule: %s\n", scene.Rule)
	}
	if scene.Bounds != nil {
		fmt.Fprintf(b, "  Bounds: %s\n", scene.Bounds)
	}

	for _, c := range scene.Circles {
		fmt.Fprintf(b, "  %-16s r=%-8g at %s\n", c.Name, c.Radius, c.Location.String())
	}

	for _, problem := range scene.Errors {
		fmt.Fprintf(b, "  ! %s\n", problem)
	}
}
