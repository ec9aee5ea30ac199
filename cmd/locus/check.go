package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	apperrors "github.com/reglet-dev/locus/internal/application/errors"
	"github.com/reglet-dev/locus/internal/application/ports"
	"github.com/reglet-dev/locus/internal/application/services"
	"github.com/reglet-dev/locus/internal/infrastructure/config"
	"github.com/reglet-dev/locus/internal/infrastructure/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// checkOptions holds the resolved settings for a check run.
type checkOptions struct {
	format      string
	outFile     string
	concurrency int
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <scene.yaml>...",
	Short: "Validate one or more scene documents",
	Long: `Load scene documents and build every circle they declare. Each
declared location is applied through the circle's location cell, so a
location with a zero coordinate, or one rejected by the scene rule, makes
the scene invalid.

A scene may also declare bounds (min and max corners); every location
must then lie inside that box as well as satisfy the rule.

Numbers in exponent form need a decimal point in the mantissa: write
1.0e+3, not 1e3, which YAML reads as a string.

Scenes are checked concurrently. The command exits non-zero when any scene
is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := checkOptions{
			format:      viper.GetString("format"),
			outFile:     viper.GetString("output"),
			concurrency: viper.GetInt("concurrency"),
		}
		return runCheckAction(cmd.Context(), cmd.OutOrStdout(), args, opts)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("format", "table", "Output format: table, json, yaml")
	checkCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	checkCmd.Flags().Int("concurrency", 4, "Maximum scenes checked at once (0 = unlimited)")

	for _, name := range []string{"format", "output", "concurrency"} {
		_ = viper.BindPFlag(name, checkCmd.Flags().Lookup(name))
	}
}

// runCheckAction implements the core logic for the check command
func runCheckAction(ctx context.Context, stdout io.Writer, paths []string, opts checkOptions) error {
	factory := output.NewFormatterFactory()

	w := stdout
	if opts.outFile != "" {
		f, err := os.Create(opts.outFile)
		if err != nil {
			return apperrors.NewConfigurationError("output", "failed to create output file", err)
		}
		defer func() {
			_ = f.Close() // Best-effort cleanup
		}()
		w = f
	}

	formatter, err := factory.Create(opts.format, w, ports.FormatterOptions{Indent: true})
	if err != nil {
		return err
	}

	checker := services.NewSceneChecker(config.NewSceneLoader(), opts.concurrency, slog.Default())

	slog.Info("checking scenes", "count", len(paths))
	report, err := checker.Check(ctx, paths)
	if err != nil {
		return fmt.Errorf("check aborted: %w", err)
	}

	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if report.Failed() {
		return fmt.Errorf("%d of %d scenes invalid", report.Summary.InvalidScenes, report.Summary.TotalScenes)
	}

	slog.Info("all scenes valid", "scenes", report.Summary.TotalScenes, "circles", report.Summary.TotalCircles)
	return nil
}
