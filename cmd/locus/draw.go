package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reglet-dev/locus/internal/application/services"
	"github.com/reglet-dev/locus/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// drawCmd renders every circle of a scene.
var drawCmd = &cobra.Command{
	Use:   "draw <scene.yaml>",
	Short: "Draw the circles of a scene",
	Long: `Draw every circle of a valid scene, one line per circle, in the order
the scene declares them. Nothing is drawn when any circle is rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrawAction(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)
}

func runDrawAction(ctx context.Context, w io.Writer, path string) error {
	checker := services.NewSceneChecker(config.NewSceneLoader(), 1, slog.Default())

	if err := checker.Draw(ctx, path, w); err != nil {
		return fmt.Errorf("failed to draw scene %s: %w", path, err)
	}
	return nil
}
