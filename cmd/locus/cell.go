package main

import (
	"fmt"
	"io"

	"github.com/reglet-dev/locus/internal/domain/entities"
	"github.com/reglet-dev/locus/internal/domain/services"
	"github.com/reglet-dev/locus/internal/domain/values"
	"github.com/spf13/cobra"
)

var (
	cellX      float64
	cellY      float64
	cellRule   string
	cellBounds []float64
)

// cellCmd runs a single location cell through construct, get and set.
var cellCmd = &cobra.Command{
	Use:   "cell --x <n> --y <n>",
	Short: "Try a location against a fresh cell",
	Long: `Create a location cell, print its default value, attempt to set the
given coordinates and print the value afterwards. A rejected location is
reported and the default is kept.

--bounds takes four numbers, min-x,min-y,max-x,max-y. The box is checked
before --rule and both must accept the location.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bounds, err := parseBounds(cellBounds)
		if err != nil {
			return err
		}
		return runCellAction(cmd.OutOrStdout(), values.NewLocation(cellX, cellY), cellRule, bounds)
	},
}

func init() {
	rootCmd.AddCommand(cellCmd)

	cellCmd.Flags().Float64Var(&cellX, "x", 0, "x coordinate")
	cellCmd.Flags().Float64Var(&cellY, "y", 0, "y coordinate")
	cellCmd.Flags().StringVar(&cellRule, "rule", "", "Extra rule expression over x and y (e.g. \"x > 0 && y < 100\")")
	cellCmd.Flags().Float64SliceVar(&cellBounds, "bounds", nil, "Inclusive box min-x,min-y,max-x,max-y")
}

func parseBounds(raw []float64) (*values.Bounds, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) != 4 {
		return nil, fmt.Errorf("--bounds needs 4 numbers, got %d", len(raw))
	}
	b := values.NewBounds(raw[0], raw[1], raw[2], raw[3])
	return &b, nil
}

func runCellAction(w io.Writer, candidate values.Location, rule string, bounds *values.Bounds) error {
	spec, err := services.BuildLocationRule(rule, bounds)
	if err != nil {
		return err
	}

	cell := entities.NewLocationCell(entities.WithRule(spec))
	fmt.Fprintf(w, "before: %s\n", cell.Get())

	setErr := cell.Set(candidate)
	if setErr != nil {
		fmt.Fprintf(w, "rejected: %v\n", setErr)
	}
	fmt.Fprintf(w, "after: %s\n", cell.Get())

	return setErr
}
