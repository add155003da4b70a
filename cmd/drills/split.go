package main

import (
	"fmt"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/config"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/geometry"
	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a polygon in two along a line",
		Long: `Cuts a polygon along the segment given by --line and prints both halves.
The polygon defaults to the built-in seven-point sample; use --polygon to load one from a YAML or JSON file:

  points:
    - {x: 0, y: 0}
    - {x: 10, y: 0}
    - {x: 10, y: 10}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, _ := cmd.Flags().GetFloat64Slice("line")
			if len(line) != 4 {
				return fmt.Errorf("%w: --line needs 4 numbers x1,y1,x2,y2, got %d", domain.ErrInvalidArgument, len(line))
			}
			cut := geometry.Segment{
				A: geometry.Point{X: line[0], Y: line[1]},
				B: geometry.Point{X: line[2], Y: line[3]},
			}

			polygon := geometry.DefaultPolygon()
			if path, _ := cmd.Flags().GetString("polygon"); path != "" {
				loaded, err := config.LoadPolygon(path)
				if err != nil {
					return err
				}
				polygon = loaded
			}

			halves, err := a.solver.SplitPolygon(polygon, cut)
			if err != nil {
				return err
			}
			return a.printer.Print(presentation.Result{
				Exercise: drills.ExerciseSplit,
				Title:    "Polygon halves",
				Input:    map[string]any{"line": line, "vertices": len(polygon)},
				Value:    halves,
			})
		},
	}

	cmd.Flags().Float64Slice("line", []float64{250, 0, 250, 400}, "Cut line as x1,y1,x2,y2")
	cmd.Flags().String("polygon", "", "Path to a polygon file (YAML or JSON)")
	return cmd
}
