package main

import (
	"fmt"
	"slices"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/aretw0/drills/pkg/domain"
	"github.com/spf13/cobra"
)

func newIntersectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "intersect",
		Short:   "Intersect two sorted integer arrays",
		Long:    `Prints the unique values present in both --a and --b. Both lists must be sorted in ascending order.`,
		Example: `  drills intersect --a 1,1,2,3,4 --b 2,2,4,6`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, _ := cmd.Flags().GetIntSlice("a")
			right, _ := cmd.Flags().GetIntSlice("b")
			if !slices.IsSorted(left) || !slices.IsSorted(right) {
				return fmt.Errorf("%w: --a and --b must be sorted in ascending order", domain.ErrInvalidArgument)
			}

			return a.printer.Print(presentation.Result{
				Exercise: drills.ExerciseIntersect,
				Title:    "Intersection",
				Input:    map[string]any{"a": left, "b": right},
				Value:    a.solver.Intersect(left, right),
			})
		},
	}

	cmd.Flags().IntSlice("a", nil, "First sorted array (comma separated)")
	cmd.Flags().IntSlice("b", nil, "Second sorted array (comma separated)")
	return cmd
}
