package main

import (
	"fmt"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/spf13/cobra"
)

func newTriangleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triangle [n]",
		Short: "Build the triangular list [[1], [1 2], ..., [1 .. n]]",
		Long:  `Prints n lists where the k-th list holds 1..k. Without n, prints f(0) through f(9).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
			if len(args) == 1 {
				n, err := intArg(args, 0, "n", 0)
				if err != nil {
					return err
				}
				counts = []int{n}
			}

			for _, n := range counts {
				rows, err := a.solver.Triangular(n)
				if err != nil {
					return err
				}
				if err := a.printer.Print(presentation.Result{
					Exercise: drills.ExerciseTriangle,
					Title:    fmt.Sprintf("f(%d)", n),
					Input:    map[string]any{"n": n},
					Value:    rows,
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}
