package main

import (
	"fmt"
	"slices"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/spf13/cobra"
)

func newDivisibleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divisible [ceiling] [divisor]",
		Short: "Sum the sequence 3, 3+d, 3+2d, ... up to an inclusive ceiling",
		Long: `Generates 3, 3+divisor, 3+2*divisor, ... while the value does not exceed the ceiling, and prints the sum.
Defaults to ceiling 102029 and divisor 3 (every multiple of 3 below 102030).`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ceiling, err := intArg(args, 0, "ceiling", 102029)
			if err != nil {
				return err
			}
			divisor, err := intArg(args, 1, "divisor", 3)
			if err != nil {
				return err
			}
			list, _ := cmd.Flags().GetBool("list")
			input := map[string]any{"ceiling": ceiling, "divisor": divisor}

			if list {
				seq, err := a.solver.Divisible(ceiling, divisor)
				if err != nil {
					return err
				}
				values := slices.Collect(seq)
				if values == nil {
					values = []int{}
				}
				return a.printer.Print(presentation.Result{
					Exercise: drills.ExerciseDivisible,
					Title:    fmt.Sprintf("Sequence from 3 by %d up to %d", divisor, ceiling),
					Input:    input,
					Value:    values,
				})
			}

			total, err := a.solver.SumDivisible(ceiling, divisor)
			if err != nil {
				return err
			}
			return a.printer.Print(presentation.Result{
				Exercise: drills.ExerciseDivisible,
				Title:    fmt.Sprintf("Sum of 3, 3+%d, ... <= %d", divisor, ceiling),
				Input:    input,
				Value:    total,
			})
		},
	}

	cmd.Flags().Bool("list", false, "Print the elements instead of their sum")
	return cmd
}
