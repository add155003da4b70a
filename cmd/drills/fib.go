package main

import (
	"fmt"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/spf13/cobra"
)

func newFibCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fib [count]",
		Short: "Sum the first count even-valued Fibonacci numbers",
		Long:  `Sums the first count even terms of 1, 1, 2, 3, 5, 8, ... with arbitrary precision (default 100).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := intArg(args, 0, "count", 100)
			if err != nil {
				return err
			}
			sum, err := a.solver.SumEvenFibonacci(count)
			if err != nil {
				return err
			}
			return a.printer.Print(presentation.Result{
				Exercise: drills.ExerciseFibonacci,
				Title:    fmt.Sprintf("Sum of the first %d even Fibonacci numbers", count),
				Input:    map[string]any{"count": count},
				Value:    sum,
			})
		},
	}
}
