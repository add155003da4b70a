package main

import (
	"fmt"
	"strconv"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/aretw0/drills/pkg/domain"
	"github.com/spf13/cobra"
)

func newNoOddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "noodd <value>",
		Short: "Report whether a non-negative integer has no odd digit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: value must be a non-negative integer, got %q", domain.ErrInvalidArgument, args[0])
			}
			return a.printer.Print(presentation.Result{
				Exercise: drills.ExerciseDigits,
				Title:    fmt.Sprintf("%d has no odd digit", v),
				Input:    map[string]any{"value": v},
				Value:    a.solver.HasNoOddDigit(v),
			})
		},
	}
}

func newRepDigitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repdigit [digit]",
		Short: "Compute X + XX + XXX + XXXX for a decimal digit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := intArg(args, 0, "digit", 3)
			if err != nil {
				return err
			}
			sum, err := a.solver.RepDigitSum(x)
			if err != nil {
				return err
			}
			return a.printer.Print(presentation.Result{
				Exercise: drills.ExerciseRepDigit,
				Title:    fmt.Sprintf("%[1]d + %[1]d%[1]d + %[1]d%[1]d%[1]d + %[1]d%[1]d%[1]d%[1]d", x),
				Input:    map[string]any{"digit": x},
				Value:    sum,
			})
		},
	}
}
