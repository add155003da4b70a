package main

import (
	"strings"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/presentation"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of drills",
		// Skip config loading so a broken config never hides the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			presentation.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(drills.Version))
		},
	}
}
