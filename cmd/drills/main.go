package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd, a := newRootCmd()
	err := rootCmd.Execute()
	if mErr := a.flushMetrics(rootCmd.ErrOrStderr()); mErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", mErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
