package main

import (
	"fmt"
	"strconv"

	"github.com/aretw0/drills/pkg/domain"
)

// intArg parses args[i] as an int, falling back to def when the argument is absent.
func intArg(args []string, i int, name string, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidArgument, name, args[i])
	}
	return v, nil
}
