package domain

import "errors"

// ErrInvalidArgument is returned when an input is outside the domain of an exercise
// (e.g. a non-positive divisor or a negative count).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNoSplit is returned when a cut line does not divide a polygon into two halves.
var ErrNoSplit = errors.New("line does not split polygon")
