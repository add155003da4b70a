// Package triangle builds triangular list-of-lists structures.
package triangle

import (
	"fmt"
	"iter"
	"math"

	"github.com/aretw0/drills/pkg/domain"
)

// maxPrealloc bounds the outer slice capacity reserved up front.
const maxPrealloc = 1024

// Rows yields n rows where row i (1-indexed) holds 1..i in ascending order.
// Every yielded row is a freshly allocated slice owned by the caller.
// A non-positive n yields nothing.
func Rows(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for size := 1; size <= n; size++ {
			row := make([]int, size)
			for i := range row {
				row[i] = i + 1
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Build returns the triangular structure for n.
//
//	Build(0) -> []
//	Build(1) -> [[1]]
//	Build(3) -> [[1] [1 2] [1 2 3]]
func Build(n int) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count must not be negative, got %d", domain.ErrInvalidArgument, n)
	}
	// n*(n+1)/2 elements must be addressable.
	if n > 0 && n > math.MaxInt/n-1 {
		return nil, fmt.Errorf("%w: count %d is too large", domain.ErrInvalidArgument, n)
	}

	out := make([][]int, 0, min(n, maxPrealloc))
	for row := range Rows(n) {
		out = append(out, row)
	}
	return out, nil
}
