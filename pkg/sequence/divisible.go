package sequence

import (
	"fmt"
	"iter"

	"github.com/aretw0/drills/pkg/domain"
)

// Start is the first value produced by Divisible.
// It is fixed and does not depend on the divisor.
const Start = 3

// Divisible returns the values Start, Start+divisor, Start+2*divisor, ...
// that do not exceed ceiling. A ceiling below Start yields an empty sequence.
func Divisible(ceiling, divisor int) (iter.Seq[int], error) {
	if divisor <= 0 {
		return nil, fmt.Errorf("%w: divisor must be positive, got %d", domain.ErrInvalidArgument, divisor)
	}

	return func(yield func(int) bool) {
		for v := Start; v <= ceiling; v += divisor {
			if !yield(v) {
				return
			}
			// Stop before v += divisor wraps around.
			if v > ceiling-divisor {
				return
			}
		}
	}, nil
}
