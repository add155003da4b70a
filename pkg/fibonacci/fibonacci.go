// Package fibonacci works with the even-valued terms of the Fibonacci
// sequence 1, 1, 2, 3, 5, 8, ...
//
// Every third term is even (odd + odd = even), so the even terms satisfy
//
//	f(n+3) = 3*f(n) + 2*f(n-1)
//
// and can be produced without visiting the odd ones. Values grow past 64 bits
// quickly, hence math/big.
package fibonacci

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/aretw0/drills/pkg/domain"
)

// Even yields the even Fibonacci terms 2, 8, 34, 144, ... without bound.
// Each yielded value is a new *big.Int owned by the caller.
func Even() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		prev := big.NewInt(1) // f(n-1)
		cur := big.NewInt(2)  // f(n), even
		next := new(big.Int)
		tmp := new(big.Int)

		for {
			if !yield(new(big.Int).Set(cur)) {
				return
			}

			// f(n+3) = 3*f(n) + 2*f(n-1)
			next.Mul(cur, big.NewInt(3))
			next.Add(next, tmp.Lsh(prev, 1))

			// f(n+2) = 2*f(n) + f(n-1)
			prev.Add(tmp.Lsh(cur, 1), prev)
			cur.Set(next)
		}
	}
}

// SumEven returns the sum of the first count even Fibonacci terms.
func SumEven(count int) (*big.Int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative, got %d", domain.ErrInvalidArgument, count)
	}

	sum := new(big.Int)
	if count == 0 {
		return sum, nil
	}

	seen := 0
	for v := range Even() {
		sum.Add(sum, v)
		seen++
		if seen == count {
			break
		}
	}
	return sum, nil
}
