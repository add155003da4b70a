// Package digits holds small decimal-digit puzzles.
package digits

import (
	"fmt"

	"github.com/aretw0/drills/pkg/domain"
)

// HasNoOddDigit reports whether every decimal digit of v is even.
// Zero has a single even digit and reports true.
func HasNoOddDigit(v uint64) bool {
	for {
		if (v%10)%2 != 0 {
			return false
		}
		v /= 10
		if v == 0 {
			return true
		}
	}
}

// RepDigitSum returns X + XX + XXX + XXXX for the decimal digit x.
//
//	x + xx + xxx + xxxx = (1000 + 200 + 30 + 4) * x = 1234 * x
func RepDigitSum(x int) (int, error) {
	if x < 0 || x > 9 {
		return 0, fmt.Errorf("%w: expected a single decimal digit, got %d", domain.ErrInvalidArgument, x)
	}
	return 1234 * x, nil
}
