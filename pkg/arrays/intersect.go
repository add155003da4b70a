// Package arrays contains helpers over sorted slices.
package arrays

import "cmp"

// Intersect returns the values present in both a and b.
// Both inputs must be sorted in ascending order; the result is ascending and
// holds each value once. It never returns nil.
func Intersect[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0)
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch cmp.Compare(a[i], b[j]) {
		case -1:
			i++
		case 1:
			j++
		default:
			if len(out) == 0 || out[len(out)-1] != a[i] {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}

	return out
}
