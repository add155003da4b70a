package presentation

import (
	"iter"
	"maps"
	"slices"
)

func sortedInput(in map[string]any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range slices.Sorted(maps.Keys(in)) {
			if !yield(k, in[k]) {
				return
			}
		}
	}
}
