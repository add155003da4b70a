package sequence_test

import (
	"math"
	"slices"
	"testing"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisible(t *testing.T) {
	tests := []struct {
		name     string
		ceiling  int
		divisor  int
		expected []int
	}{
		{name: "Multiples Of Three", ceiling: 15, divisor: 3, expected: []int{3, 6, 9, 12, 15}},
		{name: "Ceiling Is Inclusive", ceiling: 9, divisor: 3, expected: []int{3, 6, 9}},
		{name: "Ceiling Below Start", ceiling: 2, divisor: 3, expected: nil},
		{name: "Negative Ceiling", ceiling: -10, divisor: 1, expected: nil},
		{name: "Ceiling Equals Start", ceiling: 3, divisor: 7, expected: []int{3}},
		{name: "Start Ignores Divisor", ceiling: 20, divisor: 5, expected: []int{3, 8, 13, 18}},
		{name: "Divisor One", ceiling: 6, divisor: 1, expected: []int{3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := sequence.Divisible(tt.ceiling, tt.divisor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, slices.Collect(seq))
		})
	}
}

func TestDivisible_InvalidDivisor(t *testing.T) {
	for _, divisor := range []int{0, -1, -3} {
		seq, err := sequence.Divisible(100, divisor)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Nil(t, seq)
	}
}

func TestDivisible_Properties(t *testing.T) {
	for ceiling := -2; ceiling <= 60; ceiling++ {
		for divisor := 1; divisor <= 9; divisor++ {
			seq, err := sequence.Divisible(ceiling, divisor)
			require.NoError(t, err)
			for v := range seq {
				assert.GreaterOrEqual(t, v, sequence.Start)
				assert.LessOrEqual(t, v, ceiling)
				assert.Zero(t, (v-sequence.Start)%divisor, "ceiling=%d divisor=%d value=%d", ceiling, divisor, v)
			}
		}
	}
}

func TestDivisible_Restartable(t *testing.T) {
	seq, err := sequence.Divisible(30, 4)
	require.NoError(t, err)

	// Partially consume first.
	for v := range seq {
		if v > 10 {
			break
		}
	}

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	again, err := sequence.Divisible(30, 4)
	require.NoError(t, err)
	assert.Equal(t, first, slices.Collect(again))
}

func TestDivisible_NoOverflowNearMaxInt(t *testing.T) {
	seq, err := sequence.Divisible(math.MaxInt, math.MaxInt/2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3 + math.MaxInt/2}, slices.Collect(seq))
}

func TestSum_ClosedForm(t *testing.T) {
	seq, err := sequence.Divisible(102029, 3)
	require.NoError(t, err)
	assert.Equal(t, 34009*34010/2*3, sequence.Sum(seq))
	assert.Equal(t, 1735144485, sequence.Sum(seq))
	assert.Equal(t, 34009, sequence.Count(seq))
}

func TestSum_Empty(t *testing.T) {
	seq, err := sequence.Divisible(1, 3)
	require.NoError(t, err)
	assert.Zero(t, sequence.Sum(seq))
	assert.Zero(t, sequence.Count(seq))
}
