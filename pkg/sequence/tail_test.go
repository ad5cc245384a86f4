package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/TraverseKit/pkg/sequence"
)

func TestSkipLast(t *testing.T) {
	for name, tc := range map[string]struct {
		input []int
		n     int
		want  []int
	}{
		"drop final two":  {[]int{1, 2, 3, 4, 5}, 2, []int{1, 2, 3}},
		"drop nothing":    {[]int{1, 2, 3}, 0, []int{1, 2, 3}},
		"drop everything": {[]int{1, 2, 3}, 3, []int{}},
		"drop past end":   {[]int{1, 2, 3}, 10, []int{}},
		"empty source":    {[]int{}, 2, []int{}},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := sequence.SkipLast(sequence.FromSlice(tc.input), tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTakeLast(t *testing.T) {
	for name, tc := range map[string]struct {
		input []int
		n     int
		want  []int
	}{
		"final two":     {[]int{1, 2, 3, 4, 5}, 2, []int{4, 5}},
		"take nothing":  {[]int{1, 2, 3}, 0, []int{}},
		"take all":      {[]int{1, 2, 3}, 3, []int{1, 2, 3}},
		"take past end": {[]int{1, 2, 3}, 10, []int{1, 2, 3}},
		"empty source":  {[]int{}, 2, []int{}},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := sequence.TakeLast(sequence.FromSlice(tc.input), tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTailNegative(t *testing.T) {
	_, err := sequence.SkipLast(sequence.FromSlice([]int{1}), -1)
	assert.ErrorIs(t, err, sequence.ErrNegativeCount)

	_, err = sequence.TakeLast(sequence.FromSlice([]int{1}), -1)
	assert.ErrorIs(t, err, sequence.ErrNegativeCount)
}

// SkipLast(n) + TakeLast(n) must reassemble the source for every n up to its
// length, across fill states of the internal circular buffer.
func TestTailReassembly(t *testing.T) {
	input := []int{10, 20, 30, 40, 50, 60, 70}

	for n := 0; n <= len(input); n++ {
		head, err := sequence.SkipLast(sequence.FromSlice(input), n)
		require.NoError(t, err)
		tail, err := sequence.TakeLast(sequence.FromSlice(input), n)
		require.NoError(t, err)

		assert.Equal(t, input, append(head, tail...), "n = %d", n)
	}
}

func TestTailOverOneShotView(t *testing.T) {
	v, err := sequence.Skip(sequence.FromSlice([]int{1, 2, 3, 4, 5, 6}), 1)
	require.NoError(t, err)

	got, err := sequence.TakeLast(v, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, got)
}
