package multi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymmetricDifferenceTwoInputsMatchesDuo(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 4, 6, 7}, []int{2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5}, ob.SymmetricDifference().Slice())
}

func TestSymmetricDifferenceEvenOccurrenceCancels(t *testing.T) {
	// 2 appears in exactly two of the three inputs: it must not be emitted.
	// 1 and 3 each appear in exactly one input: they must be emitted.
	ob, err := NewOpBuilder([]int{1, 2}, []int{2, 3}, []int{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, ob.SymmetricDifference().Slice())
}

func TestSymmetricDifferenceOddOccurrenceAcrossThree(t *testing.T) {
	// 5 appears in all three inputs (odd count 3): must be emitted.
	ob, err := NewOpBuilder([]int{5}, []int{5}, []int{5})
	require.NoError(t, err)
	require.Equal(t, []int{5}, ob.SymmetricDifference().Slice())
}

func TestSymmetricDifferenceSingleInput(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ob.SymmetricDifference().Slice())
}
