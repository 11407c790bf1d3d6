package duo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymmetricDifferenceConcreteScenario(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 4, 6, 7}, []int{2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5}, ob.SymmetricDifference().Slice())
}

func TestSymmetricDifferenceDisjoint(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 3, 5}, []int{2, 4, 6})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, ob.SymmetricDifference().Slice())
}

func TestSymmetricDifferenceIdentical(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 3}, []int{1, 2, 3})
	require.NoError(t, err)
	require.Empty(t, ob.SymmetricDifference().Slice())
}

func TestSymmetricDifferenceUnionMinusIntersection(t *testing.T) {
	a := []int{1, 2, 4, 6, 7, 9}
	b := []int{2, 3, 4, 5, 6, 7, 8}

	ob, err := NewOpBuilder(a, b)
	require.NoError(t, err)

	union := ob.Union().Slice()
	inter := ob.Intersection().Slice()
	symdiff := ob.SymmetricDifference().Slice()

	interSet := make(map[int]struct{}, len(inter))
	for _, v := range inter {
		interSet[v] = struct{}{}
	}
	var expected []int
	for _, v := range union {
		if _, ok := interSet[v]; !ok {
			expected = append(expected, v)
		}
	}
	require.Equal(t, expected, symdiff)
}
