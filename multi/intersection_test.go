package multi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersectionThreeInputs(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 4, 6, 7}, []int{2, 4, 6, 8}, []int{2, 4, 6, 9})
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, ob.Intersection().Slice())
}

func TestIntersectionNoCommonElement(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2}, []int{3, 4}, []int{5, 6})
	require.NoError(t, err)
	require.Empty(t, ob.Intersection().Slice())
}

func TestIntersectionEmptyInputList(t *testing.T) {
	ob, err := NewOpBuilder[int]()
	require.NoError(t, err)
	require.Empty(t, ob.Intersection().Slice())
}

func TestIntersectionOneEmptySlice(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 3}, []int{}, []int{1, 2, 3})
	require.NoError(t, err)
	require.Empty(t, ob.Intersection().Slice())
}
