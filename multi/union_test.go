package multi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionThreeInputs(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 4, 7}, []int{2, 4, 6}, []int{3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ob.Union().Slice())
}

func TestUnionSingleInput(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ob.Union().Slice())
}

func TestUnionNoInputs(t *testing.T) {
	ob, err := NewOpBuilder[int]()
	require.NoError(t, err)
	require.Empty(t, ob.Union().Slice())
}

func TestUnionWithEmptySlices(t *testing.T) {
	ob, err := NewOpBuilder([]int{}, []int{1, 2}, []int{}, []int{3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ob.Union().Slice())
}

func TestUnionAllIdentical(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ob.Union().Slice())
}

func TestNewOpBuilderRejectsInvalidInput(t *testing.T) {
	_, err := NewOpBuilder([]int{1, 2}, []int{3, 1})
	require.Error(t, err)
}
