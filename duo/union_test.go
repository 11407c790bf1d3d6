package duo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionConcreteScenario(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 4, 6, 7}, []int{2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ob.Union().Slice())
}

func TestUnionEmptyInputs(t *testing.T) {
	ob, err := NewOpBuilder([]int{}, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ob.Union().Slice())

	ob, err = NewOpBuilder([]int{1, 2, 3}, []int{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ob.Union().Slice())

	ob, err = NewOpBuilder([]int{}, []int{})
	require.NoError(t, err)
	require.Empty(t, ob.Union().Slice())
}

func TestUnionDisjoint(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 3, 5}, []int{2, 4, 6})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, ob.Union().Slice())
}

func TestUnionIdentical(t *testing.T) {
	ob, err := NewOpBuilder([]int{1, 2, 3}, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, ob.Union().Slice())
}

func TestNewOpBuilderRejectsInvalidInput(t *testing.T) {
	_, err := NewOpBuilder([]int{3, 1, 2}, []int{1, 2})
	require.Error(t, err)

	_, err = NewOpBuilder([]int{1, 2}, []int{1, 1})
	require.Error(t, err)
}
