package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoMinimumsAllEmpty(t *testing.T) {
	m := TwoMinimums([][]int{{}, {}, {}})
	require.Equal(t, Nothing, m.Kind)
}

func TestTwoMinimumsSingleNonEmpty(t *testing.T) {
	m := TwoMinimums([][]int{{}, {5, 6}, {}})
	require.Equal(t, One, m.Kind)
	require.Equal(t, 1, m.Idx1)
	require.Equal(t, 5, m.Val1)
}

func TestTwoMinimumsOrdersByValueNotIndex(t *testing.T) {
	// view 0's head (9) is larger than view 1's head (2); Val1 must still be
	// the smaller value regardless of which view it came from.
	m := TwoMinimums([][]int{{9}, {2}})
	require.Equal(t, Two, m.Kind)
	require.Equal(t, 1, m.Idx1)
	require.Equal(t, 2, m.Val1)
	require.Equal(t, 0, m.Idx2)
	require.Equal(t, 9, m.Val2)
}

func TestTwoMinimumsTiedHeads(t *testing.T) {
	m := TwoMinimums([][]int{{4, 8}, {4, 9}})
	require.Equal(t, Two, m.Kind)
	require.Equal(t, 4, m.Val1)
	require.Equal(t, 4, m.Val2)
}

func TestTwoMinimumsManyViews(t *testing.T) {
	heads := [][]int{{10}, {3}, {7}, {1}, {}, {20}}
	m := TwoMinimums(heads)
	require.Equal(t, Two, m.Kind)
	require.Equal(t, 3, m.Idx1)
	require.Equal(t, 1, m.Val1)
	require.Equal(t, 1, m.Idx2)
	require.Equal(t, 3, m.Val2)
}

func TestTwoMinimumsThirdSmallestIgnored(t *testing.T) {
	// once Two is established, a value smaller than Val2 but larger than Val1
	// must replace Val2, not be dropped.
	m := TwoMinimums([][]int{{1}, {5}, {3}})
	require.Equal(t, Two, m.Kind)
	require.Equal(t, 1, m.Val1)
	require.Equal(t, 3, m.Val2)
}
