package multi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type ledgerEntry struct {
	account int
	amount  int
}

func TestDifferenceByKeyDuplicateBase(t *testing.T) {
	base := []ledgerEntry{
		{1, 100},
		{1, -40},
		{2, 50},
		{3, 10},
		{3, 20},
	}
	reconciled := []int{1, 3}
	unrelated := []int{9, 10}

	ob, err := NewOpBuilderByKey(base, func(e ledgerEntry) int { return e.account },
		[][]int{reconciled, unrelated}, func(k int) int { return k })
	require.NoError(t, err)

	got := ob.DifferenceByKey().Slice()
	require.Equal(t, []ledgerEntry{{2, 50}}, got)
}

func TestDifferenceByKeyNoOthers(t *testing.T) {
	base := []ledgerEntry{{1, 100}, {2, 50}}
	ob, err := NewOpBuilderByKey(base, func(e ledgerEntry) int { return e.account },
		nil, func(k int) int { return k })
	require.NoError(t, err)
	require.Equal(t, base, ob.DifferenceByKey().Slice())
}
