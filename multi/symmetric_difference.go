package multi

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// SymmetricDifference emits every element present in an odd number of its
// inputs, in sorted order. With two inputs this reduces to duo's
// SymmetricDifference; with more, an element shared by an even number of
// inputs cancels out.
type SymmetricDifference[T cmp.Ordered] struct {
	slices [][]T
}

// Into drives the symmetric difference to completion, writing every
// emitted element to c. It stops at the first error c returns, leaving
// whatever was already pushed in place; nothing is rolled back.
func (sd SymmetricDifference[T]) Into(c collector.Collector[T]) error {
	heads := make([][]T, len(sd.slices))
	copy(heads, sd.slices)

	for {
		m := core.TwoMinimums(heads)
		switch m.Kind {
		case core.Nothing:
			return nil
		case core.One:
			return c.ExtendFromSlice(heads[m.Idx1])
		default: // core.Two
			if m.Val1 != m.Val2 {
				s := heads[m.Idx1]
				off := 0
				for off < len(s) && s[off] < m.Val2 {
					off++
				}
				if err := c.ExtendFromSlice(s[:off]); err != nil {
					return err
				}
				heads[m.Idx1] = s[off:]
				continue
			}

			count := 0
			for i, s := range heads {
				if len(s) > 0 && s[0] == m.Val1 {
					count++
					heads[i] = s[1:]
				}
			}
			if count%2 == 1 {
				if err := c.Push(m.Val1); err != nil {
					return err
				}
			}
		}
	}
}

// Slice drives the symmetric difference to completion into a plain slice.
// The built-in Slice collector is infallible, so the error is always nil.
func (sd SymmetricDifference[T]) Slice() []T {
	s := collector.NewSlice[T](0)
	_ = sd.Into(s)
	return s.Values()
}

// IntoOwned drives the symmetric difference to completion into a fresh
// core.SetBuf, so the result can be fed back into duo/multi without paying
// New's validation cost again.
func (sd SymmetricDifference[T]) IntoOwned() core.SetBuf[T] {
	return core.NewSetBufUnchecked(sd.Slice())
}
