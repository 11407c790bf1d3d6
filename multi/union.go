package multi

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// Union emits every element present in any of its inputs, each exactly
// once, in sorted order.
type Union[T cmp.Ordered] struct {
	slices [][]T
}

// Into drives the union to completion, writing every emitted element to c.
// It stops at the first error c returns, leaving whatever was already
// pushed in place; nothing is rolled back.
func (u Union[T]) Into(c collector.Collector[T]) error {
	heads := make([][]T, len(u.slices))
	copy(heads, u.slices)

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

			if err := c.Push(m.Val1); err != nil {
				return err
			}
			for i, s := range heads {
				if len(s) > 0 && s[0] == m.Val1 {
					heads[i] = s[1:]
				}
			}
		}
	}
}

// Slice drives the union to completion into a plain slice. The built-in
// Slice collector is infallible, so the error is always nil.
func (u Union[T]) Slice() []T {
	s := collector.NewSlice[T](0)
	_ = u.Into(s)
	return s.Values()
}

// IntoOwned drives the union to completion into a fresh core.SetBuf, so the
// result can be fed back into duo/multi without paying New's validation
// cost again.
func (u Union[T]) IntoOwned() core.SetBuf[T] {
	return core.NewSetBufUnchecked(u.Slice())
}
