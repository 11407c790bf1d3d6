package multi

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// Intersection emits every element present in all of its inputs, in sorted
// order.
type Intersection[T cmp.Ordered] struct {
	slices   [][]T
	strategy core.Strategy
}

// Into drives the intersection to completion, writing every emitted
// element to c. It stops at the first error c returns, leaving whatever
// was already pushed in place; nothing is rolled back.
func (x Intersection[T]) Into(c collector.Collector[T]) error {
	if len(x.slices) == 0 {
		return nil
	}
	heads := make([][]T, len(x.slices))
	copy(heads, x.slices)

	for {
		for _, s := range heads {
			if len(s) == 0 {
				return nil
			}
		}

		allEqual := true
		max := heads[0][0]
		for _, s := range heads {
			if s[0] != heads[0][0] {
				allEqual = false
			}
			if s[0] > max {
				max = s[0]
			}
		}

		if allEqual {
			if err := c.Push(heads[0][0]); err != nil {
				return err
			}
			for i := range heads {
				heads[i] = heads[i][1:]
			}
			continue
		}

		for i := range heads {
			heads[i] = core.OffsetGE(x.strategy, heads[i], max)
		}
	}
}

// Slice drives the intersection to completion into a plain slice. The
// built-in Slice collector is infallible, so the error is always nil.
func (x Intersection[T]) Slice() []T {
	s := collector.NewSlice[T](0)
	_ = x.Into(s)
	return s.Values()
}

// IntoOwned drives the intersection to completion into a fresh core.SetBuf,
// so the result can be fed back into duo/multi without paying New's
// validation cost again.
func (x Intersection[T]) IntoOwned() core.SetBuf[T] {
	return core.NewSetBufUnchecked(x.Slice())
}
