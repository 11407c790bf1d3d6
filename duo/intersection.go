package duo

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// Intersection emits every element present in both a and b, in sorted
// order.
type Intersection[T cmp.Ordered] struct {
	a, b     []T
	strategy core.Strategy
}

// Into drives the intersection to completion, writing every emitted element
// to c. It stops at the first error c returns, leaving whatever was already
// pushed in place; nothing is rolled back.
func (x Intersection[T]) Into(c collector.Collector[T]) error {
	a, b := x.a, x.b

	for len(a) > 0 && len(b) > 0 {
		switch cmp.Compare(a[0], b[0]) {
		case -1:
			a = core.OffsetGE(x.strategy, a, b[0])
		case 0:
			// a and b are each deduplicated, so the match is exactly one
			// element wide on both sides.
			if err := c.Push(a[0]); err != nil {
				return err
			}
			a, b = a[1:], b[1:]
		default:
			b = core.OffsetGE(x.strategy, b, a[0])
		}
	}
	return nil
}

// Slice drives the intersection to completion into a plain slice. The
// built-in Slice collector is infallible, so the error is always nil.
func (x Intersection[T]) Slice() []T {
	s := collector.NewSlice[T](0)
	_ = x.Into(s)
	return s.Values()
}

// IntoOwned drives the intersection to completion into a fresh
// core.SetBuf, so the result can be fed back into duo/multi without paying
// New's validation cost again.
func (x Intersection[T]) IntoOwned() core.SetBuf[T] {
	return core.NewSetBufUnchecked(x.Slice())
}
