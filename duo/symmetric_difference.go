package duo

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// SymmetricDifference emits every element present in exactly one of a or b,
// in sorted order.
type SymmetricDifference[T cmp.Ordered] struct {
	a, b []T
}

// Into drives the symmetric difference to completion, writing every
// emitted element to c. It stops at the first error c returns, leaving
// whatever was already pushed in place; nothing is rolled back.
func (sd SymmetricDifference[T]) Into(c collector.Collector[T]) error {
	a, b := sd.a, sd.b

	for len(a) > 0 && len(b) > 0 {
		switch cmp.Compare(a[0], b[0]) {
		case -1:
			first := b[0]
			off := 0
			for off < len(a) && a[off] < first {
				off++
			}
			if err := c.ExtendFromSlice(a[:off]); err != nil {
				return err
			}
			a = a[off:]
		case 0:
			a, b = a[1:], b[1:]
		default:
			first := a[0]
			off := 0
			for off < len(b) && b[off] < first {
				off++
			}
			if err := c.ExtendFromSlice(b[:off]); err != nil {
				return err
			}
			b = b[off:]
		}
	}
	if err := c.ExtendFromSlice(a); err != nil {
		return err
	}
	return c.ExtendFromSlice(b)
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
