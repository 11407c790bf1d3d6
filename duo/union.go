package duo

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// Union emits every element present in a or b (or both), each exactly once,
// in sorted order.
type Union[T cmp.Ordered] struct {
	a, b []T
}

// Into drives the union to completion, writing every emitted element to c.
// It stops at the first error c returns, leaving whatever was already
// pushed in place; nothing is rolled back.
func (u Union[T]) Into(c collector.Collector[T]) error {
	a, b := u.a, u.b
	if err := c.Reserve(len(a) + len(b)); err != nil {
		return err
	}

	for len(a) > 0 && len(b) > 0 {
		switch cmp.Compare(a[0], b[0]) {
		case -1:
			// emit the run of a strictly below b's head in one shot.
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
			if err := c.Push(a[0]); err != nil {
				return err
			}
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

// Slice drives the union to completion into a plain slice, the common case.
// The built-in Slice collector is infallible, so the error is always nil.
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
