package duo

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// Difference emits every element of a that is not present in b, in sorted
// order.
//
// On a matching element, both a and b are effectively advanced past it: a
// drops it immediately, and b is skipped over it by the offset-ge search
// that opens the next iteration. Internally b is advanced to the first
// element >= a's current head on every iteration, so a head in b that falls
// behind a's progress is never visited twice.
type Difference[T cmp.Ordered] struct {
	a, b     []T
	strategy core.Strategy
}

// Into drives the difference to completion, writing every emitted element
// to c. It stops at the first error c returns, leaving whatever was already
// pushed in place; nothing is rolled back.
func (d Difference[T]) Into(c collector.Collector[T]) error {
	a, b := d.a, d.b

	for len(a) > 0 {
		if len(b) == 0 {
			return c.ExtendFromSlice(a)
		}

		first := a[0]
		b = core.OffsetGE(d.strategy, b, first)

		if len(b) > 0 && b[0] == first {
			// a is deduplicated, so exactly one element matches; drop it
			// and leave the offset-ge search to carry b past it next pass.
			a = core.OffsetGE(d.strategy, a[1:], b[0])
			continue
		}

		var bound T
		hasBound := len(b) > 0
		if hasBound {
			bound = b[0]
		}
		off := 0
		for off < len(a) && (!hasBound || a[off] < bound) {
			off++
		}
		if err := c.ExtendFromSlice(a[:off]); err != nil {
			return err
		}
		a = a[off:]
	}
	return nil
}

// Slice drives the difference to completion into a plain slice. The
// built-in Slice collector is infallible, so the error is always nil.
func (d Difference[T]) Slice() []T {
	s := collector.NewSlice[T](0)
	_ = d.Into(s)
	return s.Values()
}

// IntoOwned drives the difference to completion into a fresh core.SetBuf,
// so the result can be fed back into duo/multi without paying New's
// validation cost again.
func (d Difference[T]) IntoOwned() core.SetBuf[T] {
	return core.NewSetBufUnchecked(d.Slice())
}
