package multi

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// Difference emits every element of its base input absent from every one of
// its other inputs, in sorted order.
type Difference[T cmp.Ordered] struct {
	base     []T
	others   [][]T
	strategy core.Strategy
}

// Into drives the difference to completion, writing every emitted base
// element to c. It stops at the first error c returns, leaving whatever was
// already pushed in place; nothing is rolled back.
func (d Difference[T]) Into(c collector.Collector[T]) error {
	base := d.base
	others := make([][]T, len(d.others))
	copy(others, d.others)

	for len(base) > 0 {
		first := base[0]

		var hasMin bool
		var min T
		for i, o := range others {
			o = core.OffsetGE(d.strategy, o, first)
			others[i] = o
			if len(o) > 0 && (!hasMin || o[0] < min) {
				min, hasMin = o[0], true
			}
		}

		if hasMin && min == first {
			base = base[1:]
			continue
		}

		off := 0
		for off < len(base) && (!hasMin || base[off] < min) {
			off++
		}
		if err := c.ExtendFromSlice(base[:off]); err != nil {
			return err
		}
		base = base[off:]
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
