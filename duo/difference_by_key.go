package duo

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// DifferenceByKey emits every element of a whose projected key does not
// appear among b's projected keys, in a's order. a may carry duplicate
// keys; every a-element sharing a key absent from b is emitted.
//
// DifferenceByKey has no IntoOwned: its output type A is whatever a's
// element type is, which carries no ordering of its own (only its
// projected key does), so it cannot be wrapped in a core.SetBuf[A].
type DifferenceByKey[A, B any, K cmp.Ordered] struct {
	a        []A
	b        []B
	keyA     func(A) K
	keyB     func(B) K
	strategy core.Strategy
}

// Into drives the keyed difference to completion, writing every emitted
// a-element to c. It stops at the first error c returns, leaving whatever
// was already pushed in place; nothing is rolled back.
func (d DifferenceByKey[A, B, K]) Into(c collector.Collector[A]) error {
	a, b := d.a, d.b

	for len(a) > 0 {
		if len(b) == 0 {
			return c.ExtendFromSlice(a)
		}

		key := d.keyA(a[0])
		b = core.OffsetGEByKey(d.strategy, b, key, d.keyB)

		if len(b) > 0 && d.keyB(b[0]) == key {
			// Drop exactly one a-element sharing this key; any further
			// duplicates on a's side are caught by the next iteration,
			// since b has not advanced past this key yet.
			a = core.OffsetGEByKey(d.strategy, a[1:], key, d.keyA)
			continue
		}

		var bound K
		hasBound := len(b) > 0
		if hasBound {
			bound = d.keyB(b[0])
		}
		off := 0
		for off < len(a) && (!hasBound || d.keyA(a[off]) < bound) {
			off++
		}
		if err := c.ExtendFromSlice(a[:off]); err != nil {
			return err
		}
		a = a[off:]
	}
	return nil
}

// Slice drives the keyed difference to completion into a plain slice. The
// built-in Slice collector is infallible, so the error is always nil.
func (d DifferenceByKey[A, B, K]) Slice() []A {
	s := collector.NewSlice[A](0)
	_ = d.Into(s)
	return s.Values()
}
