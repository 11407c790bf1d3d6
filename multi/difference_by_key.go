package multi

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// DifferenceByKey emits every element of base whose projected key is absent
// from every other view, in base's order. base may carry duplicate keys;
// every base-element sharing a key absent from all other views is emitted.
//
// DifferenceByKey has no IntoOwned: its output type A is whatever base's
// element type is, which carries no ordering of its own (only its
// projected key does), so it cannot be wrapped in a core.SetBuf[A].
type DifferenceByKey[A, B any, K cmp.Ordered] struct {
	base     []A
	others   [][]B
	keyA     func(A) K
	keyB     func(B) K
	strategy core.Strategy
}

// Into drives the keyed difference to completion, writing every emitted
// base element to c. It stops at the first error c returns, leaving
// whatever was already pushed in place; nothing is rolled back.
func (d DifferenceByKey[A, B, K]) Into(c collector.Collector[A]) error {
	base := d.base
	others := make([][]B, len(d.others))
	copy(others, d.others)

	for len(base) > 0 {
		key := d.keyA(base[0])

		var hasMin bool
		var min K
		for i, o := range others {
			o = core.OffsetGEByKey(d.strategy, o, key, d.keyB)
			others[i] = o
			if len(o) > 0 {
				k := d.keyB(o[0])
				if !hasMin || k < min {
					min, hasMin = k, true
				}
			}
		}

		if hasMin && min == key {
			base = base[1:]
			continue
		}

		off := 0
		for off < len(base) && (!hasMin || d.keyA(base[off]) < min) {
			off++
		}
		if err := c.ExtendFromSlice(base[:off]); err != nil {
			return err
		}
		base = base[off:]
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
