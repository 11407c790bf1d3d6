package duo

import (
	"cmp"

	"github.com/katalvlaran/sdset/collector"
	"github.com/katalvlaran/sdset/core"
)

// IntersectionByKey emits every element of a whose projected key also
// appears among b's projected keys, in a's order. When a carries several
// elements sharing a key present in b, every one of them is emitted.
//
// IntersectionByKey has no IntoOwned: its output type A is whatever a's
// element type is, which carries no ordering of its own (only its
// projected key does), so it cannot be wrapped in a core.SetBuf[A].
type IntersectionByKey[A, B any, K cmp.Ordered] struct {
	a        []A
	b        []B
	keyA     func(A) K
	keyB     func(B) K
	strategy core.Strategy
}

// Into drives the keyed intersection to completion, writing every emitted
// a-element to c. It stops at the first error c returns, leaving whatever
// was already pushed in place; nothing is rolled back.
func (x IntersectionByKey[A, B, K]) Into(c collector.Collector[A]) error {
	a, b := x.a, x.b

	for len(a) > 0 && len(b) > 0 {
		ka := x.keyA(a[0])
		kb := x.keyB(b[0])

		switch {
		case ka < kb:
			a = core.OffsetGEByKey(x.strategy, a, kb, x.keyA)
		case ka > kb:
			b = core.OffsetGEByKey(x.strategy, b, ka, x.keyB)
		default:
			// bracket every a-element sharing this key and emit the run.
			rest := core.OffsetGEBy(x.strategy, a, func(v A) int {
				if x.keyA(v) <= ka {
					return -1
				}
				return 1
			})
			off := len(a) - len(rest)
			if err := c.ExtendFromSlice(a[:off]); err != nil {
				return err
			}
			a = a[off:]
			b = b[1:]
		}
	}
	return nil
}

// Slice drives the keyed intersection to completion into a plain slice. The
// built-in Slice collector is infallible, so the error is always nil.
func (x IntersectionByKey[A, B, K]) Slice() []A {
	s := collector.NewSlice[A](0)
	_ = x.Into(s)
	return s.Values()
}
