package multi

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sdset/core"
)

// OpBuilderByKey holds a base view and a set of "other" views, all
// projected to a common ordered key type K, and produces the key-joined
// multi operators over them. base may carry duplicate keys; every other
// view must not.
type OpBuilderByKey[A, B any, K cmp.Ordered] struct {
	base   []A
	others [][]B
	keyA   func(A) K
	keyB   func(B) K
	cfg    config
}

// NewOpBuilderByKey validates that base's projected keys are non-decreasing
// and every other view's projected keys are strictly increasing, and
// returns a builder over them.
func NewOpBuilderByKey[A, B any, K cmp.Ordered](base []A, keyA func(A) K, others [][]B, keyB func(B) K) (OpBuilderByKey[A, B, K], error) {
	baseKeys := make([]K, len(base))
	for i, v := range base {
		baseKeys[i] = keyA(v)
	}
	for i := 1; i < len(baseKeys); i++ {
		if baseKeys[i] < baseKeys[i-1] {
			return OpBuilderByKey[A, B, K]{}, fmt.Errorf("multi: base: %w", core.ErrNotSorted)
		}
	}

	for i, o := range others {
		keys := make([]K, len(o))
		for j, v := range o {
			keys[j] = keyB(v)
		}
		if err := core.Validate(keys); err != nil {
			return OpBuilderByKey[A, B, K]{}, fmt.Errorf("multi: other %d: %w", i, err)
		}
	}

	return NewOpBuilderByKeyUnchecked(base, keyA, others, keyB), nil
}

// NewOpBuilderByKeyUnchecked returns a builder without validating key
// ordering.
func NewOpBuilderByKeyUnchecked[A, B any, K cmp.Ordered](base []A, keyA func(A) K, others [][]B, keyB func(B) K) OpBuilderByKey[A, B, K] {
	cp := make([][]B, len(others))
	copy(cp, others)
	return OpBuilderByKey[A, B, K]{base: base, others: cp, keyA: keyA, keyB: keyB}
}

// WithOptions applies opts and returns the updated builder.
func (ob OpBuilderByKey[A, B, K]) WithOptions(opts ...Option) OpBuilderByKey[A, B, K] {
	for _, opt := range opts {
		opt(&ob.cfg)
	}
	return ob
}

// DifferenceByKey returns the operator emitting every base element whose
// key is absent from every other view.
func (ob OpBuilderByKey[A, B, K]) DifferenceByKey() DifferenceByKey[A, B, K] {
	return DifferenceByKey[A, B, K]{base: ob.base, others: ob.others, keyA: ob.keyA, keyB: ob.keyB, strategy: ob.cfg.strategy}
}
