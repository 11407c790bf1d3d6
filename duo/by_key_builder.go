package duo

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sdset/core"
)

// OpBuilderByKey holds two validated views, projected to a common ordered
// key type K by keyA/keyB, and produces the key-joined duo operators over
// them. a may carry duplicate keys (a one-to-many relation); b must not.
type OpBuilderByKey[A, B any, K cmp.Ordered] struct {
	a    []A
	b    []B
	keyA func(A) K
	keyB func(B) K
	cfg  config
}

// NewOpBuilderByKey validates that a's projected keys and b's projected
// keys are each non-decreasing (a's may repeat; b's must be strictly
// increasing) and returns a builder over them.
func NewOpBuilderByKey[A, B any, K cmp.Ordered](a []A, keyA func(A) K, b []B, keyB func(B) K) (OpBuilderByKey[A, B, K], error) {
	aKeys := make([]K, len(a))
	for i, v := range a {
		aKeys[i] = keyA(v)
	}
	for i := 1; i < len(aKeys); i++ {
		if aKeys[i] < aKeys[i-1] {
			return OpBuilderByKey[A, B, K]{}, fmt.Errorf("duo: a: %w", core.ErrNotSorted)
		}
	}

	bKeys := make([]K, len(b))
	for i, v := range b {
		bKeys[i] = keyB(v)
	}
	if err := core.Validate(bKeys); err != nil {
		return OpBuilderByKey[A, B, K]{}, fmt.Errorf("duo: b: %w", err)
	}

	return NewOpBuilderByKeyUnchecked(a, keyA, b, keyB), nil
}

// NewOpBuilderByKeyUnchecked returns a builder without validating key
// ordering. The caller asserts a's keys are non-decreasing and b's keys are
// strictly increasing.
func NewOpBuilderByKeyUnchecked[A, B any, K cmp.Ordered](a []A, keyA func(A) K, b []B, keyB func(B) K) OpBuilderByKey[A, B, K] {
	return OpBuilderByKey[A, B, K]{a: a, b: b, keyA: keyA, keyB: keyB}
}

// WithOptions applies opts and returns the updated builder.
func (ob OpBuilderByKey[A, B, K]) WithOptions(opts ...Option) OpBuilderByKey[A, B, K] {
	for _, opt := range opts {
		opt(&ob.cfg)
	}
	return ob
}

// DifferenceByKey returns the (a - b) operator over this builder's inputs,
// joined by key.
func (ob OpBuilderByKey[A, B, K]) DifferenceByKey() DifferenceByKey[A, B, K] {
	return DifferenceByKey[A, B, K]{a: ob.a, b: ob.b, keyA: ob.keyA, keyB: ob.keyB, strategy: ob.cfg.strategy}
}

// IntersectionByKey returns the operator emitting every a-element whose key
// also appears in b, joined by key.
func (ob OpBuilderByKey[A, B, K]) IntersectionByKey() IntersectionByKey[A, B, K] {
	return IntersectionByKey[A, B, K]{a: ob.a, b: ob.b, keyA: ob.keyA, keyB: ob.keyB, strategy: ob.cfg.strategy}
}
