package multi

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sdset/core"
)

// config holds the settings an Option mutates.
type config struct {
	strategy core.Strategy
}

// Option configures an OpBuilder or OpBuilderByKey.
type Option func(*config)

// WithStrategy selects the core.Strategy used by Intersection, Difference,
// and DifferenceByKey to locate the next matching run.
func WithStrategy(s core.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// OpBuilder holds a set of validated sorted-and-deduplicated views and
// produces the multi operators over them.
type OpBuilder[T cmp.Ordered] struct {
	slices [][]T
	cfg    config
}

// NewOpBuilder validates every slice and returns a builder over them.
func NewOpBuilder[T cmp.Ordered](slices ...[]T) (OpBuilder[T], error) {
	for i, s := range slices {
		if err := core.Validate(s); err != nil {
			return OpBuilder[T]{}, fmt.Errorf("multi: slice %d: %w", i, err)
		}
	}
	return NewOpBuilderUnchecked(slices...), nil
}

// NewOpBuilderUnchecked returns a builder without validating its inputs.
// The caller asserts every slice is already sorted and deduplicated.
func NewOpBuilderUnchecked[T cmp.Ordered](slices ...[]T) OpBuilder[T] {
	cp := make([][]T, len(slices))
	copy(cp, slices)
	return OpBuilder[T]{slices: cp}
}

// WithOptions applies opts and returns the updated builder.
func (ob OpBuilder[T]) WithOptions(opts ...Option) OpBuilder[T] {
	for _, opt := range opts {
		opt(&ob.cfg)
	}
	return ob
}

// Union returns the union operator over this builder's inputs.
func (ob OpBuilder[T]) Union() Union[T] {
	return Union[T]{slices: ob.slices}
}

// Intersection returns the intersection operator over this builder's
// inputs.
func (ob OpBuilder[T]) Intersection() Intersection[T] {
	return Intersection[T]{slices: ob.slices, strategy: ob.cfg.strategy}
}

// Difference returns the operator emitting elements of the first input
// ("base") absent from every other input.
func (ob OpBuilder[T]) Difference() Difference[T] {
	if len(ob.slices) == 0 {
		return Difference[T]{}
	}
	return Difference[T]{base: ob.slices[0], others: ob.slices[1:], strategy: ob.cfg.strategy}
}

// SymmetricDifference returns the operator emitting every element present
// in an odd number of this builder's inputs.
func (ob OpBuilder[T]) SymmetricDifference() SymmetricDifference[T] {
	return SymmetricDifference[T]{slices: ob.slices}
}
