package duo

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sdset/core"
)

// config holds the settings an Option mutates.
type config struct {
	strategy core.Strategy
}

// Option configures an OpBuilder or OpBuilderByKey. The zero value of
// config already selects core.Exponential, so Option is only needed to
// override it.
type Option func(*config)

// WithStrategy selects the core.Strategy used by Difference, Intersection,
// and every by-key operator to locate the next matching run.
func WithStrategy(s core.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// OpBuilder holds two validated sorted-and-deduplicated views and produces
// the duo operators over them.
type OpBuilder[T cmp.Ordered] struct {
	a, b []T
	cfg  config
}

// NewOpBuilder validates both a and b and returns a builder over them.
func NewOpBuilder[T cmp.Ordered](a, b []T) (OpBuilder[T], error) {
	if err := core.Validate(a); err != nil {
		return OpBuilder[T]{}, fmt.Errorf("duo: a: %w", err)
	}
	if err := core.Validate(b); err != nil {
		return OpBuilder[T]{}, fmt.Errorf("duo: b: %w", err)
	}
	return NewOpBuilderUnchecked(a, b), nil
}

// NewOpBuilderUnchecked returns a builder without validating a or b. The
// caller asserts both are already sorted and deduplicated.
func NewOpBuilderUnchecked[T cmp.Ordered](a, b []T) OpBuilder[T] {
	return OpBuilder[T]{a: a, b: b}
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
	return Union[T]{a: ob.a, b: ob.b}
}

// Intersection returns the intersection operator over this builder's inputs.
func (ob OpBuilder[T]) Intersection() Intersection[T] {
	return Intersection[T]{a: ob.a, b: ob.b, strategy: ob.cfg.strategy}
}

// Difference returns the (a - b) operator over this builder's inputs.
func (ob OpBuilder[T]) Difference() Difference[T] {
	return Difference[T]{a: ob.a, b: ob.b, strategy: ob.cfg.strategy}
}

// SymmetricDifference returns the symmetric-difference operator over this
// builder's inputs.
func (ob OpBuilder[T]) SymmetricDifference() SymmetricDifference[T] {
	return SymmetricDifference[T]{a: ob.a, b: ob.b}
}
