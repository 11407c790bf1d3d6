package collector

// Collector is the uniform sink every duo/multi operator writes its result
// through. Implementations never need to be safe for concurrent use; a
// single operator drives a single Collector to completion.
//
// Every method returns an error so a fallible collector (one backed by a
// bounded channel, a capacity-limited buffer, or anything else that can
// reject a value) can signal failure. The built-in collectors in this
// package are infallible and always return nil — Go's idiomatic stand-in
// for Rust's Infallible error type. An operator's Into stops at the first
// non-nil error: whatever was already pushed stays pushed, nothing is
// rolled back, and no further elements are emitted.
type Collector[T any] interface {
	// Push appends a single value.
	Push(v T) error

	// ExtendFromSlice appends every element of vs, in order. Implementations
	// may do this more cheaply than repeated Push calls (e.g. append(...)).
	ExtendFromSlice(vs []T) error

	// Extend appends every value produced by seq, in iteration order.
	Extend(seq func(yield func(T) bool)) error

	// Reserve hints that at least n more values are coming, letting a
	// collector backed by a growable container pre-size itself. Collectors
	// for which this is meaningless (Counter) may no-op.
	Reserve(n int) error
}
