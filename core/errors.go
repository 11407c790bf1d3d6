package core

import "errors"

// Sentinel errors returned by the validating constructors (New, NewSetBuf).
// Only these two ever originate from this package; everything else is total
// on valid input.
var (
	// ErrNotSorted indicates the first offending adjacency violates ordering:
	// some element is followed by a strictly smaller one.
	ErrNotSorted = errors.New("core: slice is not sorted")

	// ErrNotDeduplicated indicates the first offending adjacency is an exact
	// duplicate pair.
	ErrNotDeduplicated = errors.New("core: slice is not deduplicated")
)
