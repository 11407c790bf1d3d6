// Package core defines the central Set, SetBuf, and search types that every
// other package in sdset is built on.
//
// A Set[T] is a read-only view over a contiguous run of T that is already
// strictly increasing under T's natural order (cmp.Compare). It is the
// sorted-and-deduplicated-sequence wrapper described by the library: cheap to
// construct, cheap to slice, and — once validated — free to pass around
// without re-checking the invariant.
//
//	– Set[T]       — borrowed view; Slice exposes the underlying []T.
//	– SetBuf[T]     — owned analogue; construct from a dirty []T via Normalize.
//	– Strategy      — pluggable search kernel: Linear, Binary, Exponential.
//	– Minimums[T]   — the "smallest and second-smallest heads" frontier summary
//	                  the multi Union and SymmetricDifference operators use to
//	                  avoid a heap.
//
// Construction is either checked (New, returns ErrNotSorted or
// ErrNotDeduplicated on the first offending adjacency) or unchecked (NewUnchecked, zero-cost, caller-asserted). Misusing
// the unchecked constructor on dirty data corrupts the *output* of downstream
// operators; it does not corrupt memory.
//
// Search is built around core.Exponential: probe 1, 2, 4, 8, ... until a probe
// overshoots, then binary-search the bracket. This is the kernel every duo/
// multi operator uses to skip runs instead of visiting every element.
package core
