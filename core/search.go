package core

import "cmp"

// Strategy selects the search kernel used to locate an element (or an
// insertion point) inside an already-sorted slice. Exponential is the
// default used by every duo/multi operator; Linear and Binary exist so
// callers can benchmark against naive baselines or opt into a cheaper
// strategy for slices too small for exponential's probing to pay off.
type Strategy int

const (
	// Exponential probes 1, 2, 4, 8, ... then binary-searches the bracket.
	// O(log p) where p is the distance from the start to the answer.
	Exponential Strategy = iota
	// Binary performs a classic binary search over the whole slice. O(log n).
	Binary
	// Linear scans front-to-back. O(n), useful only as a correctness baseline.
	Linear
)

// String implements fmt.Stringer for diagnostics and benchmark labels.
func (s Strategy) String() string {
	switch s {
	case Binary:
		return "binary"
	case Linear:
		return "linear"
	default:
		return "exponential"
	}
}

// SearchBy locates the element for which cmp returns 0 using the given
// Strategy. cmp must be monotonic over slice: negative while the candidate
// sorts before the target, zero on the target, positive once the candidate
// sorts after it. Returns (index, true) on an exact match, else (insertion
// point, false) — the unique index at which the target could be inserted
// while keeping slice ordered.
func SearchBy[T any](strategy Strategy, slice []T, cmp func(T) int) (int, bool) {
	switch strategy {
	case Linear:
		return linearSearchBy(slice, cmp)
	case Binary:
		return binarySearchBy(slice, cmp)
	default:
		return exponentialSearchBy(slice, cmp)
	}
}

func linearSearchBy[T any](slice []T, cmp func(T) int) (int, bool) {
	for i, x := range slice {
		switch c := cmp(x); {
		case c == 0:
			return i, true
		case c > 0:
			return i, false
		}
	}
	return len(slice), false
}

func binarySearchBy[T any](slice []T, cmp func(T) int) (int, bool) {
	lo, hi := 0, len(slice)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(slice[mid]); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

func exponentialSearchBy[T any](slice []T, cmp func(T) int) (int, bool) {
	n := len(slice)
	index := 1
	for index < n && cmp(slice[index]) < 0 {
		index *= 2
	}

	half := index / 2
	bound := index + 1
	if bound > n {
		bound = n
	}

	idx, found := binarySearchBy(slice[half:bound], cmp)
	return half + idx, found
}

// Search locates elem in slice, using cmp.Compare as the ordering.
func Search[T cmp.Ordered](strategy Strategy, slice []T, elem T) (int, bool) {
	return SearchBy(strategy, slice, func(x T) int { return cmp.Compare(x, elem) })
}

// SearchByKey locates the element whose projected key equals key.
func SearchByKey[T any, K cmp.Ordered](strategy Strategy, slice []T, key K, keyFn func(T) K) (int, bool) {
	return SearchBy(strategy, slice, func(x T) int { return cmp.Compare(keyFn(x), key) })
}

// OffsetGEBy returns the suffix of slice starting at the first element for
// which cmp(x) >= 0.
func OffsetGEBy[T any](strategy Strategy, slice []T, cmp func(T) int) []T {
	idx, _ := SearchBy(strategy, slice, cmp)
	return slice[idx:]
}

// OffsetGE returns the suffix of slice starting at the first element >= elem.
func OffsetGE[T cmp.Ordered](strategy Strategy, slice []T, elem T) []T {
	return OffsetGEBy(strategy, slice, func(x T) int { return cmp.Compare(x, elem) })
}

// OffsetGEByKey returns the suffix of slice starting at the first element
// whose projected key is >= key.
func OffsetGEByKey[T any, K cmp.Ordered](strategy Strategy, slice []T, key K, keyFn func(T) K) []T {
	return OffsetGEBy(strategy, slice, func(x T) int { return cmp.Compare(keyFn(x), key) })
}

// geIndex returns the first index i for which cmp(slice[i]) >= 0, or
// len(slice) if none.
func geIndex[T any](strategy Strategy, slice []T, cmp func(T) int) int {
	idx, _ := SearchBy(strategy, slice, cmp)
	return idx
}

// gtIndex returns the first index i for which cmp(slice[i]) > 0, or
// len(slice) if none.
func gtIndex[T any](strategy Strategy, slice []T, cmp func(T) int) int {
	idx, _ := SearchBy(strategy, slice, func(x T) int {
		if cmp(x) <= 0 {
			return -1
		}
		return 1
	})
	return idx
}
