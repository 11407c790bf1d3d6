package collector

import (
	"cmp"

	"github.com/katalvlaran/sdset/core"
)

// TreeSet is a Collector that accumulates into a plain buffer which
// core.SortDedup sorts and deduplicates on read. Nothing in this module's dependency set provides a balanced
// tree container, so insertion order is buffered and normalized lazily on
// Values/AsSet rather than kept sorted incrementally; callers who need an
// incrementally-sorted structure should collect into Slice and sort
// themselves, or reach for a tree library directly.
type TreeSet[T cmp.Ordered] struct {
	buf   []T
	dirty bool
}

// NewTreeSet returns an empty TreeSet collector, optionally pre-sized.
func NewTreeSet[T cmp.Ordered](capacity int) *TreeSet[T] {
	return &TreeSet[T]{buf: make([]T, 0, capacity)}
}

func (t *TreeSet[T]) Push(v T) error {
	t.buf = append(t.buf, v)
	t.dirty = true
	return nil
}

func (t *TreeSet[T]) ExtendFromSlice(vs []T) error {
	t.buf = append(t.buf, vs...)
	if len(vs) > 0 {
		t.dirty = true
	}
	return nil
}

func (t *TreeSet[T]) Extend(seq func(yield func(T) bool)) error {
	seq(func(v T) bool {
		t.buf = append(t.buf, v)
		t.dirty = true
		return true
	})
	return nil
}

func (t *TreeSet[T]) Reserve(n int) error {
	if cap(t.buf)-len(t.buf) < n {
		grown := make([]T, len(t.buf), len(t.buf)+n)
		copy(grown, t.buf)
		t.buf = grown
	}
	return nil
}

// normalize sorts and deduplicates the buffer in place, memoizing the result
// until the next mutation.
func (t *TreeSet[T]) normalize() {
	if !t.dirty {
		return
	}
	t.buf = core.SortDedup(t.buf)
	t.dirty = false
}

// Values returns the accumulated elements in sorted, deduplicated order.
func (t *TreeSet[T]) Values() []T {
	t.normalize()
	return t.buf
}

// AsSet returns a core.Set view over the normalized elements.
func (t *TreeSet[T]) AsSet() core.Set[T] {
	t.normalize()
	return core.NewUnchecked(t.buf)
}
