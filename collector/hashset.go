package collector

// HashSet is a deduplicating Collector backed by a Go map. Output order is
// unspecified; use Slice or TreeSet when order matters. It is infallible:
// every method always returns nil.
type HashSet[T comparable] struct {
	m map[T]struct{}
}

// NewHashSet returns an empty HashSet collector, optionally pre-sized.
func NewHashSet[T comparable](capacity int) *HashSet[T] {
	return &HashSet[T]{m: make(map[T]struct{}, capacity)}
}

func (h *HashSet[T]) Push(v T) error {
	h.m[v] = struct{}{}
	return nil
}

func (h *HashSet[T]) ExtendFromSlice(vs []T) error {
	for _, v := range vs {
		h.m[v] = struct{}{}
	}
	return nil
}

func (h *HashSet[T]) Extend(seq func(yield func(T) bool)) error {
	seq(func(v T) bool {
		h.m[v] = struct{}{}
		return true
	})
	return nil
}

func (h *HashSet[T]) Reserve(n int) error {
	// Go's map has no public capacity-reservation hook; nothing to do.
	return nil
}

// Values returns the accumulated elements in unspecified order.
func (h *HashSet[T]) Values() []T {
	out := make([]T, 0, len(h.m))
	for v := range h.m {
		out = append(out, v)
	}
	return out
}

// Len returns the number of distinct elements accumulated so far.
func (h *HashSet[T]) Len() int {
	return len(h.m)
}
