package collector

import "math"

// Counter is a Collector that discards every value and keeps only a
// saturating count of how many would have been pushed. Use it when an
// operator's result is only needed as a cardinality, avoiding the
// allocation a Slice/HashSet/TreeSet would otherwise pay.
type Counter[T any] struct {
	count uint64
}

// NewCounter returns a zeroed Counter.
func NewCounter[T any]() *Counter[T] {
	return &Counter[T]{}
}

func (c *Counter[T]) Push(T) error {
	c.add(1)
	return nil
}

func (c *Counter[T]) ExtendFromSlice(vs []T) error {
	c.add(uint64(len(vs)))
	return nil
}

func (c *Counter[T]) Extend(seq func(yield func(T) bool)) error {
	seq(func(T) bool {
		c.add(1)
		return true
	})
	return nil
}

func (c *Counter[T]) Reserve(int) error {
	// nothing to reserve: no backing storage.
	return nil
}

func (c *Counter[T]) add(n uint64) {
	if c.count > math.MaxUint64-n {
		c.count = math.MaxUint64
		return
	}
	c.count += n
}

// Count returns the accumulated count.
func (c *Counter[T]) Count() uint64 {
	return c.count
}
