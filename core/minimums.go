package core

import "cmp"

// MinimumsKind tags which shape a Minimums value holds.
type MinimumsKind int

const (
	// Nothing means every input view was empty.
	Nothing MinimumsKind = iota
	// One means exactly one view had a head; Idx1/Val1 identify it.
	One
	// Two means at least two views had heads; Val1 <= Val2 (equal when a
	// value is shared across views).
	Two
)

// Minimums is the three-valued summary of the smallest and second-smallest
// heads across a frontier of input views. It is the primitive every multi
// operator drives its loop from, computed in a single Θ(k) scan instead of a
// heap — k is small in the operators' canonical workloads, and the scan is
// friendlier to branch prediction than heap maintenance would be.
type Minimums[T any] struct {
	Kind MinimumsKind
	Idx1 int
	Val1 T
	Idx2 int
	Val2 T
}

// TwoMinimums scans the first element ("head") of every non-empty slice in
// heads and returns the smallest and second-smallest, along with the index of
// the view each came from.
func TwoMinimums[T cmp.Ordered](heads [][]T) Minimums[T] {
	var m Minimums[T]

	for i, s := range heads {
		if len(s) == 0 {
			continue
		}
		v := s[0]

		switch m.Kind {
		case Nothing:
			m = Minimums[T]{Kind: One, Idx1: i, Val1: v}
		case One:
			if v < m.Val1 {
				m = Minimums[T]{Kind: Two, Idx1: i, Val1: v, Idx2: m.Idx1, Val2: m.Val1}
			} else {
				m = Minimums[T]{Kind: Two, Idx1: m.Idx1, Val1: m.Val1, Idx2: i, Val2: v}
			}
		case Two:
			switch {
			case v < m.Val1:
				m.Idx2, m.Val2 = m.Idx1, m.Val1
				m.Idx1, m.Val1 = i, v
			case v < m.Val2:
				m.Idx2, m.Val2 = i, v
			}
		}
	}

	return m
}
