// Package sdset is your in-memory toolkit for set algebra over sorted,
// deduplicated sequences in Go.
//
// 🚀 What is sdset?
//
//	A pure-Go, zero-runtime-dependency library that brings together:
//
//	  • Core primitives: Set/SetBuf views, pluggable search strategies, the
//	    Minimums frontier summary the k-way union and symmetric difference
//	    drive from
//	  • Collectors: Slice, HashSet, TreeSet, and a counting-only Counter,
//	    so operators never care what container their output lands in
//	  • Operators: Union, Intersection, Difference, SymmetricDifference —
//	    two-input (duo) and k-way (multi) — plus by-key joins for
//	    heterogeneous inputs with a one-to-many base side
//
// ✨ Why choose sdset?
//
//   - Predictable   — every operator drives to completion deterministically;
//     no hidden goroutines, no partial results on success
//   - Efficient     — exponential search skips whole runs instead of
//     visiting every element, the technique every operator is built on
//   - Extensible    — implement collector.Collector to land output anywhere
//   - Pure Go       — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — Set, SetBuf, search Strategy, Bound, Minimums
//	collector/ — the Collector sink interface and its implementations
//	duo/       — two-input operators: Union, Intersection, Difference,
//	             SymmetricDifference, DifferenceByKey, IntersectionByKey
//	multi/     — the same operator family generalized to any number of
//	             inputs
//
// Quick example:
//
//	ob, err := duo.NewOpBuilder([]int{1, 2, 4, 6, 7}, []int{2, 3, 4, 5, 6, 7})
//	if err != nil { ... }
//	ob.Union().Slice() // [1 2 3 4 5 6 7]
//
//	go get github.com/katalvlaran/sdset
package sdset
