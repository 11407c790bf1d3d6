// Package collector defines the sink abstraction every duo/multi operator
// writes its output through, decoupling the operators from any one output
// container.
//
//	– Collector[T]  — push/extend/reserve interface.
//	– Slice[T]       — growable slice backing, the default.
//	– HashSet[T]     — deduplicating collector backed by a Go map.
//	– TreeSet[T]     — sorted collector, normalized with core.SortDedup.
//	– Counter[T]     — discards values, keeps only a saturating count; useful
//	                   when a caller wants set cardinality and nothing else.
//
// Operators never type-switch on the collector they are given; they only
// ever call Push, ExtendFromSlice, Extend, and Reserve.
package collector
