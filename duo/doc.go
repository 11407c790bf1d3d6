// Package duo implements the two-input sorted-set operators: Union,
// Intersection, Difference, SymmetricDifference, and their by-key
// generalizations IntersectionByKey and DifferenceByKey.
//
// Every operator is obtained from an OpBuilder (or OpBuilderByKey for the
// key-projected variants), which validates its two inputs once up front so
// individual operators never re-check the sorted-and-deduplicated
// invariant:
//
//	ob, err := duo.NewOpBuilder(a, b)
//	if err != nil { ... }
//	result := ob.Union().Slice()
//
// Difference, Intersection, and the by-key operators accept WithStrategy to
// choose which core.Strategy locates the next matching run, since each of
// them searches one input for the first element reachable at or past a
// bound taken from the other; Union and SymmetricDifference drive a plain
// linear merge instead, since neither input is ever skipped past more than
// one run per step.
//
// DifferenceByKey and IntersectionByKey additionally allow the "base" side
// (a) to carry duplicate keys — a one-to-many relation — while the "other"
// side (b) must not; this mirrors a one-to-many join's left side.
package duo
