// Package multi implements the k-way generalizations of the duo operators:
// Union, Intersection, Difference, SymmetricDifference, and DifferenceByKey,
// each driven across any number of sorted-and-deduplicated inputs.
//
// Union and SymmetricDifference drive their loops from core.Minimums — the
// smallest and second-smallest current head across all inputs — rather than
// a priority queue, since the operators' canonical workloads keep the input
// count k small enough that a Θ(k) scan beats heap maintenance.
// Intersection and the Difference operators instead advance each input past
// a bound with core.OffsetGE.
//
//	ob, err := multi.NewOpBuilder(a, b, c)
//	if err != nil { ... }
//	result := ob.Union().Slice()
//
// Difference takes its first input as the "base": Difference emits every
// base element absent from every other input. DifferenceByKey generalizes
// this to heterogeneous inputs joined by a key projection, where the base
// may carry duplicate keys.
package multi
