// Package additivity tests whether rule effects combine multiplicatively and
// deduces the effect of unobserved sub-rules.
//
// For every observed rule R of arity ≥ 2 and every non-trivial bipartition
// (R1, R2) of R:
//
//   - both observed: err = amp(R) / (amp(R1)·amp(R2)) − 1. The pair is an
//     additive-compatible Relation iff |err| ≤ tolerance (inclusive) and
//     amp(R1) > 1 and amp(R2) > 1. Sub-rules that are not beneficial on their
//     own never form a relation, even when the arithmetic factorizes.
//   - exactly one observed (say R1): R2 is a Deduction with
//     amp(R2) = amp(R) / amp(R1) and provenance path (R1, R). When
//     amp(R1) ≤ 0 the quotient is undefined; the path is dropped and
//     counted in Result.Undefined.
//   - neither observed: nothing can be inferred.
//
// Comparisons use relative error because amplification factors span orders
// of magnitude. A slack of ToleranceSlack absorbs floating-point rounding at
// the inclusive boundary.
//
// Deduction multiplicity: every provenance path is retained. The canonical
// amplification of a deduced rule is that of its first path in deterministic
// order (Union key ascending, then Observed key ascending).
//
// Complexity: Σ 2^(k−1)−1 partitions over observed rules of arity k.
package additivity
