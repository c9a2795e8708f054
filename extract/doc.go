// Package extract implements the rule extractor: for one wild-type record it
// scans the dataset, encodes every wild-type/mutant pair as a rule, and keeps
// the rules that are narrow enough (max arity) and beneficial enough
// (amplification threshold).
//
// Amplification of a rule is fitness(mutant) / fitness(wild-type). When
// several mutants encode to the same rule (replicate measurements), one
// canonical observation is kept according to the configured Policy:
//
//   - PolicyFirstSeen (default): first mutant in dataset order wins.
//   - PolicyMaxAmplification: highest amplification wins; ties keep the first.
//   - PolicyMeanAmplification: amplification is the arithmetic mean over all
//     replicates; provenance stays with the first mutant.
//
// Every observation counts its Support (number of contributing mutants).
//
// Errors:
//
//	ErrDegenerateWildType - wild-type fitness is zero, negative or non-finite,
//	                        so amplification is undefined.
//	ErrOptionViolation    - an option received a meaningless value.
//
// Complexity: O(N·L log L) per wild-type (N records, L positions).
package extract
