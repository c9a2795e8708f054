// Package strategy turns the rule graph of one wild-type into candidates.
//
// Three generators share the Strategy interface, from most conservative to
// most aggressive:
//
//   - Clique: every maximal clique of mutually compatible rules is applied
//     to the wild-type; the prediction discounts each rule after the first
//     by (1 − tolerance).
//   - Transitive: the graph is first closed transitively (clique.Expand),
//     rules joined only through a shared neighbor become adjacent, and the
//     new cliques are predicted as above times a decay factor. With
//     IncludeObserved it also keeps cliques that gained no transitive edge.
//   - Subtraction: every deduced rule (amp(R)/amp(R1) for an observed R and
//     observed half R1) is applied alone; its evidence lists every path and
//     its supporting rules are those of all paths.
//
// A strategy never fails a wild-type because of one bad clique or rule:
// conflicting edits and inconsistent applications are logged at Debug,
// counted in Output.Discarded, and skipped.
//
// Errors
//
//   - ErrConflictingClique  a clique whose rules edit one position differently.
//   - ErrNilInput           graph, observations or additivity result missing.
//   - context errors from enumeration and closure.
package strategy
