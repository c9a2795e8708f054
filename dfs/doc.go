// Package dfs implements depth-first search over a core.Graph and the
// connected-component split of a rule graph built on it.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, with a depth-aware pre-order hook and forest
//     traversal.
//   - Components: groups rules that are linked by additive relations,
//     opening a new group whenever the visit hook sees a root.
//     Cliques never span components, and a size-one component is a rule
//     no strategy can combine.
//
// Determinism:
//
//	Roots are taken in sorted ID order and neighbors are explored in
//	sorted order, so Order, Parent and Roots are reproducible.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context errors and wrapped hook errors
//
// Complexity: O(V+E) time, O(V) memory (recursion depth ≤ V).
package dfs
