// Package clique finds groups of mutually compatible rules in a core.Graph.
//
// What
//
//   - Enumerate lists maximal cliques with Bron–Kerbosch and pivoting.
//     MinSize filters small cliques (default 3); MaxSize and MaxCliques
//     bound the work on dense graphs and are reported in the Result.
//   - Expand adds transitive edges r1–r3 wherever r1–r2–r3 is a path and a
//     compatibility predicate accepts (r1, r3), for up to maxHop rounds.
//     Each round is computed on a snapshot, so an edge added in round k is
//     only used as a hop in round k+1.
//
// Determinism
//
//	Vertices are indexed in sorted order, the pivot tie-break is the
//	smallest index, and results are sorted, so two runs on the same graph
//	return identical cliques and identical transitive edges (same Via).
//
// Options (Enumerate)
//
//   - WithContext(ctx)    cancellation, checked on every recursive call.
//   - WithMinSize(n)      smallest reported clique, n ≥ 1.
//   - WithMaxSize(n)      stop growing at n members; 0 = unbounded.
//   - WithMaxCliques(n)   stop after n cliques; 0 = unbounded.
//
// Errors
//
//   - ErrGraphNil, ErrOptionViolation, context errors.
//
// Complexity: Enumerate is O(3^(V/3)) in the worst case; Expand is
// O(maxHop · V · (V + E)).
package clique
