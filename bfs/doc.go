// Package bfs provides hop-limited breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Result carries the visit Order, Depth per vertex, and the BFS-tree
//     Parent; Layer(d) lists the vertices exactly d hops away.
//   - WithMaxDepth bounds the search; the transitive closure runs BFS with
//     depth 2 to find every r3 reachable as r1–r2–r3.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs, so the visit order and the chosen
//	parents are reproducible: a vertex's parent is the smallest-ordered
//	vertex of the previous layer that reaches it.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeue.
//   - WithMaxDepth(d):        stop expanding at depth d (>0), 0 = unlimited.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, nbr) == false;
//     the closure uses it to never reach rules that conflict with the start.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors.
//   - The context error.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
