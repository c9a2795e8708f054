// File: methods_edges.go
// Role: Edge lifecycle & queries.
// Determinism:
//   - Edge IDs are "e1", "e2", ... in insertion order.
//   - Edges() returns edges sorted by (From, To).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, reads under its read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

const edgeIDPrefix = 'e'

// AddEdge connects from and to. Endpoints are stored ordered, so
// AddEdge(a, b) and AddEdge(b, a) address the same edge. When the edge
// already exists it is left unchanged and its ID is returned with a nil error.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if to < from {
		from, to = to, from
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, id := range [2]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			return "", fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if eid, ok := g.adjacency[from][to]; ok {
		return eid, nil
	}

	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))
	e := &Edge{ID: eid, From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[eid] = e
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from and to are adjacent, in either order.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns a copy of the edge between from and to.
//
// Errors: ErrEdgeNotFound.
func (g *Graph) Edge(from, to string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q–%q", ErrEdgeNotFound, from, to)
	}

	return *g.edges[eid], nil
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
