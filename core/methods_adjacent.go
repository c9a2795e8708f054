// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Adjacency).
// Determinism:
//   - NeighborIDs() and every Adjacency() list are sorted ascending.

package core

import "sort"

// NeighborIDs returns the sorted IDs adjacent to id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.adjacency[id]), nil
}

// Adjacency returns an independent snapshot vertex → sorted neighbor IDs,
// including isolated vertices with an empty list.
// Complexity: O(V + E log E).
func (g *Graph) Adjacency() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		out[id] = sortedKeys(g.adjacency[id])
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
