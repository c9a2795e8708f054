// File: methods_clone.go
// Role: Cloning and summary statistics.
// Determinism:
//   - Clone carries nextEdgeID so IDs added to the clone never collide.

package core

// Clone returns a deep copy of the graph. Rules are immutable values and
// are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph()
	c.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		cp := *v
		c.vertices[id] = &cp
		nb := make(map[string]string, len(g.adjacency[id]))
		for k, eid := range g.adjacency[id] {
			nb[k] = eid
		}
		c.adjacency[id] = nb
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}

	return c
}

// Stats returns a snapshot of vertex/edge counts and degree extremes.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := Stats{Vertices: len(g.vertices), Edges: len(g.edges)}
	for _, e := range g.edges {
		if e.Kind == KindTransitive {
			s.TransitiveEdges++
		} else {
			s.ObservedEdges++
		}
	}
	for id := range g.vertices {
		d := len(g.adjacency[id])
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}
