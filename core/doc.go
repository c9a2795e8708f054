// Package core provides the rule graph G = (V, E) mined for one wild-type.
//
// Vertices are observed rules keyed by their canonical rule key; an edge
// {r1, r2} says the two rules were observed together as halves of a larger
// observed rule and their effects multiplied within tolerance. Transitive
// closure may later add edges whose evidence is a shared neighbor (Via).
//
// The graph is undirected and simple:
//
//   - Self-loops are rejected with ErrLoopNotAllowed (Build ignores them).
//   - A second AddEdge on the same pair is a no-op returning the first ID.
//   - Edge endpoints are stored ordered, From < To.
//
// Deterministic iteration: Vertices(), NeighborIDs(), Adjacency() lists and
// Edges() are always sorted, so every algorithm built on top (clique
// enumeration, BFS, closure) is reproducible.
//
// Core Methods:
//
//	AddVertex(v Vertex) error                         // O(1)
//	HasVertex(id string) bool                         // O(1)
//	Vertex(id string) (Vertex, bool)                  // O(1)
//	AddEdge(from, to string, opts ...EdgeOption) (string, error) // O(1)
//	HasEdge(from, to string) bool                     // O(1)
//	Edge(from, to string) (Edge, error)               // O(1)
//	NeighborIDs(id string) ([]string, error)          // O(d·log d)
//	Adjacency() map[string][]string                   // O(V + E·log E)
//	Vertices() []string / Edges() []Edge              // sorted snapshots
//	Degree(id) / VertexCount() / EdgeCount() / Stats()
//	Clone() *Graph                                    // O(V + E)
//
//	Build(obs, relations) (*Graph, error)             // graph of one wild-type
//
// Concurrency: all methods are safe for concurrent use. The engine builds one
// graph per wild-type and never shares it across workers, but closure takes
// Clone() snapshots so each round reads a stable graph while writing another.
package core
