// File: types.go
// Role: Vertex, Edge, Graph, EdgeOption, sentinel errors and NewGraph.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - edge from a vertex to itself.
//	ErrNilObservations - Build called without observations.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/sarmine/rule"
)

// Sentinel errors for rule graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilObservations indicates Build was called with nil observations.
	ErrNilObservations = errors.New("core: observations are nil")
)

// EdgeKind tells how an edge entered the graph.
type EdgeKind int

const (
	// KindObserved edges come from a validated additive relation.
	KindObserved EdgeKind = iota
	// KindTransitive edges were added by transitive closure.
	KindTransitive
)

// String returns "observed" or "transitive".
func (k EdgeKind) String() string {
	switch k {
	case KindObserved:
		return "observed"
	case KindTransitive:
		return "transitive"
	default:
		return "unknown"
	}
}

// Vertex is one observed rule. ID equals Rule.Key().
type Vertex struct {
	ID            string
	Rule          rule.Rule
	Amplification float64
}

// Edge connects two compatible rules. From < To lexicographically.
type Edge struct {
	// ID is "e<seq>" in insertion order.
	ID string

	From string
	To   string

	Kind EdgeKind

	// RelativeError and Union are set for observed edges.
	RelativeError float64
	Union         rule.Rule

	// Via is the intermediate vertex of a transitive edge.
	Via string
}

// EdgeOption sets attributes of an edge when it is added.
type EdgeOption func(*Edge)

// WithRelation attaches the additivity evidence of an observed edge.
func WithRelation(relErr float64, union rule.Rule) EdgeOption {
	return func(e *Edge) {
		e.Kind = KindObserved
		e.RelativeError = relErr
		e.Union = union
	}
}

// WithVia marks the edge as transitive through the given vertex.
func WithVia(via string) EdgeOption {
	return func(e *Edge) {
		e.Kind = KindTransitive
		e.Via = via
	}
}

// Graph is the rule graph of one wild-type.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, adjacency and nextEdgeID

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[u][v] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph returns an empty rule graph.
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}

// Stats summarizes the shape of a Graph.
type Stats struct {
	Vertices        int
	Edges           int
	ObservedEdges   int
	TransitiveEdges int
	MaxDegree       int
	Isolated        int
}
