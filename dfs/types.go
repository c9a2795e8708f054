package dfs

import (
	"context"
	"errors"
)

// Visitation states.
const (
	White = iota // not yet visited
	Gray         // on the current path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex ID is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the hook and mode of one traversal.
// Complexity stays O(V+E) when the hook is O(1).
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked on discovery (pre-order) with the tree depth of
	// id; depth 0 marks a new root. An error aborts.
	OnVisit func(id string, depth int) error

	// FullTraversal restarts from every unvisited vertex in ID order.
	FullTraversal bool
}

// DefaultOptions returns background context, no hook and single-source
// traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal covers every component (forest traversal).
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a traversal.
type Result struct {
	// Order lists vertices in finishing (post-order) sequence.
	Order []string

	// Depth maps each visited vertex to its tree depth.
	Depth map[string]int

	// Parent maps each non-root vertex to its discoverer.
	Parent map[string]string

	// Roots lists the tree roots in the order they were started.
	Roots []string

	state map[string]int
}

// Visited reports whether id was reached.
func (r *Result) Visited(id string) bool { return r.state[id] == Black }
