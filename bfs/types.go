package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth; 0 means no limit.
	MaxDepth int

	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns background context, no depth limit and no
// filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal to d hops (d > 0), or removes the limit
// (d == 0). A negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the start.
//   - Parent: predecessor in the BFS tree; the first-discovered one, which
//     is the smallest ID among the previous layer's candidates.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Layer returns the vertices at exactly depth d, sorted ascending.
func (r *Result) Layer(d int) []string {
	var out []string
	for id, dd := range r.Depth {
		if dd == d {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}
