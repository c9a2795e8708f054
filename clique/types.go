package clique

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sarmine/core"
)

// DefaultMinSize is the smallest clique Enumerate reports by default.
const DefaultMinSize = 3

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")
)

// Option configures Enumerate.
type Option func(*Options)

// Options holds the enumeration limits.
type Options struct {
	// Ctx is checked on every recursive call.
	Ctx context.Context

	// MinSize is the smallest reported clique.
	MinSize int

	// MaxSize, if > 0, stops growing a clique once it has MaxSize members;
	// such a clique is reported and counted in Result.SizeCapped.
	MaxSize int

	// MaxCliques, if > 0, stops the enumeration after that many cliques.
	MaxCliques int

	err error
}

// DefaultOptions returns background context, MinSize DefaultMinSize and
// no caps.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MinSize: DefaultMinSize}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinSize sets the smallest reported clique (n ≥ 1).
func WithMinSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinSize must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MinSize = n
	}
}

// WithMaxSize caps clique size; 0 disables the cap.
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSize = n
	}
}

// WithMaxCliques caps the number of reported cliques; 0 disables the cap.
func WithMaxCliques(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCliques cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCliques = n
	}
}

// Result is the outcome of Enumerate.
type Result struct {
	// Cliques are ordered by size descending, then by members; members of
	// each clique are sorted ascending.
	Cliques [][]string

	// SizeCapped counts cliques cut at MaxSize that could have grown.
	SizeCapped int

	// CountCapped is set when MaxCliques stopped the enumeration early.
	CountCapped bool
}

// Truncated reports whether any cap changed the result.
func (r *Result) Truncated() bool { return r.SizeCapped > 0 || r.CountCapped }

// ExpandResult is the outcome of Expand.
type ExpandResult struct {
	// Graph is the closed graph; the input graph is not modified.
	Graph *core.Graph

	// Rounds is the number of rounds run, including a final empty one.
	Rounds int

	// Added counts transitive edges per round.
	Added []int
}

// TotalAdded returns the number of transitive edges added over all rounds.
func (r *ExpandResult) TotalAdded() int {
	n := 0
	for _, a := range r.Added {
		n += a
	}

	return n
}
