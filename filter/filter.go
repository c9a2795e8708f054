// Package filter annotates candidates with their nearest measured records,
// validates them against exact matches, and rejects those outside the
// configured bounds.
package filter

import (
	"fmt"

	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/neighbor"
)

// Reason explains a rejection.
type Reason string

// Rejection reasons.
const (
	ReasonNone               Reason = ""
	ReasonLowFitness         Reason = "low_predicted_fitness"
	ReasonTooClose           Reason = "too_close"
	ReasonTooFar             Reason = "too_far"
	ReasonPositionNotAllowed Reason = "position_not_allowed"
	ReasonPositionDenied     Reason = "position_denied"
	ReasonLowMinuend         Reason = "low_minuend_fitness"
	ReasonFarSubtrahend      Reason = "far_subtrahend"
)

// Reasons lists every rejection reason, for metrics and reports.
var Reasons = []Reason{
	ReasonLowFitness, ReasonTooClose, ReasonTooFar, ReasonPositionNotAllowed,
	ReasonPositionDenied, ReasonLowMinuend, ReasonFarSubtrahend,
}

// Filter is safe for concurrent use.
type Filter struct {
	ix    *neighbor.Index
	opts  Options
	allow map[string]bool
	deny  map[string]bool
}

// New returns a Filter over ix.
//
// Errors: ErrNilIndex, ErrOptionViolation.
func New(ix *neighbor.Index, opts ...Option) (*Filter, error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	f := &Filter{ix: ix, opts: o}
	if len(o.AllowPositions) > 0 {
		f.allow = toSet(o.AllowPositions)
	}
	f.deny = toSet(o.DenyPositions)

	return f, nil
}

func toSet(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}

	return m
}

// Apply annotates c with its nearest records and, when a measured record
// has the same positions, a validation verdict. It returns the annotated
// candidate and ReasonNone if c passes, or the first failed Reason.
func (f *Filter) Apply(c candidate.Candidate) (candidate.Candidate, Reason, error) {
	rec, err := c.Record()
	if err != nil {
		return c, ReasonNone, fmt.Errorf("filter: candidate %s: %w", c.Key, err)
	}
	ns, err := f.ix.Nearest(rec, f.opts.Neighbors)
	if err != nil {
		return c, ReasonNone, fmt.Errorf("filter: candidate %s: %w", c.Key, err)
	}
	c = c.WithNeighbors(ns)
	nearest := -1
	if len(ns) > 0 {
		nearest = ns[0].Distance
	}
	if nearest == 0 {
		if exact := f.ix.Exact(rec); len(exact) > 0 {
			m := exact[0]
			c = c.WithValidation(candidate.Validation{
				RecordID:    m.ID,
				TrueFitness: m.Fitness,
				Hit:         m.Fitness >= c.PredictedFitness*f.opts.HitRatio,
			})
		}
	}

	return c, f.check(c, nearest), nil
}

func (f *Filter) check(c candidate.Candidate, nearest int) Reason {
	o := f.opts
	if c.PredictedFitness < o.MinPredictedFitness {
		return ReasonLowFitness
	}
	if nearest >= 0 {
		if nearest < o.MinDistance {
			return ReasonTooClose
		}
		if o.MaxDistance > 0 && nearest > o.MaxDistance {
			return ReasonTooFar
		}
	}
	for _, p := range c.EditedPositions() {
		if f.deny[p] {
			return ReasonPositionDenied
		}
		if f.allow != nil && !f.allow[p] {
			return ReasonPositionNotAllowed
		}
	}
	if ev := c.Subtraction; ev != nil {
		if ev.MinuendFitness < o.MinMinuendFitness {
			return ReasonLowMinuend
		}
		if o.MaxSubtrahendDistance > 0 && ev.SubtrahendDistance > o.MaxSubtrahendDistance {
			return ReasonFarSubtrahend
		}
	}

	return ReasonNone
}
