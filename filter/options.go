package filter

import (
	"errors"
	"fmt"
	"math"
)

// DefaultHitRatio is the share of the predicted fitness a measured record
// must reach for a hit.
const DefaultHitRatio = 1.0 / 3.0

// DefaultNeighbors is the number of nearest records attached by default.
const DefaultNeighbors = 3

var (
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("filter: invalid option supplied")

	// ErrNilIndex indicates New was called without a neighbor index.
	ErrNilIndex = errors.New("filter: neighbor index is nil")
)

// Option configures a Filter.
type Option func(*Options)

// Options holds every filter threshold. Zero values disable a bound unless
// stated otherwise.
type Options struct {
	MinPredictedFitness float64

	// MinDistance and MaxDistance bound the distance to the nearest
	// measured record; MaxDistance 0 is unbounded.
	MinDistance int
	MaxDistance int

	// AllowPositions, if non-empty, lists the only positions a candidate
	// may edit. DenyPositions lists positions it must not edit.
	AllowPositions []string
	DenyPositions  []string

	// MinMinuendFitness and MaxSubtrahendDistance apply to subtraction
	// candidates only; MaxSubtrahendDistance 0 is unbounded.
	MinMinuendFitness     float64
	MaxSubtrahendDistance int

	// HitRatio in (0, 1].
	HitRatio float64

	// Neighbors is k for the nearest-record annotation, ≥ 1.
	Neighbors int

	err error
}

// DefaultOptions returns no bounds, DefaultHitRatio and DefaultNeighbors.
func DefaultOptions() Options {
	return Options{HitRatio: DefaultHitRatio, Neighbors: DefaultNeighbors}
}

func (o *Options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithMinPredictedFitness drops candidates predicted below f.
func WithMinPredictedFitness(f float64) Option {
	return func(o *Options) {
		if math.IsNaN(f) {
			o.fail("min predicted fitness is NaN")
			return
		}
		o.MinPredictedFitness = f
	}
}

// WithDistanceRange bounds the nearest-record distance to [min, max];
// max 0 is unbounded.
func WithDistanceRange(min, max int) Option {
	return func(o *Options) {
		if min < 0 || max < 0 || (max > 0 && max < min) {
			o.fail("distance range [%d, %d]", min, max)
			return
		}
		o.MinDistance, o.MaxDistance = min, max
	}
}

// WithAllowPositions restricts the editable positions.
func WithAllowPositions(positions ...string) Option {
	return func(o *Options) { o.AllowPositions = append([]string(nil), positions...) }
}

// WithDenyPositions forbids editing the given positions.
func WithDenyPositions(positions ...string) Option {
	return func(o *Options) { o.DenyPositions = append([]string(nil), positions...) }
}

// WithMinMinuendFitness drops subtraction candidates whose minuend is
// predicted below f.
func WithMinMinuendFitness(f float64) Option {
	return func(o *Options) {
		if math.IsNaN(f) {
			o.fail("min minuend fitness is NaN")
			return
		}
		o.MinMinuendFitness = f
	}
}

// WithMaxSubtrahendDistance drops subtraction candidates whose subtrahend
// has more than d edits; 0 is unbounded.
func WithMaxSubtrahendDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.fail("max subtrahend distance %d", d)
			return
		}
		o.MaxSubtrahendDistance = d
	}
}

// WithHitRatio sets the validation ratio, 0 < r ≤ 1.
func WithHitRatio(r float64) Option {
	return func(o *Options) {
		if !(r > 0 && r <= 1) {
			o.fail("hit ratio %v not in (0, 1]", r)
			return
		}
		o.HitRatio = r
	}
}

// WithNeighbors sets how many nearest records are attached, k ≥ 1.
func WithNeighbors(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.fail("neighbors %d", k)
			return
		}
		o.Neighbors = k
	}
}
