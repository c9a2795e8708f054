package extract

import (
	"fmt"
	"math"
)

// Option configures Extract via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Extract runs.
type Option func(*Options)

// Options holds extraction parameters.
type Options struct {
	// MaxArity drops rules with more edits; 0 disables the limit.
	MaxArity int

	// AmpThreshold drops rules whose amplification is below it.
	AmpThreshold float64

	// Policy picks the canonical observation among replicates.
	Policy Policy

	err error
}

// DefaultOptions returns unbounded arity, no amplification threshold and
// PolicyFirstSeen.
func DefaultOptions() Options {
	return Options{MaxArity: 0, AmpThreshold: 0, Policy: PolicyFirstSeen}
}

// WithMaxArity limits rule arity. n == 0 disables the limit; n < 0 is invalid.
func WithMaxArity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxArity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxArity = n
	}
}

// WithAmpThreshold sets the minimum amplification. Must be finite and ≥ 0.
func WithAmpThreshold(t float64) Option {
	return func(o *Options) {
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: AmpThreshold must be finite and non-negative (%v)", ErrOptionViolation, t)
			return
		}
		o.AmpThreshold = t
	}
}

// WithPolicy selects the replicate policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if _, ok := policyNames[p]; !ok {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}
