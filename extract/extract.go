package extract

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sarmine/record"
	"github.com/katalvlaran/sarmine/rule"
)

// accumulator gathers replicates of one rule before the policy is applied.
type accumulator struct {
	obs Observation
	sum float64
}

// Extract mines the observations of wildType against every other record of ds.
//
// Steps:
//  1. Reject a degenerate wild-type (fitness ≤ 0 or non-finite).
//  2. For each record m ≠ wildType (by ID) in dataset order:
//     rule = Encode(wildType, m); skip empty rules (same sequence) and
//     rules above MaxArity; amp = f(m)/f(w); skip amp < AmpThreshold.
//  3. Merge replicates per Policy and count Support.
//
// Errors: ErrDegenerateWildType, ErrOptionViolation.
func Extract(wildType record.Record, ds *record.Dataset, opts ...Option) (*Observations, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if wildType.Fitness <= 0 || math.IsNaN(wildType.Fitness) || math.IsInf(wildType.Fitness, 0) {
		return nil, fmt.Errorf("%w: %q has fitness %v", ErrDegenerateWildType, wildType.ID, wildType.Fitness)
	}

	acc := make(map[string]*accumulator)
	for i := 0; i < ds.Len(); i++ {
		m := ds.At(i)
		if m.ID == wildType.ID {
			continue
		}
		r := rule.Encode(wildType, m)
		if r.IsEmpty() || (o.MaxArity > 0 && r.Arity() > o.MaxArity) {
			continue
		}
		amp := m.Fitness / wildType.Fitness
		if amp < o.AmpThreshold {
			continue
		}

		a, seen := acc[r.Key()]
		if !seen {
			acc[r.Key()] = &accumulator{
				obs: Observation{
					Rule:          r,
					Amplification: amp,
					WildTypeID:    wildType.ID,
					MutantID:      m.ID,
					Support:       1,
				},
				sum: amp,
			}
			continue
		}
		a.obs.Support++
		a.sum += amp
		if o.Policy == PolicyMaxAmplification && amp > a.obs.Amplification {
			a.obs.Amplification = amp
			a.obs.MutantID = m.ID
		}
	}

	out := &Observations{wildTypeID: wildType.ID, byKey: make(map[string]*Observation, len(acc))}
	for k, a := range acc {
		ob := a.obs
		if o.Policy == PolicyMeanAmplification {
			ob.Amplification = a.sum / float64(ob.Support)
		}
		out.byKey[k] = &ob
	}
	out.seal()

	return out, nil
}
