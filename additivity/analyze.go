package additivity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sarmine/extract"
	"github.com/katalvlaran/sarmine/rule"
)

// Analyze runs the additivity test and sub-rule deduction over obs.
//
// Errors: ErrNilObservations, ErrNegativeTolerance, rule.ErrTooManyPartitions.
func Analyze(obs *extract.Observations, tolerance float64) (*Result, error) {
	if obs == nil {
		return nil, ErrNilObservations
	}
	if tolerance < 0 || math.IsNaN(tolerance) {
		return nil, fmt.Errorf("%w: %v", ErrNegativeTolerance, tolerance)
	}

	res := &Result{deductions: make(map[string]*Deduction)}
	for _, whole := range obs.All() {
		if whole.Rule.Arity() < 2 {
			continue
		}
		err := rule.Partitions(whole.Rule, func(left, right rule.Rule) bool {
			ampL, okL := obs.Amplification(left.Key())
			ampR, okR := obs.Amplification(right.Key())
			switch {
			case okL && okR:
				res.Evaluated++
				if rel, ok := Factorize(left, ampL, right, ampR, whole.Rule, whole.Amplification, tolerance); ok {
					res.Relations = append(res.Relations, rel)
				} else {
					res.Rejected++
				}
			case okL:
				res.deduce(right, left, whole.Rule, whole.Amplification, ampL)
			case okR:
				res.deduce(left, right, whole.Rule, whole.Amplification, ampR)
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("additivity: rule %s: %w", whole.Rule, err)
		}
	}
	res.seal()

	return res, nil
}

// RelativeError returns amp(union)/(amp(left)·amp(right)) − 1.
func RelativeError(ampLeft, ampRight, ampUnion float64) float64 {
	return ampUnion/(ampLeft*ampRight) - 1
}

// Factorize applies the relation test to one partition. The returned
// Relation has its halves ordered by key.
func Factorize(left rule.Rule, ampLeft float64, right rule.Rule, ampRight float64, union rule.Rule, ampUnion, tolerance float64) (Relation, bool) {
	if ampLeft <= 1 || ampRight <= 1 {
		return Relation{}, false
	}
	e := RelativeError(ampLeft, ampRight, ampUnion)
	if math.IsNaN(e) || math.Abs(e) > tolerance+ToleranceSlack {
		return Relation{}, false
	}
	if right.Key() < left.Key() {
		left, right = right, left
	}

	return Relation{Left: left, Right: right, Union: union, RelativeError: e}, true
}

func (r *Result) deduce(target, observed, union rule.Rule, ampUnion, ampObserved float64) {
	amp := ampUnion / ampObserved
	if ampObserved <= 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
		r.Undefined++
		return
	}
	d, ok := r.deductions[target.Key()]
	if !ok {
		d = &Deduction{Rule: target}
		r.deductions[target.Key()] = d
	}
	d.Paths = append(d.Paths, Path{Observed: observed, Union: union, Amplification: amp})
}
