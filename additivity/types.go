package additivity

import (
	"errors"
	"sort"

	"github.com/katalvlaran/sarmine/rule"
)

// ToleranceSlack is added to the tolerance before comparing, so that a ratio
// exactly on the boundary is not rejected by rounding in the last ulp.
const ToleranceSlack = 1e-9

// Sentinel errors.
var (
	// ErrNegativeTolerance indicates tolerance < 0 or NaN.
	ErrNegativeTolerance = errors.New("additivity: tolerance must be a non-negative number")

	// ErrNilObservations indicates a nil observation set.
	ErrNilObservations = errors.New("additivity: observations are nil")
)

// Relation is a validated additive-compatible pair: Left and Right are both
// observed, disjoint, and their union Union factorizes within tolerance.
// Left.Key() < Right.Key().
type Relation struct {
	Left          rule.Rule
	Right         rule.Rule
	Union         rule.Rule
	RelativeError float64
}

// Path is one provenance of a deduced rule: Union was observed, Observed is
// the observed half, and Amplification = amp(Union)/amp(Observed).
type Path struct {
	Observed      rule.Rule
	Union         rule.Rule
	Amplification float64
}

// Deduction is a rule whose effect was inferred by division rather than
// measured. It always carries at least one Path.
type Deduction struct {
	Rule          rule.Rule
	Amplification float64
	Paths         []Path
}

// Canonical returns the path the canonical amplification was taken from.
func (d Deduction) Canonical() Path { return d.Paths[0] }

// Result collects the additivity analysis of one wild-type.
type Result struct {
	// Relations are sorted by (Left, Right) key.
	Relations []Relation

	// Evaluated counts partitions whose halves were both observed.
	Evaluated int

	// Rejected counts evaluated partitions that failed the tolerance or
	// the beneficial-halves requirement.
	Rejected int

	// Undefined counts single-observed partitions whose observed half has a
	// non-positive amplification, so no finite deduction exists.
	Undefined int

	deductions map[string]*Deduction
	dedKeys    []string
}

// Deductions returns deduced rules ordered by rule key.
func (r *Result) Deductions() []Deduction {
	out := make([]Deduction, len(r.dedKeys))
	for i, k := range r.dedKeys {
		d := *r.deductions[k]
		d.Paths = append([]Path(nil), d.Paths...)
		out[i] = d
	}

	return out
}

// Deduction returns the deduced rule with the given key.
func (r *Result) Deduction(key string) (Deduction, bool) {
	d, ok := r.deductions[key]
	if !ok {
		return Deduction{}, false
	}
	cp := *d
	cp.Paths = append([]Path(nil), d.Paths...)

	return cp, true
}

// DeductionCount returns the number of distinct deduced rules.
func (r *Result) DeductionCount() int { return len(r.dedKeys) }

func (r *Result) seal() {
	r.dedKeys = make([]string, 0, len(r.deductions))
	for k, d := range r.deductions {
		r.dedKeys = append(r.dedKeys, k)
		sort.Slice(d.Paths, func(i, j int) bool {
			if a, b := d.Paths[i].Union.Key(), d.Paths[j].Union.Key(); a != b {
				return a < b
			}
			return d.Paths[i].Observed.Key() < d.Paths[j].Observed.Key()
		})
		d.Amplification = d.Paths[0].Amplification
	}
	sort.Strings(r.dedKeys)
	sort.Slice(r.Relations, func(i, j int) bool {
		if a, b := r.Relations[i].Left.Key(), r.Relations[j].Left.Key(); a != b {
			return a < b
		}
		return r.Relations[i].Right.Key() < r.Relations[j].Right.Key()
	})
}
