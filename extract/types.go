package extract

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sarmine/rule"
)

// Sentinel errors for rule extraction.
var (
	// ErrDegenerateWildType indicates a wild-type whose fitness makes
	// amplification undefined (zero, negative or non-finite).
	ErrDegenerateWildType = errors.New("extract: degenerate wild-type")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("extract: invalid option supplied")
)

// Policy selects the canonical observation when several mutants yield one rule.
type Policy int

const (
	// PolicyFirstSeen keeps the first mutant in dataset order.
	PolicyFirstSeen Policy = iota
	// PolicyMaxAmplification keeps the mutant with the highest amplification.
	PolicyMaxAmplification
	// PolicyMeanAmplification averages amplification over all mutants.
	PolicyMeanAmplification
)

var policyNames = map[Policy]string{
	PolicyFirstSeen:         "first_seen",
	PolicyMaxAmplification:  "max_amplification",
	PolicyMeanAmplification: "mean_amplification",
}

// String returns the configuration name of p.
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a configuration name to a Policy. The empty string maps to
// PolicyFirstSeen.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return PolicyFirstSeen, nil
	}
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown policy %q", ErrOptionViolation, s)
}

// Observation is the canonical evidence for one rule under one wild-type.
type Observation struct {
	// Rule is the observed edit set.
	Rule rule.Rule

	// Amplification is fitness(mutant)/fitness(wild-type) per the Policy.
	Amplification float64

	// WildTypeID and MutantID record where the evidence came from.
	WildTypeID string
	MutantID   string

	// Support counts the mutants that encoded to Rule.
	Support int
}

// Observations maps rule keys to observations for one wild-type.
// It is read-only once Extract returns.
type Observations struct {
	wildTypeID string
	byKey      map[string]*Observation
	keys       []string // sorted
}

// NewObservations builds an Observations set from explicit observations,
// e.g. for tests or replayed runs. Later duplicates of a key are ignored.
func NewObservations(wildTypeID string, obs ...Observation) *Observations {
	o := &Observations{wildTypeID: wildTypeID, byKey: make(map[string]*Observation, len(obs))}
	for i := range obs {
		k := obs[i].Rule.Key()
		if _, dup := o.byKey[k]; dup {
			continue
		}
		cp := obs[i]
		o.byKey[k] = &cp
	}
	o.seal()

	return o
}

func (o *Observations) seal() {
	o.keys = make([]string, 0, len(o.byKey))
	for k := range o.byKey {
		o.keys = append(o.keys, k)
	}
	sort.Strings(o.keys)
}

// WildTypeID returns the wild-type the observations were mined for.
func (o *Observations) WildTypeID() string { return o.wildTypeID }

// Len returns the number of distinct rules.
func (o *Observations) Len() int { return len(o.keys) }

// Has reports whether the rule key was observed.
func (o *Observations) Has(key string) bool {
	_, ok := o.byKey[key]

	return ok
}

// Get returns the observation for key.
func (o *Observations) Get(key string) (Observation, bool) {
	ob, ok := o.byKey[key]
	if !ok {
		return Observation{}, false
	}

	return *ob, true
}

// Amplification returns the canonical amplification for key.
func (o *Observations) Amplification(key string) (float64, bool) {
	ob, ok := o.byKey[key]
	if !ok {
		return 0, false
	}

	return ob.Amplification, true
}

// Keys returns the observed rule keys in ascending order.
func (o *Observations) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)

	return out
}

// All returns the observations ordered by rule key.
func (o *Observations) All() []Observation {
	out := make([]Observation, len(o.keys))
	for i, k := range o.keys {
		out[i] = *o.byKey[k]
	}

	return out
}
