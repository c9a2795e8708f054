package strategy

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/katalvlaran/sarmine/additivity"
	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/extract"
	"github.com/katalvlaran/sarmine/record"
)

var (
	// ErrConflictingClique marks a clique whose rules cannot be applied
	// together. The clique is discarded.
	ErrConflictingClique = errors.New("strategy: conflicting clique")

	// ErrNilInput is returned when a required Input field is nil.
	ErrNilInput = errors.New("strategy: incomplete input")
)

// Input is everything mined for one wild-type.
type Input struct {
	WildType     record.Record
	Observations *extract.Observations
	Additivity   *additivity.Result
	Graph        *core.Graph

	// Tolerance is the additivity tolerance the graph was built with.
	Tolerance float64

	Logger *slog.Logger
}

func (in Input) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}

	return slog.Default()
}

// Output is the result of one strategy on one wild-type.
type Output struct {
	Candidates []candidate.Candidate

	// Discarded counts cliques or rules dropped for conflicting edits or
	// inconsistent application.
	Discarded int

	// BelowThreshold counts cliques whose prediction missed the threshold.
	BelowThreshold int

	// Truncated is set when an enumeration cap was hit.
	Truncated bool

	// MaxCliqueSize is the largest enumerated clique.
	MaxCliqueSize int

	// TransitiveEdges counts edges added by closure.
	TransitiveEdges int
}

// Strategy generates candidates for one wild-type.
type Strategy interface {
	Name() candidate.Strategy
	Generate(ctx context.Context, in Input) (*Output, error)
}

// PredictClique returns the conservative fitness of applying rules with the
// given amplifications, in order: f·amp₁·Π_{i≥2}((1−tol)·ampᵢ).
func PredictClique(wildFitness float64, amps []float64, tol float64) float64 {
	if len(amps) == 0 {
		return wildFitness
	}
	p := wildFitness * amps[0]
	for _, a := range amps[1:] {
		p *= (1 - tol) * a
	}

	return p
}

// dropSubsets keeps only candidates whose supporting rule set is not a
// proper subset of another candidate's. SupportingRules must be sorted.
func dropSubsets(cs []candidate.Candidate) []candidate.Candidate {
	out := cs[:0:0]
	for i, c := range cs {
		covered := false
		for j, o := range cs {
			if i != j && len(o.SupportingRules) > len(c.SupportingRules) && isSubset(c.SupportingRules, o.SupportingRules) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, c)
		}
	}

	return out
}

// isSubset reports a ⊆ b for sorted string slices.
func isSubset(a, b []string) bool {
	i := 0
	for _, x := range b {
		if i < len(a) && a[i] == x {
			i++
		}
	}

	return i == len(a)
}

// sortCandidates orders cs by key for reproducible output.
func sortCandidates(cs []candidate.Candidate) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Key < cs[j].Key })
}
