package strategy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sarmine/additivity"
	"github.com/katalvlaran/sarmine/candidate"
)

// Subtraction is the most aggressive strategy: one candidate per deduced
// rule.
type Subtraction struct {
	// NumMutMin is the smallest deduced rule arity used.
	NumMutMin int

	// AmpMin is the smallest deduced amplification used.
	AmpMin float64
}

// Name implements Strategy.
func (s Subtraction) Name() candidate.Strategy { return candidate.StrategySubtraction }

// Generate implements Strategy.
func (s Subtraction) Generate(ctx context.Context, in Input) (*Output, error) {
	if in.Additivity == nil || in.Observations == nil {
		return nil, fmt.Errorf("%w: additivity result and observations", ErrNilInput)
	}
	log := in.logger()
	f := in.WildType.Fitness
	out := &Output{}
	for _, d := range in.Additivity.Deductions() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if d.Rule.Arity() < s.NumMutMin || d.Amplification < s.AmpMin {
			continue
		}
		canon := d.Canonical()
		c, err := candidate.New(candidate.StrategySubtraction, in.WildType, d.Rule, f*d.Amplification, pathRules(d))
		if err != nil {
			out.Discarded++
			log.Debug("deduced rule discarded",
				slog.String("wild_type", in.WildType.ID),
				slog.String("rule", d.Rule.Key()),
				slog.String("error", err.Error()),
			)
			continue
		}
		ampUnion, _ := in.Observations.Amplification(canon.Union.Key())
		ev := &candidate.SubtractionEvidence{
			MinuendFitness:     f * ampUnion,
			SubtrahendDistance: canon.Observed.Arity(),
		}
		for _, p := range d.Paths {
			ev.Paths = append(ev.Paths, candidate.Path{
				Observed:      p.Observed.Key(),
				Union:         p.Union.Key(),
				Amplification: p.Amplification,
			})
		}
		c.Subtraction = ev
		out.Candidates = append(out.Candidates, c)
	}
	sortCandidates(out.Candidates)

	return out, nil
}

// pathRules returns the distinct observed rules over every provenance path
// of d.
func pathRules(d additivity.Deduction) []string {
	seen := make(map[string]bool, 2*len(d.Paths))
	var out []string
	for _, p := range d.Paths {
		for _, k := range []string{p.Observed.Key(), p.Union.Key()} {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}

	return out
}
