package strategy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/clique"
	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/rule"
)

// Clique is the conservative strategy.
type Clique struct {
	// FitnessThreshold discards predictions below it.
	FitnessThreshold float64

	// MinSize, MaxSize and MaxCliques bound the enumeration (see clique).
	MinSize    int
	MaxSize    int
	MaxCliques int
}

// Name implements Strategy.
func (s Clique) Name() candidate.Strategy { return candidate.StrategyClique }

// Generate implements Strategy.
func (s Clique) Generate(ctx context.Context, in Input) (*Output, error) {
	if in.Graph == nil {
		return nil, fmt.Errorf("%w: graph", ErrNilInput)
	}
	out := &Output{}
	if err := s.fromGraph(ctx, in, in.Graph, 1, candidate.StrategyClique, false, out); err != nil {
		return nil, err
	}

	return out, nil
}

// fromGraph enumerates cliques of g and appends their candidates to out.
// With requireInferred set, cliques without a transitive edge are skipped.
func (s Clique) fromGraph(ctx context.Context, in Input, g *core.Graph, decay float64, name candidate.Strategy, requireInferred bool, out *Output) error {
	log := in.logger()
	minSize := s.MinSize
	if minSize == 0 {
		minSize = clique.DefaultMinSize
	}
	res, err := clique.Enumerate(g,
		clique.WithContext(ctx),
		clique.WithMinSize(minSize),
		clique.WithMaxSize(s.MaxSize),
		clique.WithMaxCliques(s.MaxCliques),
	)
	if err != nil {
		return fmt.Errorf("strategy %s: %w", name, err)
	}
	if res.Truncated() {
		out.Truncated = true
		log.Warn("clique enumeration truncated",
			slog.String("wild_type", in.WildType.ID),
			slog.String("strategy", string(name)),
			slog.Int("size_capped", res.SizeCapped),
			slog.Bool("count_capped", res.CountCapped),
			slog.Int("cliques", len(res.Cliques)),
		)
	}

	var cs []candidate.Candidate
	for _, members := range res.Cliques {
		if len(members) > out.MaxCliqueSize {
			out.MaxCliqueSize = len(members)
		}
		inferred := 0
		if name == candidate.StrategyTransitive {
			inferred = countTransitive(g, members)
			if inferred == 0 && requireInferred {
				continue
			}
		}
		c, err := s.predict(in, g, members, decay, name)
		switch {
		case errors.Is(err, errBelowThreshold):
			out.BelowThreshold++
			continue
		case err != nil:
			out.Discarded++
			log.Debug("clique discarded",
				slog.String("wild_type", in.WildType.ID),
				slog.String("strategy", string(name)),
				slog.Any("rules", members),
				slog.String("error", err.Error()),
			)
			continue
		}
		c.InferredEdges = inferred
		cs = append(cs, c)
	}
	cs = dropSubsets(cs)
	sortCandidates(cs)
	out.Candidates = append(out.Candidates, cs...)

	return nil
}

var errBelowThreshold = errors.New("strategy: prediction below threshold")

// predict applies the clique's rules in ascending key order.
func (s Clique) predict(in Input, g *core.Graph, members []string, decay float64, name candidate.Strategy) (candidate.Candidate, error) {
	rules := make([]rule.Rule, len(members))
	amps := make([]float64, len(members))
	for i, id := range members {
		v, ok := g.Vertex(id)
		if !ok {
			return candidate.Candidate{}, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
		}
		rules[i], amps[i] = v.Rule, v.Amplification
	}
	u, err := rule.Union(rules...)
	if err != nil {
		return candidate.Candidate{}, fmt.Errorf("%w: %v", ErrConflictingClique, err)
	}
	pred := PredictClique(in.WildType.Fitness, amps, in.Tolerance) * decay
	if pred < s.FitnessThreshold {
		return candidate.Candidate{}, errBelowThreshold
	}

	return candidate.New(name, in.WildType, u, pred, members)
}

// countTransitive counts transitive edges among members.
func countTransitive(g *core.Graph, members []string) int {
	n := 0
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			if e, err := g.Edge(members[i], members[j]); err == nil && e.Kind == core.KindTransitive {
				n++
			}
		}
	}

	return n
}
