package strategy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/clique"
	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/rule"
)

// Transitive is the aggressive strategy: cliques of the transitively
// closed graph. Cliques without any transitive edge are left to Clique
// unless IncludeObserved is set.
type Transitive struct {
	Clique

	// MaxHop is the number of closure rounds.
	MaxHop int

	// DecayFactor in (0, 1] multiplies every prediction.
	DecayFactor float64

	// IncludeObserved also emits cliques made only of observed relations.
	// Set it when the Clique strategy does not run.
	IncludeObserved bool
}

// Name implements Strategy.
func (s Transitive) Name() candidate.Strategy { return candidate.StrategyTransitive }

// Generate implements Strategy.
func (s Transitive) Generate(ctx context.Context, in Input) (*Output, error) {
	if in.Graph == nil {
		return nil, fmt.Errorf("%w: graph", ErrNilInput)
	}
	closed, err := clique.Expand(ctx, in.Graph, s.MaxHop, func(a, b core.Vertex) bool {
		return !rule.Conflicts(a.Rule, b.Rule)
	})
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", candidate.StrategyTransitive, err)
	}
	in.logger().Debug("transitive closure",
		slog.String("wild_type", in.WildType.ID),
		slog.Int("rounds", closed.Rounds),
		slog.Int("added", closed.TotalAdded()),
	)

	out := &Output{TransitiveEdges: closed.TotalAdded()}
	if out.TransitiveEdges == 0 && !s.IncludeObserved {
		return out, nil
	}
	decay := s.DecayFactor
	if decay == 0 {
		decay = 1
	}
	if err = s.fromGraph(ctx, in, closed.Graph, decay, candidate.StrategyTransitive, !s.IncludeObserved, out); err != nil {
		return nil, err
	}

	return out, nil
}
