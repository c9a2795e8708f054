package strategy_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sarmine/additivity"
	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/extract"
	"github.com/katalvlaran/sarmine/record"
	"github.com/katalvlaran/sarmine/rule"
	"github.com/katalvlaran/sarmine/strategy"
)

var (
	wt    = record.MustNew("wt", map[string]string{"1": "A", "2": "K", "3": "L"}, 10)
	ruleA = rule.MustNew(rule.Edit{Position: "1", From: "A", To: "G"})
	ruleB = rule.MustNew(rule.Edit{Position: "2", From: "K", To: "R"})
	ruleC = rule.MustNew(rule.Edit{Position: "3", From: "L", To: "W"})
	quiet = slog.New(slog.NewTextHandler(io.Discard, nil))
)

type amp struct {
	r rule.Rule
	a float64
}

func union(t *testing.T, rs ...rule.Rule) rule.Rule {
	t.Helper()
	u, err := rule.Union(rs...)
	require.NoError(t, err)

	return u
}

// mine runs extraction output through additivity and graph building.
func mine(t *testing.T, tol float64, amps ...amp) strategy.Input {
	t.Helper()
	obs := make([]extract.Observation, len(amps))
	for i, x := range amps {
		obs[i] = extract.Observation{Rule: x.r, Amplification: x.a, WildTypeID: wt.ID}
	}
	o := extract.NewObservations(wt.ID, obs...)
	res, err := additivity.Analyze(o, tol)
	require.NoError(t, err)
	g, err := core.Build(o, res.Relations)
	require.NoError(t, err)

	return strategy.Input{WildType: wt, Observations: o, Additivity: res, Graph: g, Tolerance: tol, Logger: quiet}
}

// manual builds an Input around a hand-made graph.
func manual(t *testing.T, vs []core.Vertex, pairs ...[2]int) strategy.Input {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vs {
		require.NoError(t, g.AddVertex(v))
	}
	for _, p := range pairs {
		_, err := g.AddEdge(vs[p[0]].ID, vs[p[1]].ID)
		require.NoError(t, err)
	}

	return strategy.Input{WildType: wt, Graph: g, Tolerance: 0.05, Logger: quiet}
}

func vtx(r rule.Rule, a float64) core.Vertex {
	return core.Vertex{ID: r.Key(), Rule: r, Amplification: a}
}

func TestPredictClique(t *testing.T) {
	assert.InDelta(t, 28.5, strategy.PredictClique(10, []float64{2.0, 1.5}, 0.05), 1e-12)
	assert.Equal(t, 10.0, strategy.PredictClique(10, nil, 0.05))
	assert.InDelta(t, 30.0, strategy.PredictClique(10, []float64{2.0, 1.5}, 0), 1e-12)
}

func TestClique_PairScenario(t *testing.T) {
	in := mine(t, 0.05, amp{ruleA, 2.0}, amp{ruleB, 1.5}, amp{union(t, ruleA, ruleB), 3.15})

	out, err := strategy.Clique{MinSize: 2}.Generate(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	assert.Equal(t, "1=G,2=R,3=L", c.Key)
	assert.InDelta(t, 28.5, c.PredictedFitness, 1e-9)
	assert.Equal(t, []string{ruleA.Key(), ruleB.Key()}, c.SupportingRules)
	assert.Equal(t, candidate.StrategyClique, c.Strategy)
	assert.Equal(t, 2, out.MaxCliqueSize)

	// Default MinSize 3 finds nothing in a single edge.
	out, err = strategy.Clique{}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.Candidates)
}

func TestClique_Triangle(t *testing.T) {
	in := mine(t, 0.05,
		amp{ruleA, 2.0}, amp{ruleB, 1.5}, amp{ruleC, 1.2},
		amp{union(t, ruleA, ruleB), 3.0},
		amp{union(t, ruleA, ruleC), 2.4},
		amp{union(t, ruleB, ruleC), 1.8},
	)
	require.Equal(t, 3, in.Graph.EdgeCount())

	out, err := strategy.Clique{}.Generate(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out.Candidates, 1)
	assert.InDelta(t, 10*2.0*(0.95*1.5)*(0.95*1.2), out.Candidates[0].PredictedFitness, 1e-9)
	assert.Equal(t, "1=G,2=R,3=W", out.Candidates[0].Key)

	out, err = strategy.Clique{FitnessThreshold: 100}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.Candidates)
	assert.Equal(t, 1, out.BelowThreshold)
}

func TestClique_ConflictingCliqueIsDiscarded(t *testing.T) {
	ruleA2 := rule.MustNew(rule.Edit{Position: "1", From: "A", To: "W"})
	in := manual(t, []core.Vertex{vtx(ruleA, 2), vtx(ruleA2, 2), vtx(ruleB, 2)},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})

	out, err := strategy.Clique{}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.Candidates)
	assert.Equal(t, 1, out.Discarded)
}

func TestClique_TruncationReported(t *testing.T) {
	ruleD := rule.MustNew(rule.Edit{Position: "4", From: "", To: "Y"})
	in := manual(t, []core.Vertex{vtx(ruleA, 2), vtx(ruleB, 2), vtx(ruleC, 2), vtx(ruleD, 2)},
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})

	out, err := strategy.Clique{MaxSize: 3}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.Truncated)
	require.Len(t, out.Candidates, 1)
	assert.Len(t, out.Candidates[0].SupportingRules, 3)
}

func TestTransitive(t *testing.T) {
	// A–B and B–C only: closure joins A–C via B.
	in := manual(t, []core.Vertex{vtx(ruleA, 2.0), vtx(ruleB, 1.5), vtx(ruleC, 1.2)},
		[2]int{0, 1}, [2]int{1, 2})

	s := strategy.Transitive{MaxHop: 1, DecayFactor: 0.5}
	out, err := s.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, out.TransitiveEdges)
	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	assert.Equal(t, candidate.StrategyTransitive, c.Strategy)
	assert.Equal(t, 1, c.InferredEdges)
	assert.InDelta(t, 0.5*10*2.0*(0.95*1.5)*(0.95*1.2), c.PredictedFitness, 1e-9)
	assert.False(t, in.Graph.HasEdge(ruleA.Key(), ruleC.Key()), "input graph is not modified")

	// A rule conflicting with A is never joined to it.
	ruleA2 := rule.MustNew(rule.Edit{Position: "1", From: "A", To: "W"})
	in = manual(t, []core.Vertex{vtx(ruleA, 2.0), vtx(ruleB, 1.5), vtx(ruleA2, 1.2)},
		[2]int{0, 1}, [2]int{1, 2})
	out, err = s.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, out.TransitiveEdges)
	assert.Empty(t, out.Candidates)
}

func TestTransitive_SkipsCliquesWithoutInferredEdges(t *testing.T) {
	in := manual(t, []core.Vertex{vtx(ruleA, 2.0), vtx(ruleB, 1.5), vtx(ruleC, 1.2)},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})

	out, err := strategy.Transitive{MaxHop: 3, DecayFactor: 0.9}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, out.TransitiveEdges)
	assert.Empty(t, out.Candidates)
}

func TestTransitive_IncludeObserved(t *testing.T) {
	in := manual(t, []core.Vertex{vtx(ruleA, 2.0), vtx(ruleB, 1.5), vtx(ruleC, 1.2)},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})

	out, err := strategy.Transitive{MaxHop: 3, DecayFactor: 0.9, IncludeObserved: true}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, out.TransitiveEdges)
	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	assert.Equal(t, candidate.StrategyTransitive, c.Strategy)
	assert.Zero(t, c.InferredEdges)
	assert.Len(t, c.SupportingRules, 3)
	assert.InDelta(t, 0.9*10*2.0*(0.95*1.5)*(0.95*1.2), c.PredictedFitness, 1e-9)
}

func TestSubtraction(t *testing.T) {
	ab := union(t, ruleA, ruleB)
	in := mine(t, 0.05, amp{ruleA, 2.0}, amp{ab, 3.15})

	out, err := strategy.Subtraction{NumMutMin: 1, AmpMin: 1.0}.Generate(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	assert.Equal(t, "1=A,2=R,3=L", c.Key)
	assert.InDelta(t, 10*3.15/2.0, c.PredictedFitness, 1e-12)
	assert.Equal(t, []string{ruleA.Key(), ab.Key()}, c.SupportingRules)
	require.NotNil(t, c.Subtraction)
	assert.InDelta(t, 31.5, c.Subtraction.MinuendFitness, 1e-12)
	assert.Equal(t, 1, c.Subtraction.SubtrahendDistance)
	assert.Equal(t, []candidate.Path{{Observed: ruleA.Key(), Union: ab.Key(), Amplification: 3.15 / 2.0}}, c.Subtraction.Paths)

	out, err = strategy.Subtraction{NumMutMin: 1, AmpMin: 2.0}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.Candidates)

	out, err = strategy.Subtraction{NumMutMin: 2}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.Candidates)
}

func TestSubtraction_SupportCoversEveryPath(t *testing.T) {
	ac, bc := union(t, ruleA, ruleC), union(t, ruleB, ruleC)
	in := mine(t, 0.05, amp{ruleA, 2.0}, amp{ruleB, 1.5}, amp{ac, 5.0}, amp{bc, 4.2})

	out, err := strategy.Subtraction{NumMutMin: 1, AmpMin: 1.0}.Generate(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	require.Len(t, c.Subtraction.Paths, 2)
	assert.InDelta(t, 10*5.0/2.0, c.PredictedFitness, 1e-12)
	assert.Equal(t, []string{ruleA.Key(), ac.Key(), ruleB.Key(), bc.Key()}, c.SupportingRules)
}

func TestSubtraction_InconsistentApplication(t *testing.T) {
	// The deduced rule 2:Q>R does not match the wild-type's K at 2.
	bad := rule.MustNew(rule.Edit{Position: "2", From: "Q", To: "R"})
	in := mine(t, 0.05, amp{ruleA, 2.0}, amp{union(t, ruleA, bad), 3.0})

	out, err := strategy.Subtraction{NumMutMin: 1}.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, out.Candidates)
	assert.Equal(t, 1, out.Discarded)
}

func TestStrategies_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := strategy.Clique{}.Generate(ctx, strategy.Input{})
	assert.ErrorIs(t, err, strategy.ErrNilInput)
	_, err = strategy.Transitive{}.Generate(ctx, strategy.Input{})
	assert.ErrorIs(t, err, strategy.ErrNilInput)
	_, err = strategy.Subtraction{}.Generate(ctx, strategy.Input{})
	assert.ErrorIs(t, err, strategy.ErrNilInput)

	var names []candidate.Strategy
	for _, s := range []strategy.Strategy{strategy.Clique{}, strategy.Transitive{}, strategy.Subtraction{}} {
		names = append(names, s.Name())
	}
	assert.Equal(t, candidate.Strategies, names)
}
