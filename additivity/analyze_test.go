package additivity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sarmine/additivity"
	"github.com/katalvlaran/sarmine/extract"
	"github.com/katalvlaran/sarmine/rule"
)

var (
	ruleA   = rule.MustNew(rule.Edit{Position: "1", From: "A", To: "G"})
	ruleB   = rule.MustNew(rule.Edit{Position: "2", From: "K", To: "R"})
	ruleC   = rule.MustNew(rule.Edit{Position: "3", From: "L", To: "W"})
	ruleAB  = mustUnion(ruleA, ruleB)
	ruleAC  = mustUnion(ruleA, ruleC)
	ruleBC  = mustUnion(ruleB, ruleC)
	ruleABC = mustUnion(ruleA, ruleB, ruleC)
)

func mustUnion(rs ...rule.Rule) rule.Rule {
	u, err := rule.Union(rs...)
	if err != nil {
		panic(err)
	}

	return u
}

type amp struct {
	r rule.Rule
	a float64
}

func observations(amps ...amp) *extract.Observations {
	obs := make([]extract.Observation, 0, len(amps))
	for _, x := range amps {
		obs = append(obs, extract.Observation{Rule: x.r, Amplification: x.a, WildTypeID: "wt", MutantID: x.r.Key(), Support: 1})
	}

	return extract.NewObservations("wt", obs...)
}

func TestAnalyze_BoundaryIsInclusive(t *testing.T) {
	// 3.15 / (2.0 × 1.5) − 1 = 0.05: exactly at tolerance.
	obs := observations(amp{ruleA, 20.0 / 10}, amp{ruleB, 15.0 / 10}, amp{ruleAB, 31.5 / 10})

	res, err := additivity.Analyze(obs, 0.05)
	require.NoError(t, err)
	require.Len(t, res.Relations, 1)
	rel := res.Relations[0]
	assert.Equal(t, ruleA.Key(), rel.Left.Key())
	assert.Equal(t, ruleB.Key(), rel.Right.Key())
	assert.Equal(t, ruleAB.Key(), rel.Union.Key())
	assert.InDelta(t, 0.05, rel.RelativeError, 1e-9)
	assert.Equal(t, 1, res.Evaluated)
	assert.Equal(t, 0, res.Rejected)
}

func TestAnalyze_OutsideTolerance(t *testing.T) {
	obs := observations(amp{ruleA, 2.0}, amp{ruleB, 1.5}, amp{ruleAB, 3.4})

	res, err := additivity.Analyze(obs, 0.05)
	require.NoError(t, err)
	assert.Empty(t, res.Relations)
	assert.Equal(t, 1, res.Rejected)

	// Sub-additive side of the band is rejected too.
	obs = observations(amp{ruleA, 2.0}, amp{ruleB, 1.5}, amp{ruleAB, 2.7})
	res, err = additivity.Analyze(obs, 0.05)
	require.NoError(t, err)
	assert.Empty(t, res.Relations)
}

func TestAnalyze_RequiresBeneficialHalves(t *testing.T) {
	// 1.0 × 3.0 = 3.0 factorizes perfectly but ruleA is neutral.
	obs := observations(amp{ruleA, 1.0}, amp{ruleB, 3.0}, amp{ruleAB, 3.0})

	res, err := additivity.Analyze(obs, 0.05)
	require.NoError(t, err)
	assert.Empty(t, res.Relations)
	assert.Equal(t, 1, res.Rejected)
}

func TestAnalyze_DeductionIsExactDivision(t *testing.T) {
	obs := observations(amp{ruleA, 2.0}, amp{ruleAB, 3.15})

	res, err := additivity.Analyze(obs, 0.05)
	require.NoError(t, err)
	assert.Empty(t, res.Relations)
	require.Equal(t, 1, res.DeductionCount())

	d, ok := res.Deduction(ruleB.Key())
	require.True(t, ok)
	assert.Equal(t, 3.15/2.0, d.Amplification)
	require.Len(t, d.Paths, 1)
	assert.Equal(t, ruleA.Key(), d.Canonical().Observed.Key())
	assert.Equal(t, ruleAB.Key(), d.Canonical().Union.Key())
}

func TestAnalyze_DeductionKeepsAllPaths(t *testing.T) {
	// ruleC is deducible from AC (via A) and from BC (via B).
	obs := observations(
		amp{ruleA, 2.0},
		amp{ruleB, 1.5},
		amp{ruleAC, 5.0},
		amp{ruleBC, 4.2},
	)

	res, err := additivity.Analyze(obs, 0.05)
	require.NoError(t, err)

	d, ok := res.Deduction(ruleC.Key())
	require.True(t, ok)
	require.Len(t, d.Paths, 2)
	// Paths ordered by union key: "1:A>G;3:L>W" < "2:K>R;3:L>W".
	assert.Equal(t, ruleAC.Key(), d.Paths[0].Union.Key())
	assert.Equal(t, ruleBC.Key(), d.Paths[1].Union.Key())
	assert.Equal(t, 5.0/2.0, d.Amplification, "canonical amplification is the first path's")
	assert.Equal(t, 4.2/1.5, d.Paths[1].Amplification)
}

func TestAnalyze_TernaryRule(t *testing.T) {
	obs := observations(
		amp{ruleA, 2.0},
		amp{ruleB, 1.5},
		amp{ruleC, 1.2},
		amp{ruleAB, 3.0},
		amp{ruleABC, 3.6},
	)

	res, err := additivity.Analyze(obs, 0.01)
	require.NoError(t, err)

	var pairs []string
	for _, rel := range res.Relations {
		pairs = append(pairs, rel.Left.Key()+" + "+rel.Right.Key())
	}
	// From AB: A+B. From ABC: AB+C (3.0·1.2 = 3.6). A+BC and B+AC are
	// unobserved halves, so they feed deductions instead.
	assert.ElementsMatch(t, []string{
		ruleA.Key() + " + " + ruleB.Key(),
		ruleAB.Key() + " + " + ruleC.Key(),
	}, pairs)
	assert.Equal(t, 2, res.Evaluated)

	dBC, ok := res.Deduction(ruleBC.Key())
	require.True(t, ok)
	assert.Equal(t, 3.6/2.0, dBC.Amplification)
	_, ok = res.Deduction(ruleAC.Key())
	assert.True(t, ok)
}

func TestAnalyze_ZeroFitnessHalfYieldsNoDeduction(t *testing.T) {
	// ruleA knocks fitness out entirely, so AB and ABC cannot be divided
	// by it. C|AB would give 0.5/0 = +Inf and must not shadow C via BC.
	obs := observations(
		amp{ruleA, 0},
		amp{ruleB, 1.5},
		amp{ruleAB, 0},
		amp{ruleBC, 3.0},
		amp{ruleABC, 0.5},
	)

	res, err := additivity.Analyze(obs, 0.05)
	require.NoError(t, err)
	assert.Empty(t, res.Relations)
	assert.Equal(t, 2, res.Evaluated, "A|B and A|BC")
	assert.Equal(t, 2, res.Rejected)
	assert.Equal(t, 1, res.Undefined)

	dC, ok := res.Deduction(ruleC.Key())
	require.True(t, ok)
	require.Len(t, dC.Paths, 1)
	assert.Equal(t, ruleBC.Key(), dC.Canonical().Union.Key())
	assert.Equal(t, 3.0/1.5, dC.Amplification)

	dAC, ok := res.Deduction(ruleAC.Key())
	require.True(t, ok)
	assert.Equal(t, 0.5/1.5, dAC.Amplification)

	assert.Equal(t, 2, res.DeductionCount())
	for _, d := range res.Deductions() {
		for _, p := range d.Paths {
			assert.False(t, math.IsNaN(p.Amplification) || math.IsInf(p.Amplification, 0), d.Rule.Key())
		}
	}
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := additivity.Analyze(nil, 0.1)
	assert.ErrorIs(t, err, additivity.ErrNilObservations)

	_, err = additivity.Analyze(observations(), -0.1)
	assert.ErrorIs(t, err, additivity.ErrNegativeTolerance)
}
