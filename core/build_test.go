package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sarmine/additivity"
	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/extract"
	"github.com/katalvlaran/sarmine/rule"
)

func TestBuild(t *testing.T) {
	a := single("1", "A", "G")
	b := single("2", "K", "R")
	c := single("3", "L", "W")
	ab, err := rule.Union(a, b)
	require.NoError(t, err)

	obs := extract.NewObservations("wt",
		extract.Observation{Rule: a, Amplification: 2.0},
		extract.Observation{Rule: b, Amplification: 1.5},
		extract.Observation{Rule: c, Amplification: 0.8},
		extract.Observation{Rule: ab, Amplification: 3.15},
	)
	rel := additivity.Relation{Left: a, Right: b, Union: ab, RelativeError: 0.05}

	g, err := core.Build(obs, []additivity.Relation{
		rel,
		rel,                           // duplicate collapses
		{Left: a, Right: a, Union: a}, // loop ignored
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount(), "every observed rule is a vertex")
	assert.Equal(t, 1, g.EdgeCount())
	e, err := g.Edge(a.Key(), b.Key())
	require.NoError(t, err)
	assert.Equal(t, core.KindObserved, e.Kind)
	assert.InDelta(t, 0.05, e.RelativeError, 1e-12)
	assert.Equal(t, ab.Key(), e.Union.Key())

	v, ok := g.Vertex(c.Key())
	require.True(t, ok)
	assert.Equal(t, 0.8, v.Amplification)
}

func TestBuild_Errors(t *testing.T) {
	_, err := core.Build(nil, nil)
	assert.ErrorIs(t, err, core.ErrNilObservations)

	a := single("1", "A", "G")
	b := single("2", "K", "R")
	obs := extract.NewObservations("wt", extract.Observation{Rule: a, Amplification: 2})
	_, err = core.Build(obs, []additivity.Relation{{Left: a, Right: b}})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
