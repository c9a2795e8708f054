package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/rule"
)

// single returns the one-edit rule pos:from>to.
func single(pos, from, to string) rule.Rule {
	return rule.MustNew(rule.Edit{Position: pos, From: from, To: to})
}

// vertex wraps r as a graph vertex with amplification amp.
func vertex(r rule.Rule, amp float64) core.Vertex {
	return core.Vertex{ID: r.Key(), Rule: r, Amplification: amp}
}

// graphOf builds a graph whose vertices are ids (rule-free) and whose
// edges are the given pairs.
func graphOf(t *testing.T, ids []string, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id}))
	}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}
