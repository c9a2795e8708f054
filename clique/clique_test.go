package clique_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sarmine/clique"
	"github.com/katalvlaran/sarmine/core"
)

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

func complete(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	var pairs [][2]string
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, [2]string{ids[i], ids[j]})
		}
	}

	return graphOf(t, ids, pairs...)
}

func TestEnumerate_TriangleWithPendant(t *testing.T) {
	g := graphOf(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}, [2]string{"c", "d"})

	res, err := clique.Enumerate(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, res.Cliques)
	assert.False(t, res.Truncated())

	res, err = clique.Enumerate(g, clique.WithMinSize(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"c", "d"}}, res.Cliques)
}

func TestEnumerate_OnlyMaximal(t *testing.T) {
	// K4 minus a–d: maximal cliques are abc and bcd; no 3-subset of K4.
	g := graphOf(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "c"},
		[2]string{"b", "d"}, [2]string{"c", "d"})

	res, err := clique.Enumerate(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"b", "c", "d"}}, res.Cliques)

	res, err = clique.Enumerate(complete(t, "a", "b", "c", "d"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c", "d"}}, res.Cliques)
}

func TestEnumerate_SubsetsStayCliques(t *testing.T) {
	for _, ids := range [][]string{{"a", "b", "c", "d"}, {"a", "b", "c", "d", "e"}} {
		g := complete(t, ids...)
		res, err := clique.Enumerate(g)
		require.NoError(t, err)
		require.Equal(t, [][]string{ids}, res.Cliques)

		for drop := range ids {
			var rest []string
			for i, id := range ids {
				if i != drop {
					rest = append(rest, id)
				}
			}
			for i := range rest {
				for j := i + 1; j < len(rest); j++ {
					assert.True(t, g.HasEdge(rest[i], rest[j]), "%s–%s without %s", rest[i], rest[j], ids[drop])
				}
			}
		}
	}
}

func TestEnumerate_Deterministic(t *testing.T) {
	ids := []string{"v0", "v1", "v2", "v3", "v4", "v5", "v6"}
	pairs := [][2]string{
		{"v0", "v1"}, {"v0", "v2"}, {"v1", "v2"}, {"v2", "v3"}, {"v3", "v4"},
		{"v2", "v4"}, {"v4", "v5"}, {"v5", "v6"}, {"v4", "v6"}, {"v1", "v3"},
	}
	first, err := clique.Enumerate(graphOf(t, ids, pairs...))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := clique.Enumerate(graphOf(t, ids, pairs...))
		require.NoError(t, err)
		assert.Equal(t, first.Cliques, again.Cliques)
	}
}

func TestEnumerate_Caps(t *testing.T) {
	res, err := clique.Enumerate(complete(t, "a", "b", "c", "d", "e"), clique.WithMaxSize(3))
	require.NoError(t, err)
	require.Len(t, res.Cliques, 1)
	assert.Len(t, res.Cliques[0], 3)
	assert.Equal(t, 1, res.SizeCapped)
	assert.True(t, res.Truncated())

	two := graphOf(t, []string{"a", "b", "c", "x", "y", "z"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"},
		[2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"x", "z"})
	res, err = clique.Enumerate(two, clique.WithMaxCliques(1))
	require.NoError(t, err)
	assert.Len(t, res.Cliques, 1)
	assert.True(t, res.CountCapped)

	res, err = clique.Enumerate(two, clique.WithMaxCliques(2))
	require.NoError(t, err)
	assert.Len(t, res.Cliques, 2)
	assert.False(t, res.Truncated(), "reaching the cap exactly is not truncation")
}

func TestEnumerate_Errors(t *testing.T) {
	_, err := clique.Enumerate(nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)

	g := complete(t, "a", "b", "c")
	for _, opt := range []clique.Option{clique.WithMinSize(0), clique.WithMaxSize(-1), clique.WithMaxCliques(-1)} {
		_, err = clique.Enumerate(g, opt)
		assert.ErrorIs(t, err, clique.ErrOptionViolation)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = clique.Enumerate(g, clique.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpand_PathClosesToComplete(t *testing.T) {
	g := graphOf(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"})

	one, err := clique.Expand(context.Background(), g, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, one.Added)
	ac, err := one.Graph.Edge("a", "c")
	require.NoError(t, err)
	assert.Equal(t, core.KindTransitive, ac.Kind)
	assert.Equal(t, "b", ac.Via)
	assert.False(t, one.Graph.HasEdge("a", "d"))
	assert.Equal(t, 3, g.EdgeCount(), "input graph is untouched")

	all, err := clique.Expand(context.Background(), g, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Rounds, "stops after the first empty round")
	assert.Equal(t, []int{2, 1, 0}, all.Added)
	assert.Equal(t, 3, all.TotalAdded())
	ad, err := all.Graph.Edge("a", "d")
	require.NoError(t, err)
	assert.Equal(t, "b", ad.Via)

	res, err := clique.Enumerate(all.Graph)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c", "d"}}, res.Cliques)
}

func TestExpand_Compatibility(t *testing.T) {
	g := graphOf(t, []string{"a", "b", "c"}, [2]string{"a", "b"}, [2]string{"b", "c"})

	res, err := clique.Expand(context.Background(), g, 2, func(x, y core.Vertex) bool {
		return !(x.ID == "a" && y.ID == "c")
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalAdded())
	assert.False(t, res.Graph.HasEdge("a", "c"))

	zero, err := clique.Expand(context.Background(), g, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Rounds)

	_, err = clique.Expand(context.Background(), g, -1, nil)
	assert.ErrorIs(t, err, clique.ErrOptionViolation)
	_, err = clique.Expand(context.Background(), nil, 1, nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}
