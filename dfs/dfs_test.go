package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/dfs"
)

// forest: triangle a-b-c, edge d-e, isolated f.
func forest(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id}))
	}
	for _, p := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}, {"d", "e"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "a")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(forest(t), "x")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleSource(t *testing.T) {
	res, err := dfs.DFS(forest(t), "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, res.Depth)
	assert.Equal(t, map[string]string{"b": "a", "c": "b"}, res.Parent)
	assert.Equal(t, []string{"a"}, res.Roots)
	assert.True(t, res.Visited("c"))
	assert.False(t, res.Visited("d"))
}

func TestDFS_FullTraversal(t *testing.T) {
	res, err := dfs.DFS(forest(t), "", dfs.WithFullTraversal())
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a", "e", "d", "f"}, res.Order)
	assert.Equal(t, []string{"a", "d", "f"}, res.Roots)
}

func TestDFS_OnVisit(t *testing.T) {
	var pre []string
	var depths []int
	_, err := dfs.DFS(forest(t), "", dfs.WithFullTraversal(),
		dfs.WithOnVisit(func(id string, depth int) error {
			pre = append(pre, id)
			depths = append(depths, depth)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, pre)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 0}, depths)

	boom := errors.New("boom")
	res, err := dfs.DFS(forest(t), "a", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "b" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(forest(t), "a", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	cs, err := dfs.Components(context.Background(), forest(t))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}, {"f"}}, cs)

	cs, err = dfs.Components(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, cs)

	_, err = dfs.Components(context.Background(), nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
