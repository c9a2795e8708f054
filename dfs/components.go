// File: components.go
// Role: Connected components of the rule graph via forest DFS.
// Determinism:
//   - Members are sorted; components are ordered by size desc, then first member.

package dfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/sarmine/core"
)

// Components returns the connected components of g. A component of size
// one is an isolated rule with no additive partner.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out [][]string
	collect := func(id string, depth int) error {
		if depth == 0 {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], id)
		return nil
	}
	if _, err := DFS(g, "", WithContext(ctx), WithFullTraversal(), WithOnVisit(collect)); err != nil {
		return nil, err
	}

	for _, c := range out {
		sort.Strings(c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i][0] < out[j][0]
	})

	return out, nil
}
