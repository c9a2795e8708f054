package clique

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sarmine/bfs"
	"github.com/katalvlaran/sarmine/core"
)

// Compatible decides whether two rules two hops apart may be joined.
type Compatible func(a, b core.Vertex) bool

// Expand runs up to maxHop rounds of transitive closure on a copy of g.
// Each round reads a snapshot of the previous round: for every vertex r1 a
// depth-2 BFS that only walks into vertices compatible with r1 yields the
// vertices r3 at distance exactly 2, and r1–r3 is added as a transitive edge
// via the BFS parent r2. A nil compatible accepts every pair. Rounds stop
// early when one adds nothing.
//
// Errors: ErrGraphNil, ErrOptionViolation for maxHop < 0, the context error.
// Complexity: O(maxHop · V · (V + E)).
func Expand(ctx context.Context, g *core.Graph, maxHop int, compatible Compatible) (*ExpandResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxHop < 0 {
		return nil, fmt.Errorf("%w: max hop cannot be negative (%d)", ErrOptionViolation, maxHop)
	}
	if compatible == nil {
		compatible = func(_, _ core.Vertex) bool { return true }
	}

	work := g.Clone()
	res := &ExpandResult{Graph: work}
	for round := 0; round < maxHop; round++ {
		snap := work.Clone()
		added := 0
		for _, r1 := range snap.Vertices() {
			v1, _ := snap.Vertex(r1)
			// incompatible rules are never discovered, so a compatible r3
			// keeps its smallest compatible r2 as parent
			reach := func(_, nbr string) bool {
				vn, _ := snap.Vertex(nbr)
				return compatible(v1, vn)
			}
			walk, err := bfs.BFS(snap, r1,
				bfs.WithContext(ctx),
				bfs.WithMaxDepth(2),
				bfs.WithFilterNeighbor(reach),
			)
			if err != nil {
				return nil, fmt.Errorf("clique: closure from %q: %w", r1, err)
			}
			for _, r3 := range walk.Layer(2) {
				if r3 < r1 || work.HasEdge(r1, r3) {
					continue
				}
				if _, err = work.AddEdge(r1, r3, core.WithVia(walk.Parent[r3])); err != nil {
					return nil, fmt.Errorf("clique: closure edge %q–%q: %w", r1, r3, err)
				}
				added++
			}
		}
		res.Rounds++
		res.Added = append(res.Added, added)
		if added == 0 {
			break
		}
	}

	return res, nil
}
