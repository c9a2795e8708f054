package dfs

import (
	"fmt"

	"github.com/katalvlaran/sarmine/core"
)

// walker carries the traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID, or over every
// component when WithFullTraversal is set (startID is then ignored).
// Neighbors are explored in sorted ID order, so the result is reproducible.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{graph: g, opts: o, res: &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
		state:  make(map[string]int, n),
	}}

	roots := []string{startID}
	if o.FullTraversal {
		roots = g.Vertices()
	}
	for _, r := range roots {
		if w.res.state[r] != White {
			continue
		}
		w.res.Roots = append(w.res.Roots, r)
		if err := w.traverse(r, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.state[id] = Gray
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if w.res.state[nid] != White {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	w.res.state[id] = Black
	w.res.Order = append(w.res.Order, id)

	return nil
}
