package clique

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/sarmine/core"
)

var errStop = errors.New("clique: stop")

// walker holds the Bron–Kerbosch state over integer vertex indices.
type walker struct {
	opts Options
	ids  []string       // index → vertex ID, sorted
	adj  []map[int]bool // index → neighbor indices
	res  *Result
}

// Enumerate lists the maximal cliques of g with at least MinSize members,
// using Bron–Kerbosch with pivoting. The pivot is the vertex of P ∪ X with
// the most neighbors in P (smallest index on ties) and branches are taken in
// ascending ID order, so the result is reproducible.
//
// Caps never fail silently: a clique cut at MaxSize is counted in
// SizeCapped, and hitting MaxCliques sets CountCapped.
//
// Errors: ErrGraphNil, ErrOptionViolation, the context error.
// Complexity: O(3^(V/3)) worst case.
func Enumerate(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adjacency := g.Adjacency()
	ids := make([]string, 0, len(adjacency))
	for id := range adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	w := &walker{opts: o, ids: ids, adj: make([]map[int]bool, len(ids)), res: &Result{}}
	p := make([]int, len(ids))
	for i, id := range ids {
		p[i] = i
		w.adj[i] = make(map[int]bool, len(adjacency[id]))
		for _, nb := range adjacency[id] {
			w.adj[i][index[nb]] = true
		}
	}

	err := w.extend(nil, p, nil)
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	sort.Slice(w.res.Cliques, func(i, j int) bool {
		a, b := w.res.Cliques[i], w.res.Cliques[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return strings.Join(a, "\x00") < strings.Join(b, "\x00")
	})

	return w.res, nil
}

func (w *walker) extend(r, p, x []int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if len(p) == 0 {
		if len(x) == 0 {
			return w.emit(r, false)
		}
		return nil
	}
	if w.opts.MaxSize > 0 && len(r) >= w.opts.MaxSize {
		return w.emit(r, true)
	}

	u := w.pivot(p, x)
	for _, v := range p {
		if w.adj[u][v] {
			continue
		}
		next := make([]int, len(r)+1)
		copy(next, r)
		next[len(r)] = v
		if err := w.extend(next, w.intersect(p, v), w.intersect(x, v)); err != nil {
			return err
		}
		p = remove(p, v)
		x = insert(x, v)
	}

	return nil
}

// pivot picks u ∈ P ∪ X maximizing |P ∩ N(u)|.
func (w *walker) pivot(p, x []int) int {
	best, bestN := -1, -1
	for _, set := range [2][]int{p, x} {
		for _, u := range set {
			n := 0
			for _, v := range p {
				if w.adj[u][v] {
					n++
				}
			}
			if n > bestN || (n == bestN && u < best) {
				best, bestN = u, n
			}
		}
	}

	return best
}

func (w *walker) intersect(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if w.adj[v][u] {
			out = append(out, u)
		}
	}

	return out
}

func (w *walker) emit(r []int, capped bool) error {
	if len(r) < w.opts.MinSize {
		return nil
	}
	if w.opts.MaxCliques > 0 && len(w.res.Cliques) >= w.opts.MaxCliques {
		w.res.CountCapped = true
		return errStop
	}
	members := make([]string, len(r))
	for i, v := range r {
		members[i] = w.ids[v]
	}
	sort.Strings(members)
	w.res.Cliques = append(w.res.Cliques, members)
	if capped {
		w.res.SizeCapped++
	}

	return nil
}

// remove returns the sorted set without v, reusing no backing storage.
func remove(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if u != v {
			out = append(out, u)
		}
	}

	return out
}

// insert returns the sorted set with v added.
func insert(set []int, v int) []int {
	i := sort.SearchInts(set, v)
	out := make([]int, 0, len(set)+1)
	out = append(out, set[:i]...)
	out = append(out, v)

	return append(out, set[i:]...)
}
