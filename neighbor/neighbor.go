// Package neighbor annotates hypothetical records with their closest
// measured records under mutation distance.
//
// The index is a linear scan over the dataset. Mutation distance is not a
// metric a tree index could prune on cheaply for sparse position maps, and
// datasets in this domain hold thousands of records, not millions.
//
// Ties are broken by record ID, so Nearest is reproducible.
package neighbor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sarmine/record"
	"github.com/katalvlaran/sarmine/rule"
)

var (
	// ErrNilDataset is returned by NewIndex for a nil dataset.
	ErrNilDataset = errors.New("neighbor: dataset is nil")

	// ErrBadK is returned when k < 1.
	ErrBadK = errors.New("neighbor: k must be positive")
)

// Neighbor is one measured record near a query.
type Neighbor struct {
	RecordID string `json:"record_id"`
	Distance int    `json:"distance"`
}

// Index answers nearest-record queries over a read-only dataset.
// It is safe for concurrent use.
type Index struct {
	records []record.Record
	byKey   map[string][]record.Record
}

// NewIndex indexes ds.
func NewIndex(ds *record.Dataset) (*Index, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	ix := &Index{records: ds.Records(), byKey: make(map[string][]record.Record, ds.Len())}
	for _, r := range ix.records {
		ix.byKey[r.Key()] = append(ix.byKey[r.Key()], r)
	}
	for k := range ix.byKey {
		recs := ix.byKey[k]
		sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	}

	return ix, nil
}

// Len returns the number of indexed records.
func (ix *Index) Len() int { return len(ix.records) }

// Nearest returns up to k records ordered by distance, then record ID.
//
// Errors: ErrBadK.
// Complexity: O(N·L + N log N).
func (ix *Index) Nearest(query record.Record, k int) ([]Neighbor, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadK, k)
	}
	all := make([]Neighbor, len(ix.records))
	for i, r := range ix.records {
		all[i] = Neighbor{RecordID: r.ID, Distance: rule.Distance(query, r)}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Distance != all[j].Distance {
			return all[i].Distance < all[j].Distance
		}
		return all[i].RecordID < all[j].RecordID
	})
	if k < len(all) {
		all = all[:k]
	}

	return all, nil
}

// Exact returns the records at distance 0 from query, ordered by ID.
// Complexity: O(1) lookup by key.
func (ix *Index) Exact(query record.Record) []record.Record {
	recs := ix.byKey[query.Key()]
	out := make([]record.Record, len(recs))
	copy(out, recs)

	return out
}
