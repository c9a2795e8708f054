package record

import "fmt"

// Dataset is an ordered, read-only collection of records with unique IDs.
//
// A Dataset is built once per analysis run and shared by every worker; none
// of its methods mutate state, so concurrent readers need no locking.
type Dataset struct {
	records []Record
	byID    map[string]int
	byKey   map[string][]int
}

// NewDataset indexes records in the given order.
// Errors: ErrEmptyID, ErrDuplicateID.
// Complexity: O(N).
func NewDataset(records []Record) (*Dataset, error) {
	ds := &Dataset{
		records: make([]Record, len(records)),
		byID:    make(map[string]int, len(records)),
		byKey:   make(map[string][]int, len(records)),
	}
	copy(ds.records, records)

	for i, r := range ds.records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyID, i)
		}
		if _, dup := ds.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		ds.byID[r.ID] = i
		ds.byKey[r.key] = append(ds.byKey[r.key], i)
	}

	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// At returns the i-th record in dataset order.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Records returns a copy of the records in dataset order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)

	return out
}

// Get returns the record with the given ID.
func (d *Dataset) Get(id string) (Record, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Record{}, false
	}

	return d.records[i], true
}

// FindByKey returns the records whose canonical position key equals key,
// in dataset order. Replicate measurements of one sequence share a key.
func (d *Dataset) FindByKey(key string) []Record {
	idx := d.byKey[key]
	out := make([]Record, 0, len(idx))
	for _, i := range idx {
		out = append(out, d.records[i])
	}

	return out
}
