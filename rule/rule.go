// SPDX-License-Identifier: MIT
//
// File: rule.go
// Role: Rule value type, canonicalization, parsing and set algebra.
// Determinism:
//   - Edits are always stored sorted by compareEdits; Key() is a pure
//     function of the edit set, independent of construction order.

package rule

import (
	"fmt"
	"sort"
	"strings"
)

// Rule is an immutable, canonically ordered set of edits.
// The zero Rule is the empty rule (arity 0).
type Rule struct {
	edits []Edit
	key   string
}

// New builds a rule from edits in any order. Identical edits are merged;
// two different edits on one position yield ErrConflictingEdits.
func New(edits ...Edit) (Rule, error) {
	for _, e := range edits {
		if err := e.Valid(); err != nil {
			return Rule{}, err
		}
	}

	return canonical(edits)
}

// MustNew is New for fixtures and examples; it panics on invalid input.
func MustNew(edits ...Edit) Rule {
	r, err := New(edits...)
	if err != nil {
		panic(err)
	}

	return r
}

// Parse decodes a canonical key produced by Rule.Key.
func Parse(key string) (Rule, error) {
	if key == "" {
		return Rule{}, nil
	}
	parts := strings.Split(key, ";")
	edits := make([]Edit, 0, len(parts))
	for _, p := range parts {
		e, err := parseEdit(p)
		if err != nil {
			return Rule{}, err
		}
		edits = append(edits, e)
	}

	return canonical(edits)
}

// canonical sorts, deduplicates and conflict-checks already valid edits.
func canonical(edits []Edit) (Rule, error) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return compareEdits(sorted[i], sorted[j]) < 0 })

	out := sorted[:0]
	for _, e := range sorted {
		if n := len(out); n > 0 && out[n-1].Position == e.Position {
			if out[n-1] == e {
				continue
			}
			return Rule{}, fmt.Errorf("%w: %s vs %s", ErrConflictingEdits, out[n-1], e)
		}
		out = append(out, e)
	}

	return fromSorted(out), nil
}

// fromSorted wraps edits already in canonical order without re-checking.
func fromSorted(edits []Edit) Rule {
	if len(edits) == 0 {
		return Rule{}
	}
	parts := make([]string, len(edits))
	for i, e := range edits {
		parts[i] = e.String()
	}

	return Rule{edits: edits, key: strings.Join(parts, ";")}
}

// Key returns the canonical serialization; equal rules have equal keys.
func (r Rule) Key() string { return r.key }

// String implements fmt.Stringer.
func (r Rule) String() string {
	if r.key == "" {
		return "<empty>"
	}

	return r.key
}

// Arity returns the number of edits.
func (r Rule) Arity() int { return len(r.edits) }

// IsEmpty reports whether the rule has no edits.
func (r Rule) IsEmpty() bool { return len(r.edits) == 0 }

// Equal reports set equality of the edits.
func (r Rule) Equal(o Rule) bool { return r.key == o.key }

// Edits returns a copy of the edits in canonical order.
func (r Rule) Edits() []Edit {
	out := make([]Edit, len(r.edits))
	copy(out, r.edits)

	return out
}

// Positions returns the edited positions in natural order.
func (r Rule) Positions() []string {
	out := make([]string, len(r.edits))
	for i, e := range r.edits {
		out[i] = e.Position
	}

	return out
}

// Contains reports whether every edit of o is also an edit of r.
func (r Rule) Contains(o Rule) bool {
	i := 0
	for _, e := range o.edits {
		for i < len(r.edits) && compareEdits(r.edits[i], e) < 0 {
			i++
		}
		if i == len(r.edits) || r.edits[i] != e {
			return false
		}
	}

	return true
}

// Union merges rules into one. Shared identical edits are kept once;
// different edits on one position yield ErrConflictingEdits.
func Union(rules ...Rule) (Rule, error) {
	n := 0
	for _, r := range rules {
		n += len(r.edits)
	}
	all := make([]Edit, 0, n)
	for _, r := range rules {
		all = append(all, r.edits...)
	}

	return canonical(all)
}

// Conflicts reports whether a and b edit a shared position differently,
// i.e. whether they could never be applied together to one background.
func Conflicts(a, b Rule) bool {
	i, j := 0, 0
	for i < len(a.edits) && j < len(b.edits) {
		c := compareEdits(a.edits[i], b.edits[j])
		if a.edits[i].Position == b.edits[j].Position {
			if c != 0 {
				return true
			}
			i++
			j++
			continue
		}
		if c < 0 {
			i++
		} else {
			j++
		}
	}

	return false
}
