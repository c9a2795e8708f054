// File: codec.go
// Role: Record-level operations: Encode, Distance, Apply, ApplyAll.
// Determinism:
//   - Encode iterates positions through record.SortPositions, never map order.

package rule

import (
	"fmt"

	"github.com/katalvlaran/sarmine/record"
)

// Encode returns the rule transforming wildType into mutant.
// A position present in only one record becomes an insertion or deletion.
// Complexity: O(L log L), L = number of distinct positions.
func Encode(wildType, mutant record.Record) Rule {
	edits := diff(wildType, mutant)

	return fromSorted(edits)
}

// Distance returns the mutation distance between a and b: the arity of
// Encode(a, b). It is symmetric.
func Distance(a, b record.Record) int {
	if a.Key() == b.Key() {
		return 0
	}

	return len(diff(a, b))
}

// diff lists the edits a→b in canonical order.
func diff(a, b record.Record) []Edit {
	ap, bp := a.Positions(), b.Positions()
	keys := make([]string, 0, len(ap)+len(bp))
	for k := range ap {
		keys = append(keys, k)
	}
	for k := range bp {
		if _, seen := ap[k]; !seen {
			keys = append(keys, k)
		}
	}
	record.SortPositions(keys)

	var edits []Edit
	for _, k := range keys {
		from, to := ap[k], bp[k] // missing key reads as "" (absent)
		if from != to {
			edits = append(edits, Edit{Position: k, From: from, To: to})
		}
	}

	return edits
}

// Apply replays r on rec and returns the resulting record, which inherits
// rec's ID and fitness. Every edit's From must match rec's current token
// (absent From requires an absent position), otherwise the call fails with
// ErrInconsistentApplication and rec is left untouched.
func Apply(rec record.Record, r Rule) (record.Record, error) {
	positions := rec.Positions()
	for _, e := range r.edits {
		cur, ok := positions[e.Position]
		if (e.From == "" && ok) || (e.From != "" && (!ok || cur != e.From)) {
			return record.Record{}, fmt.Errorf("%w: edit %s on %q (found %q)", ErrInconsistentApplication, e, rec.ID, cur)
		}
		if e.To == "" {
			delete(positions, e.Position)
		} else {
			positions[e.Position] = e.To
		}
	}

	return record.Derive(rec, positions), nil
}

// ApplyAll unions rules and applies the result to rec. Conflicting rules fail
// with ErrConflictingEdits before anything is applied.
func ApplyAll(rec record.Record, rules ...Rule) (record.Record, Rule, error) {
	u, err := Union(rules...)
	if err != nil {
		return record.Record{}, Rule{}, err
	}
	out, err := Apply(rec, u)
	if err != nil {
		return record.Record{}, Rule{}, err
	}

	return out, u, nil
}
