// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: Record value type: construction, validation, canonical key, equality.
// Determinism:
//   - Key() and SortedPositions() use ComparePositions; never map order.
// Concurrency:
//   - Record is immutable after construction and safe to share across goroutines.

package record

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// reserved lists characters that delimit the canonical rule encoding.
const reserved = ":;>,="

// Record is one measured entity: a position→token map and a fitness value.
//
// ID and Fitness are plain values; the position map is private and only
// exposed through copies so a Record cannot be mutated once built.
type Record struct {
	// ID uniquely identifies the record within its Dataset.
	ID string

	// Fitness is the measured potency on the higher-is-better scale.
	Fitness float64

	positions map[string]string
	key       string
}

// New validates and builds a Record. The positions map is copied.
//
// Errors: ErrEmptyID, ErrNonFiniteFitness, ErrEmptyPosition, ErrEmptyToken,
// ErrReservedCharacter (all wrapped with the offending value).
// Complexity: O(L log L), L = len(positions).
func New(id string, positions map[string]string, fitness float64) (Record, error) {
	if id == "" {
		return Record{}, ErrEmptyID
	}
	if math.IsNaN(fitness) || math.IsInf(fitness, 0) {
		return Record{}, fmt.Errorf("%w: record %q", ErrNonFiniteFitness, id)
	}
	if err := ValidatePositions(positions); err != nil {
		return Record{}, fmt.Errorf("record %q: %w", id, err)
	}

	return build(id, positions, fitness), nil
}

// MustNew is New for fixtures and examples; it panics on invalid input.
func MustNew(id string, positions map[string]string, fitness float64) Record {
	r, err := New(id, positions, fitness)
	if err != nil {
		panic(err)
	}

	return r
}

// Derive returns a record with parent's ID and fitness and the given
// positions. It is used for hypothetical sequences (rule applications),
// whose fitness is predicted elsewhere. Positions must already be valid.
func Derive(parent Record, positions map[string]string) Record {
	return build(parent.ID, positions, parent.Fitness)
}

// ValidatePositions checks that every key and token is non-empty and free of
// reserved characters.
func ValidatePositions(positions map[string]string) error {
	for pos, tok := range positions {
		if err := ValidateSymbol(pos); err != nil {
			if errors.Is(err, ErrEmptyToken) {
				return ErrEmptyPosition
			}
			return fmt.Errorf("position %q: %w", pos, err)
		}
		if err := ValidateSymbol(tok); err != nil {
			return fmt.Errorf("position %q token %q: %w", pos, tok, err)
		}
	}

	return nil
}

// ValidateSymbol checks one position key or token.
// It returns ErrEmptyToken for the empty string and ErrReservedCharacter when
// s contains any of ":;>,=".
func ValidateSymbol(s string) error {
	if s == "" {
		return ErrEmptyToken
	}
	if strings.ContainsAny(s, reserved) {
		return ErrReservedCharacter
	}

	return nil
}

func build(id string, positions map[string]string, fitness float64) Record {
	cp := make(map[string]string, len(positions))
	for k, v := range positions {
		cp[k] = v
	}

	return Record{ID: id, Fitness: fitness, positions: cp, key: keyOf(cp)}
}

// keyOf renders "pos=tok,pos=tok" in natural position order.
func keyOf(positions map[string]string) string {
	keys := make([]string, 0, len(positions))
	for k := range positions {
		keys = append(keys, k)
	}
	SortPositions(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(positions[k])
	}

	return b.String()
}

// Key returns the canonical serialization of the position map.
// Records with equal position maps have equal keys.
func (r Record) Key() string { return r.key }

// Equal reports whether r and o have identical position maps.
// IDs and fitness are not compared.
func (r Record) Equal(o Record) bool { return r.key == o.key }

// Token returns the token at pos and whether the position is present.
func (r Record) Token(pos string) (string, bool) {
	t, ok := r.positions[pos]

	return t, ok
}

// Len returns the number of present positions.
func (r Record) Len() int { return len(r.positions) }

// Positions returns a copy of the position map.
func (r Record) Positions() map[string]string {
	cp := make(map[string]string, len(r.positions))
	for k, v := range r.positions {
		cp[k] = v
	}

	return cp
}

// SortedPositions returns the present position keys in natural order.
func (r Record) SortedPositions() []string {
	keys := make([]string, 0, len(r.positions))
	for k := range r.positions {
		keys = append(keys, k)
	}
	SortPositions(keys)

	return keys
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return fmt.Sprintf("%s{%s}@%g", r.ID, r.key, r.Fitness)
}
