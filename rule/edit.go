package rule

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sarmine/record"
)

// Edit is one position-level change. From == "" means the position is absent
// in the source record; To == "" means the edit removes it.
type Edit struct {
	Position string
	From     string
	To       string
}

// Valid reports whether e changes something at a named position.
func (e Edit) Valid() error {
	if e.Position == "" {
		return fmt.Errorf("%w: empty position", ErrBadEdit)
	}
	if e.From == e.To {
		return fmt.Errorf("%w: no-op at %q", ErrBadEdit, e.Position)
	}
	if err := record.ValidateSymbol(e.Position); err != nil {
		return fmt.Errorf("%w: position %q: %v", ErrBadEdit, e.Position, err)
	}
	for _, tok := range [...]string{e.From, e.To} {
		if tok == "" {
			continue
		}
		if err := record.ValidateSymbol(tok); err != nil {
			return fmt.Errorf("%w: token %q: %v", ErrBadEdit, tok, err)
		}
	}

	return nil
}

// IsInsertion reports whether the edit introduces an absent position.
func (e Edit) IsInsertion() bool { return e.From == "" }

// IsDeletion reports whether the edit removes a position.
func (e Edit) IsDeletion() bool { return e.To == "" }

// String renders "pos:from>to"; absent tokens render as nothing.
func (e Edit) String() string {
	var b strings.Builder
	b.Grow(len(e.Position) + len(e.From) + len(e.To) + 2)
	b.WriteString(e.Position)
	b.WriteByte(':')
	b.WriteString(e.From)
	b.WriteByte('>')
	b.WriteString(e.To)

	return b.String()
}

// compareEdits is the canonical total order: position (natural), From, To.
func compareEdits(a, b Edit) int {
	if c := record.ComparePositions(a.Position, b.Position); c != 0 {
		return c
	}
	if c := strings.Compare(a.From, b.From); c != 0 {
		return c
	}

	return strings.Compare(a.To, b.To)
}

// parseEdit is the inverse of Edit.String.
func parseEdit(s string) (Edit, error) {
	colon := strings.IndexByte(s, ':')
	arrow := strings.IndexByte(s, '>')
	if colon <= 0 || arrow < colon {
		return Edit{}, fmt.Errorf("%w: edit %q", ErrBadKey, s)
	}
	e := Edit{Position: s[:colon], From: s[colon+1 : arrow], To: s[arrow+1:]}
	if err := e.Valid(); err != nil {
		return Edit{}, fmt.Errorf("%w: %v", ErrBadKey, err)
	}

	return e, nil
}
