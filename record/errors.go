package record

import "errors"

// Sentinel errors for record construction and loading.
var (
	// ErrEmptyID indicates a record without an identifier.
	ErrEmptyID = errors.New("record: ID is empty")

	// ErrDuplicateID indicates two records of one dataset share an ID.
	ErrDuplicateID = errors.New("record: duplicate ID")

	// ErrNonFiniteFitness indicates a NaN or infinite fitness value.
	ErrNonFiniteFitness = errors.New("record: fitness is not finite")

	// ErrEmptyPosition indicates an empty position key.
	ErrEmptyPosition = errors.New("record: position is empty")

	// ErrEmptyToken indicates an empty token. A position without a token is
	// expressed by omitting the key, not by an empty string.
	ErrEmptyToken = errors.New("record: token is empty")

	// ErrReservedCharacter indicates a position or token containing a
	// character reserved by the canonical rule encoding.
	ErrReservedCharacter = errors.New("record: reserved character")

	// ErrBadInput indicates malformed tabular input (missing columns, bad numbers).
	ErrBadInput = errors.New("record: malformed input")
)
