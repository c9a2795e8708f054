package rule

import "errors"

// Sentinel errors for rule construction and application.
var (
	// ErrInconsistentApplication indicates an edit whose source does not
	// match the record's current token, i.e. the rule was mined against a
	// different background.
	ErrInconsistentApplication = errors.New("rule: inconsistent application")

	// ErrConflictingEdits indicates two edits on the same position with
	// different sources or targets.
	ErrConflictingEdits = errors.New("rule: conflicting edits")

	// ErrBadEdit indicates an edit with an empty position or From == To.
	ErrBadEdit = errors.New("rule: bad edit")

	// ErrBadKey indicates a malformed canonical rule string.
	ErrBadKey = errors.New("rule: malformed key")

	// ErrTooManyPartitions indicates a rule above MaxPartitionArity.
	ErrTooManyPartitions = errors.New("rule: too many edits to partition")
)
