// Package rule implements the rule codec of the SAR engine: the canonical,
// order-independent encoding of the position-level edits between two records.
//
// What:
//
//   - Edit: {Position, From, To}; an empty From or To models an absent
//     position (insertion or deletion).
//   - Rule: an immutable, deduplicated edit set in canonical order (natural
//     position order, then From, then To). Its Key is the map key and graph
//     vertex identity for the whole engine.
//   - Encode / Distance / Apply: derive a rule from a wild-type/mutant pair,
//     count the edits separating two records, and replay a rule on a record.
//   - Union / Conflicts / Partitions: the set algebra used by the additivity
//     engine and the candidate strategies.
//
// Canonical key:
//
//	"1:A>G;7:K>;12:>W"   (position 7 deleted, position 12 inserted)
//
// Errors:
//
//	ErrInconsistentApplication - an edit's source token does not match the record.
//	ErrConflictingEdits        - two edits touch one position differently.
//	ErrBadEdit                 - an edit is a no-op or has an empty position.
//	ErrBadKey                  - a key cannot be parsed.
//	ErrTooManyPartitions       - a rule is too wide to enumerate bipartitions.
package rule
