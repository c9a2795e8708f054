// Package record defines the measured entities the SAR engine mines: a Record
// is a position→token map plus a scalar fitness, and a Dataset is the ordered,
// read-only collection of records for one analysis run.
//
// What:
//
//   - Record: immutable {ID, Positions, Fitness}. Fitness is always on the
//     higher-is-better scale; any unit conversion happens before a record is
//     constructed.
//   - Dataset: ordered records with unique IDs, lookups by ID and by
//     canonical position key.
//   - ComparePositions: the natural order used everywhere positions are sorted
//     (integers numerically, then everything else lexicographically).
//   - ReadCSV / ReadJSON: thin loaders that turn tabular input into a Dataset.
//
// Determinism:
//
//   - Record.Key() serializes positions in natural order, so two records with
//     equal position maps always share a key regardless of map iteration order.
//   - Dataset iteration follows insertion order.
//
// Errors:
//
//	ErrEmptyID           - record ID is empty.
//	ErrDuplicateID       - two records in one dataset share an ID.
//	ErrNonFiniteFitness  - fitness is NaN or ±Inf.
//	ErrEmptyPosition     - a position key is empty.
//	ErrEmptyToken        - a token is empty (absence is modelled by a missing key).
//	ErrReservedCharacter - a position or token contains one of ":;>,=".
package record
