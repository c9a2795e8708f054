// Package engine runs the mining pipeline over a dataset.
//
// For each wild-type (every record, or the configured subset):
//
//	extract → additivity → core.Build → strategies → filter
//
// Wild-types are independent. Run processes them on a bounded errgroup
// pool, each worker owning its observations, graph and candidates, and
// merges the results in wild-type order, so a report does not depend on
// the worker count or on scheduling.
//
// Failure policy:
//
//   - A degenerate wild-type is logged at Warn and skipped.
//   - A conflicting clique or an inconsistent rule application drops that
//     one candidate (logged at Debug inside the strategy).
//   - Only configuration errors (at New) and context cancellation abort.
package engine
