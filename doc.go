// Package sarmine mines additive structure-activity rules from a set of
// measured records and proposes unmeasured candidates.
//
// A record is a position→token map with a fitness value. For a chosen
// wild-type, every other record is encoded as a rule (the set of edits
// that turn the wild-type into it) with an amplification
// fitness(mutant)/fitness(wild-type). Rules whose amplifications multiply
// within tolerance are additive; they become the edges of a rule graph,
// and cliques of that graph combine into new candidates.
//
// Packages:
//
//	record/       records, datasets, CSV/JSON loaders
//	rule/         edits, rules, encode/apply, partitions
//	extract/      per-wild-type rule observations
//	additivity/   relation test and sub-rule deduction
//	core/         the thread-safe rule graph
//	bfs/, dfs/    traversals; dfs.Components splits the graph
//	clique/       Bron–Kerbosch enumeration and transitive closure
//	strategy/     Clique, Transitive and Subtraction generators
//	candidate/    candidate type and ranking
//	neighbor/     nearest measured records (Hamming distance)
//	filter/       rejection rules and validation against measurements
//	config/       YAML configuration with validation
//	engine/       the concurrent pipeline, metrics and report
//	store/        SQLite persistence of reports
//	cmd/sarmine   command-line interface
//
// Quick example:
//
//	cfg := config.Default()
//	eng, _ := engine.New(cfg, engine.WithLogger(slog.Default()))
//	rep, _ := eng.Run(ctx, ds)
//	for _, c := range rep.Ranked() {
//		fmt.Println(c.Key, c.PredictedFitness, c.Strategy)
//	}
package sarmine
