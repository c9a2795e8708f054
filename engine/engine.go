package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sarmine/additivity"
	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/config"
	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/dfs"
	"github.com/katalvlaran/sarmine/extract"
	"github.com/katalvlaran/sarmine/filter"
	"github.com/katalvlaran/sarmine/neighbor"
	"github.com/katalvlaran/sarmine/record"
	"github.com/katalvlaran/sarmine/strategy"
)

var (
	// ErrUnknownWildType is returned when a configured wild-type ID is not
	// in the dataset.
	ErrUnknownWildType = errors.New("engine: unknown wild-type")

	// ErrNilDataset is returned for a nil dataset.
	ErrNilDataset = errors.New("engine: dataset is nil")
)

// Engine is built once from a validated configuration and may run many
// datasets. It is safe for concurrent use.
type Engine struct {
	cfg        config.Config
	log        *slog.Logger
	reg        prometheus.Registerer
	metrics    *metrics
	strategies []strategy.Strategy
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRegisterer registers the engine metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.reg = reg }
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New validates cfg and builds the engine.
//
// Errors: config.ErrConfiguration (wrapped).
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, log: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.metrics = newMetrics(e.reg)
	e.strategies = strategiesFor(cfg)

	return e, nil
}

func strategiesFor(cfg config.Config) []strategy.Strategy {
	st := cfg.Strategies
	cl := strategy.Clique{
		FitnessThreshold: st.Clique.FitnessThreshold,
		MinSize:          st.Clique.MinSize,
		MaxSize:          st.Clique.MaxSize,
		MaxCliques:       st.Clique.MaxCliques,
	}
	var out []strategy.Strategy
	if st.Clique.Enabled {
		out = append(out, cl)
	}
	if st.Transitive.Enabled {
		out = append(out, strategy.Transitive{
			Clique:          cl,
			MaxHop:          st.Transitive.MaxHop,
			DecayFactor:     st.Transitive.DecayFactor,
			IncludeObserved: !st.Clique.Enabled,
		})
	}
	if st.Subtraction.Enabled {
		out = append(out, strategy.Subtraction{NumMutMin: st.Subtraction.NumMutMin, AmpMin: st.Subtraction.AmpMin})
	}

	return out
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.Config { return e.cfg }

// WildTypeResult is the full output of one wild-type.
type WildTypeResult struct {
	Summary      WildTypeSummary
	Candidates   []candidate.Candidate
	Observations *extract.Observations
	Additivity   *additivity.Result
	Graph        *core.Graph
}

// Run mines every configured wild-type of ds and merges the results.
//
// Errors: ErrNilDataset, ErrUnknownWildType, context errors.
func (e *Engine) Run(ctx context.Context, ds *record.Dataset) (*Report, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	wildTypes, err := e.wildTypes(ds)
	if err != nil {
		return nil, err
	}
	flt, err := e.filter(ds)
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString(), CreatedAt: e.now().UTC(), Config: e.cfg}
	log := e.log.With(slog.String("run_id", report.RunID))
	log.Info("run started", slog.Int("records", ds.Len()), slog.Int("wild_types", len(wildTypes)))

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]*WildTypeResult, len(wildTypes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, wt := range wildTypes {
		i, wt := i, wt
		g.Go(func() error {
			res, err := e.runOne(gctx, log, ds, wt, flt)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	report.merge(results)
	log.Info("run finished",
		slog.Int("candidates", len(report.Candidates)),
		slog.Int("skipped", report.Stats.SkippedWildTypes),
		slog.Float64("rule_usage_rate", report.Stats.RuleUsageRate),
	)

	return report, nil
}

// RunWildType runs the pipeline for one wild-type and keeps its
// intermediate products.
func (e *Engine) RunWildType(ctx context.Context, ds *record.Dataset, id string) (*WildTypeResult, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	wt, ok := ds.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWildType, id)
	}
	flt, err := e.filter(ds)
	if err != nil {
		return nil, err
	}

	return e.runOne(ctx, e.log, ds, wt, flt)
}

func (e *Engine) wildTypes(ds *record.Dataset) ([]record.Record, error) {
	if len(e.cfg.WildTypes) == 0 {
		return ds.Records(), nil
	}
	out := make([]record.Record, 0, len(e.cfg.WildTypes))
	for _, id := range e.cfg.WildTypes {
		r, ok := ds.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWildType, id)
		}
		out = append(out, r)
	}

	return out, nil
}

func (e *Engine) filter(ds *record.Dataset) (*filter.Filter, error) {
	ix, err := neighbor.NewIndex(ds)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	fc := e.cfg.Filter

	return filter.New(ix,
		filter.WithMinPredictedFitness(fc.MinPredictedFitness),
		filter.WithDistanceRange(fc.MinDistance, fc.MaxDistance),
		filter.WithAllowPositions(fc.AllowPositions...),
		filter.WithDenyPositions(fc.DenyPositions...),
		filter.WithMinMinuendFitness(fc.MinMinuendFitness),
		filter.WithMaxSubtrahendDistance(fc.MaxSubtrahendDistance),
		filter.WithHitRatio(fc.HitRatio),
		filter.WithNeighbors(fc.Neighbors),
	)
}

// runOne is the sequential per-wild-type pipeline.
func (e *Engine) runOne(ctx context.Context, log *slog.Logger, ds *record.Dataset, wt record.Record, flt *filter.Filter) (*WildTypeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	log = log.With(slog.String("wild_type", wt.ID))
	sum := WildTypeSummary{WildTypeID: wt.ID}

	obs, err := extract.Extract(wt, ds,
		extract.WithMaxArity(e.cfg.Extraction.MaxArity),
		extract.WithAmpThreshold(e.cfg.Extraction.AmpThreshold),
		extract.WithPolicy(e.cfg.Policy()),
	)
	if errors.Is(err, extract.ErrDegenerateWildType) {
		log.Warn("wild-type skipped", slog.String("reason", err.Error()))
		e.metrics.wildTypes.WithLabelValues("skipped").Inc()
		sum.Skipped, sum.SkipReason = true, err.Error()
		return &WildTypeResult{Summary: sum}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("engine: extract %q: %w", wt.ID, err)
	}

	add, err := additivity.Analyze(obs, e.cfg.Additivity.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("engine: additivity %q: %w", wt.ID, err)
	}
	g, err := core.Build(obs, add.Relations)
	if err != nil {
		return nil, fmt.Errorf("engine: graph %q: %w", wt.ID, err)
	}
	sum.Rules = obs.Len()
	sum.Relations = len(add.Relations)
	sum.Evaluated = add.Evaluated
	sum.Deductions = add.DeductionCount()
	sum.Graph = g.Stats()
	comps, err := dfs.Components(ctx, g)
	if err != nil {
		return nil, err
	}
	sum.Components = len(comps)
	if len(comps) > 0 {
		sum.LargestComponent = len(comps[0])
	}
	sum.Generated = make(map[candidate.Strategy]int)
	sum.Rejected = make(map[filter.Reason]int)

	in := strategy.Input{
		WildType:     wt,
		Observations: obs,
		Additivity:   add,
		Graph:        g,
		Tolerance:    e.cfg.Additivity.Tolerance,
		Logger:       log,
	}
	var emitted []candidate.Candidate
	used := make(map[string]bool)
	for _, s := range e.strategies {
		out, err := s.Generate(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("engine: %s on %q: %w", s.Name(), wt.ID, err)
		}
		sum.Generated[s.Name()] += len(out.Candidates)
		sum.Discarded += out.Discarded
		sum.TransitiveEdges += out.TransitiveEdges
		sum.Truncated = sum.Truncated || out.Truncated
		if out.MaxCliqueSize > sum.MaxCliqueSize {
			sum.MaxCliqueSize = out.MaxCliqueSize
		}
		for _, c := range out.Candidates {
			c, reason, err := flt.Apply(c)
			if err != nil {
				sum.Discarded++
				log.Debug("candidate dropped", slog.String("key", c.Key), slog.String("error", err.Error()))
				continue
			}
			if reason != filter.ReasonNone {
				sum.Rejected[reason]++
				e.metrics.rejected.WithLabelValues(string(reason)).Inc()
				continue
			}
			for _, k := range c.SupportingRules {
				if obs.Has(k) {
					used[k] = true
				}
			}
			e.metrics.candidates.WithLabelValues(string(c.Strategy)).Inc()
			emitted = append(emitted, c)
		}
	}
	sum.Emitted = len(emitted)
	sum.UsedRules = len(used)
	sum.Duration = time.Since(start)

	e.metrics.wildTypes.WithLabelValues("processed").Inc()
	e.metrics.rules.Add(float64(sum.Rules))
	e.metrics.relations.Add(float64(sum.Relations))
	e.metrics.deductions.Add(float64(sum.Deductions))
	e.metrics.discarded.Add(float64(sum.Discarded))
	e.metrics.duration.Observe(sum.Duration.Seconds())
	log.Info("wild-type mined",
		slog.Int("rules", sum.Rules),
		slog.Int("relations", sum.Relations),
		slog.Int("deductions", sum.Deductions),
		slog.Int("transitive_edges", sum.TransitiveEdges),
		slog.Int("candidates", sum.Emitted),
		slog.Duration("duration", sum.Duration),
	)

	return &WildTypeResult{
		Summary:      sum,
		Candidates:   emitted,
		Observations: obs,
		Additivity:   add,
		Graph:        g,
	}, nil
}
