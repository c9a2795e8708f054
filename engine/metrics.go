package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are registered on the caller's registerer; with none they are
// created unregistered and still safe to update.
type metrics struct {
	wildTypes  *prometheus.CounterVec
	rules      prometheus.Counter
	relations  prometheus.Counter
	deductions prometheus.Counter
	candidates *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	discarded  prometheus.Counter
	duration   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		wildTypes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sarmine_wild_types_total",
			Help: "Wild-types processed, by result",
		}, []string{"result"}),
		rules: f.NewCounter(prometheus.CounterOpts{
			Name: "sarmine_rules_observed_total",
			Help: "Distinct rules observed across wild-types",
		}),
		relations: f.NewCounter(prometheus.CounterOpts{
			Name: "sarmine_additive_relations_total",
			Help: "Validated additive relations",
		}),
		deductions: f.NewCounter(prometheus.CounterOpts{
			Name: "sarmine_deduced_rules_total",
			Help: "Rules deduced by subtraction",
		}),
		candidates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sarmine_candidates_total",
			Help: "Candidates emitted after filtering, by strategy",
		}, []string{"strategy"}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "sarmine_candidates_rejected_total",
			Help: "Candidates rejected by the filter, by reason",
		}, []string{"reason"}),
		discarded: f.NewCounter(prometheus.CounterOpts{
			Name: "sarmine_candidates_discarded_total",
			Help: "Cliques or rules dropped for conflicting or inconsistent edits",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "sarmine_wild_type_duration_seconds",
			Help:    "Per wild-type pipeline duration",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}),
	}
}
