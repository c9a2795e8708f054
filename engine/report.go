package engine

import (
	"sort"
	"time"

	"github.com/katalvlaran/sarmine/candidate"
	"github.com/katalvlaran/sarmine/config"
	"github.com/katalvlaran/sarmine/core"
	"github.com/katalvlaran/sarmine/filter"
)

// WildTypeSummary describes the pipeline run of one wild-type.
type WildTypeSummary struct {
	WildTypeID string `json:"wild_type_id"`

	// Skipped wild-types carry the reason and nothing else.
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`

	Rules      int        `json:"rules"`
	Relations  int        `json:"relations"`
	Evaluated  int        `json:"evaluated_partitions"`
	Deductions int        `json:"deductions"`
	Graph      core.Stats `json:"graph"`

	// Components counts connected groups of additive rules; cliques never
	// span two of them.
	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`

	TransitiveEdges int  `json:"transitive_edges"`
	MaxCliqueSize   int  `json:"max_clique_size"`
	Truncated       bool `json:"truncated,omitempty"`

	Generated map[candidate.Strategy]int `json:"generated,omitempty"`
	Discarded int                        `json:"discarded"`
	Rejected  map[filter.Reason]int      `json:"rejected,omitempty"`
	Emitted   int                        `json:"emitted"`

	// UsedRules counts observed rules supporting an emitted candidate.
	UsedRules int `json:"used_rules"`

	Duration time.Duration `json:"duration"`
}

// Stats aggregates a run.
type Stats struct {
	WildTypes             int                        `json:"wild_types"`
	SkippedWildTypes      int                        `json:"skipped_wild_types"`
	TotalRules            int                        `json:"total_rules"`
	CompatiblePairs       int                        `json:"compatible_pairs"`
	TransitivePairs       int                        `json:"transitive_pairs"`
	Deductions            int                        `json:"deductions"`
	MaxCliqueSize         int                        `json:"max_clique_size"`
	RuleUsageRate         float64                    `json:"rule_usage_rate"`
	CandidatesByStrategy  map[candidate.Strategy]int `json:"candidates_by_strategy"`
	Rejected              map[filter.Reason]int      `json:"rejected"`
	Discarded             int                        `json:"discarded"`
	TruncatedEnumerations int                        `json:"truncated_enumerations"`
	Validated             int                        `json:"validated"`
	Hits                  int                        `json:"hits"`
}

// Report is the merged output of Run.
type Report struct {
	RunID     string        `json:"run_id"`
	CreatedAt time.Time     `json:"created_at"`
	Config    config.Config `json:"config"`

	// Candidates are in wild-type order, then strategy order, then key.
	Candidates []candidate.Candidate `json:"candidates"`
	WildTypes  []WildTypeSummary     `json:"wild_types"`
	Stats      Stats                 `json:"stats"`
}

// Ranked returns the candidates ordered by candidate.Less.
func (r *Report) Ranked() []candidate.Candidate {
	out := append([]candidate.Candidate(nil), r.Candidates...)
	sort.SliceStable(out, func(i, j int) bool { return candidate.Less(out[i], out[j]) })

	return out
}

// merge folds the per-wild-type results into r in order.
func (r *Report) merge(results []*WildTypeResult) {
	s := Stats{
		CandidatesByStrategy: make(map[candidate.Strategy]int),
		Rejected:             make(map[filter.Reason]int),
	}
	used := 0
	for _, res := range results {
		sum := res.Summary
		r.WildTypes = append(r.WildTypes, sum)
		s.WildTypes++
		if sum.Skipped {
			s.SkippedWildTypes++
			continue
		}
		s.TotalRules += sum.Rules
		s.CompatiblePairs += sum.Relations
		s.TransitivePairs += sum.TransitiveEdges
		s.Deductions += sum.Deductions
		s.Discarded += sum.Discarded
		used += sum.UsedRules
		if sum.MaxCliqueSize > s.MaxCliqueSize {
			s.MaxCliqueSize = sum.MaxCliqueSize
		}
		if sum.Truncated {
			s.TruncatedEnumerations++
		}
		for k, v := range sum.Rejected {
			s.Rejected[k] += v
		}
		for _, c := range res.Candidates {
			s.CandidatesByStrategy[c.Strategy]++
			if c.Validation != nil {
				s.Validated++
				if c.Validation.Hit {
					s.Hits++
				}
			}
		}
		r.Candidates = append(r.Candidates, res.Candidates...)
	}
	if s.TotalRules > 0 {
		s.RuleUsageRate = float64(used) / float64(s.TotalRules)
	}
	r.Stats = s
}
