// Package candidate defines the hypotheses the strategies emit: a predicted
// record, its predicted fitness and the evidence behind it.
//
// A Candidate is built once by New and afterwards only gains nearest-record
// annotations and a validation verdict. Exported fields carry JSON tags; the
// store persists candidates as JSON payloads.
package candidate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sarmine/neighbor"
	"github.com/katalvlaran/sarmine/record"
	"github.com/katalvlaran/sarmine/rule"
)

// Strategy names the generator of a candidate.
type Strategy string

// Strategy names, from most conservative to most aggressive.
const (
	StrategyClique      Strategy = "clique"
	StrategyTransitive  Strategy = "transitive_clique"
	StrategySubtraction Strategy = "subtraction"
)

// Strategies lists every strategy in precedence order.
var Strategies = []Strategy{StrategyClique, StrategyTransitive, StrategySubtraction}

// Path is one provenance of a subtraction candidate: the observed rule
// Union minus the observed rule Observed.
type Path struct {
	Observed      string  `json:"observed"`
	Union         string  `json:"union"`
	Amplification float64 `json:"amplification"`
}

// SubtractionEvidence backs a candidate produced by rule subtraction.
type SubtractionEvidence struct {
	Paths []Path `json:"paths"`

	// MinuendFitness is f(w)·amp(Union) of the canonical path.
	MinuendFitness float64 `json:"minuend_fitness"`

	// SubtrahendDistance is the arity of the canonical path's Observed rule.
	SubtrahendDistance int `json:"subtrahend_distance"`
}

// Validation records the outcome of comparing a candidate with a measured
// record at distance 0.
type Validation struct {
	RecordID    string  `json:"record_id"`
	TrueFitness float64 `json:"true_fitness"`
	Hit         bool    `json:"hit"`
}

// Candidate is one predicted record.
type Candidate struct {
	// Key is the canonical key of the predicted positions.
	Key       string            `json:"key"`
	Positions map[string]string `json:"positions"`

	// Rule is the edit set from the wild-type to the prediction.
	Rule string `json:"rule"`

	PredictedFitness float64 `json:"predicted_fitness"`

	// SupportingRules are the rule keys the prediction rests on, ascending.
	SupportingRules []string `json:"supporting_rules"`

	Strategy   Strategy `json:"strategy"`
	WildTypeID string   `json:"wild_type_id"`

	// InferredEdges counts transitive edges inside the supporting clique.
	InferredEdges int `json:"inferred_edges,omitempty"`

	Subtraction *SubtractionEvidence `json:"subtraction,omitempty"`
	Neighbors   []neighbor.Neighbor  `json:"neighbors,omitempty"`
	Validation  *Validation          `json:"validation,omitempty"`
}

// New applies edits to wildType and returns the candidate.
//
// Errors: rule.ErrInconsistentApplication (wrapped).
func New(s Strategy, wildType record.Record, edits rule.Rule, predicted float64, supporting []string) (Candidate, error) {
	rec, err := rule.Apply(wildType, edits)
	if err != nil {
		return Candidate{}, fmt.Errorf("candidate: %s on %q: %w", s, wildType.ID, err)
	}
	sup := append([]string(nil), supporting...)
	sort.Strings(sup)

	return Candidate{
		Key:              rec.Key(),
		Positions:        rec.Positions(),
		Rule:             edits.Key(),
		PredictedFitness: predicted,
		SupportingRules:  sup,
		Strategy:         s,
		WildTypeID:       wildType.ID,
	}, nil
}

// Record returns the predicted record with the candidate's key as ID and
// the predicted fitness.
func (c Candidate) Record() (record.Record, error) {
	return record.New(c.WildTypeID+"→"+c.Key, c.Positions, c.PredictedFitness)
}

// Edits parses Rule.
func (c Candidate) Edits() (rule.Rule, error) { return rule.Parse(c.Rule) }

// EditedPositions returns the positions the candidate changes relative to
// its wild-type, in natural position order.
func (c Candidate) EditedPositions() []string {
	r, err := c.Edits()
	if err != nil {
		return nil
	}

	return r.Positions()
}

// WithNeighbors returns a copy of c annotated with ns.
func (c Candidate) WithNeighbors(ns []neighbor.Neighbor) Candidate {
	c.Neighbors = append([]neighbor.Neighbor(nil), ns...)

	return c
}

// WithValidation returns a copy of c carrying v.
func (c Candidate) WithValidation(v Validation) Candidate {
	c.Validation = &v

	return c
}

// Less orders candidates by predicted fitness descending, then wild-type,
// strategy precedence and key. It is the ranking used for reports.
func Less(a, b Candidate) bool {
	if a.PredictedFitness != b.PredictedFitness {
		return a.PredictedFitness > b.PredictedFitness
	}
	if a.WildTypeID != b.WildTypeID {
		return a.WildTypeID < b.WildTypeID
	}
	if pa, pb := precedence(a.Strategy), precedence(b.Strategy); pa != pb {
		return pa < pb
	}

	return a.Key < b.Key
}

func precedence(s Strategy) int {
	for i, x := range Strategies {
		if x == s {
			return i
		}
	}

	return len(Strategies)
}
