// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Rule graph construction from observations and additive relations.

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sarmine/additivity"
	"github.com/katalvlaran/sarmine/extract"
)

// Build returns the rule graph of one wild-type: one vertex per observed
// rule and one observed edge per relation. Relations whose halves are equal
// are ignored; repeated pairs collapse onto the first edge.
//
// Errors: ErrNilObservations; ErrVertexNotFound (wrapped) when a relation
// names a rule that was not observed.
// Complexity: O(R + P) for R observed rules and P relations.
func Build(obs *extract.Observations, relations []additivity.Relation) (*Graph, error) {
	if obs == nil {
		return nil, ErrNilObservations
	}
	g := NewGraph()
	for _, o := range obs.All() {
		if err := g.AddVertex(Vertex{ID: o.Rule.Key(), Rule: o.Rule, Amplification: o.Amplification}); err != nil {
			return nil, fmt.Errorf("core: build vertex %s: %w", o.Rule, err)
		}
	}
	for _, rel := range relations {
		_, err := g.AddEdge(rel.Left.Key(), rel.Right.Key(), WithRelation(rel.RelativeError, rel.Union))
		switch {
		case err == nil, errors.Is(err, ErrLoopNotAllowed):
		default:
			return nil, fmt.Errorf("core: build edge %s + %s: %w", rel.Left, rel.Right, err)
		}
	}

	return g, nil
}
