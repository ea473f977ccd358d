// Package crf implements linear-chain Conditional Random Field scoring for
// BIO tagging.
//
// The model keeps a sparse feature-by-tag emission weight map and a dense
// tag-by-tag transition matrix. Weights may be hand-set or learned; the
// decoder contract is identical either way.
package crf

import (
	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/tag"
	"github.com/tupilabs/nerbr/viterbi"
)

// Model holds CRF parameters. Emission weights are keyed "feature|tag";
// absent keys mean weight 0. Transitions are indexed by tag.Index().
type Model struct {
	EmissionWeights   map[string]float64 `json:"emission_weights"`
	TransitionWeights [][]float64        `json:"transition_weights"`
}

// New creates a model with all weights at zero.
func New() *Model {
	trans := make([][]float64, tag.Count)
	for i := range trans {
		trans[i] = make([]float64, tag.Count)
	}
	return &Model{
		EmissionWeights:   make(map[string]float64),
		TransitionWeights: trans,
	}
}

func emissionKey(feat string, t tag.Tag) string {
	return feat + "|" + t.Label()
}

// SetEmission sets the weight of one (feature, tag) pair.
func (m *Model) SetEmission(feat string, t tag.Tag, weight float64) {
	m.EmissionWeights[emissionKey(feat, t)] = weight
}

// SetTransition sets the weight of the from→to transition.
func (m *Model) SetTransition(from, to tag.Tag, weight float64) {
	m.TransitionWeights[from.Index()][to.Index()] = weight
}

// EmissionScore sums weight*value over the vector's active features for the
// given tag. Unknown features contribute nothing.
func (m *Model) EmissionScore(fv feature.Vector, t tag.Tag) float64 {
	label := t.Label()
	var score float64
	for feat, val := range fv.Features {
		score += val * m.EmissionWeights[feat+"|"+label]
	}
	return score
}

// TransitionScore returns the weight of the prev→next transition, 0 if
// never set.
func (m *Model) TransitionScore(prev, next tag.Tag) float64 {
	return m.TransitionWeights[prev.Index()][next.Index()]
}

// EmissionTable computes the [T][tag.Count] emission score matrix for a
// feature vector sequence, in tag.All() order.
func (m *Model) EmissionTable(vectors []feature.Vector) [][]float64 {
	tags := tag.All()
	table := make([][]float64, len(vectors))
	for i, fv := range vectors {
		row := make([]float64, len(tags))
		for s, t := range tags {
			row[s] = m.EmissionScore(fv, t)
		}
		table[i] = row
	}
	return table
}

// Decode runs the shared Viterbi decoder over this model's potentials.
func (m *Model) Decode(vectors []feature.Vector) viterbi.Result {
	return viterbi.Decode(tag.Labels(), m.EmissionTable(vectors), m.TransitionWeights)
}

// Predict returns the best tag sequence for the feature vectors.
func (m *Model) Predict(vectors []feature.Vector) []tag.Tag {
	return m.Decode(vectors).BestSequence
}
