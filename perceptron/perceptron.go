// Package perceptron implements an averaged perceptron tagger. Training is
// online and mistake driven: weights only move when the current model
// mispredicts a token. The final model uses the average of the weights over
// every training step, which dampens the oscillation of the plain
// perceptron. Averages are maintained lazily so each update touches only
// the active features.
package perceptron

import (
	"math"
	"sort"

	"github.com/tupilabs/nerbr/corpus"
	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/tokenizer"
)

// Model is an averaged perceptron over "feature|tag" keyed weights.
// TotalWeights and LastUpdate are training bookkeeping; after Train returns
// they are cleared and Weights holds the averaged values.
type Model struct {
	Weights      map[string]float64 `json:"weights"`
	TotalWeights map[string]float64 `json:"-"`
	LastUpdate   map[string]int     `json:"-"`
	Steps        int                `json:"steps"`
	Tags         []string           `json:"tags"`
}

func New() *Model {
	return &Model{
		Weights:      make(map[string]float64),
		TotalWeights: make(map[string]float64),
		LastUpdate:   make(map[string]int),
	}
}

func weightKey(feat, tag string) string {
	return feat + "|" + tag
}

// Train runs the given number of passes over the corpus and finalizes the
// averaged weights.
func (m *Model) Train(sentences []corpus.Sentence, iterations int) {
	tagSet := make(map[string]bool)
	for _, s := range sentences {
		for _, a := range s.Annotations {
			tagSet[a.Tag] = true
		}
	}
	m.Tags = m.Tags[:0]
	for t := range tagSet {
		m.Tags = append(m.Tags, t)
	}
	sort.Strings(m.Tags)

	if m.TotalWeights == nil {
		m.TotalWeights = make(map[string]float64)
	}
	if m.LastUpdate == nil {
		m.LastUpdate = make(map[string]int)
	}

	gaz := feature.NewGazetteers()

	for iter := 0; iter < iterations; iter++ {
		for _, sentence := range sentences {
			tokens := tokenizer.FromWords(sentence.Words())
			vectors := feature.ExtractAll(tokens, gaz)

			for i, fv := range vectors {
				trueTag := sentence.Annotations[i].Tag
				pred := m.predictSingle(fv)
				if pred != trueTag {
					m.update(fv, trueTag, pred)
				}
				m.Steps++
			}
		}
	}

	m.finalizeWeights()
}

// predictSingle returns the best tag for one feature vector using the
// current weights. Ties resolve to the tag that sorts first.
func (m *Model) predictSingle(fv feature.Vector) string {
	if len(m.Tags) == 0 {
		return ""
	}
	bestTag := m.Tags[0]
	bestScore := math.Inf(-1)
	for _, t := range m.Tags {
		score := m.scoreTag(fv, t)
		if score > bestScore {
			bestScore = score
			bestTag = t
		}
	}
	return bestTag
}

func (m *Model) scoreTag(fv feature.Vector, tag string) float64 {
	var score float64
	for fname, fval := range fv.Features {
		if w, ok := m.Weights[weightKey(fname, tag)]; ok {
			score += w * fval
		}
	}
	return score
}

// update promotes the true tag and demotes the mispredicted one for every
// active feature.
func (m *Model) update(fv feature.Vector, trueTag, predTag string) {
	for fname := range fv.Features {
		m.updateFeature(fname, trueTag, 1.0)
		m.updateFeature(fname, predTag, -1.0)
	}
}

// updateFeature applies one delta with lazy averaging: before changing the
// weight, the accumulated total is credited with the old value for every
// step since the weight last moved.
func (m *Model) updateFeature(fname, tag string, delta float64) {
	key := weightKey(fname, tag)
	current := m.Weights[key]
	sinceUpdate := float64(m.Steps - m.LastUpdate[key])
	m.TotalWeights[key] += sinceUpdate * current
	m.LastUpdate[key] = m.Steps
	m.Weights[key] = current + delta
}

// finalizeWeights settles the lazy totals for every known weight and
// replaces the weights with their averages over all training steps.
func (m *Model) finalizeWeights() {
	for key, current := range m.Weights {
		sinceUpdate := float64(m.Steps - m.LastUpdate[key])
		m.TotalWeights[key] += sinceUpdate * current
	}

	if m.Steps > 0 {
		steps := float64(m.Steps)
		for key, total := range m.TotalWeights {
			m.Weights[key] = total / steps
		}
	}

	m.TotalWeights = make(map[string]float64)
	m.LastUpdate = make(map[string]int)
}

// Predict tags each word greedily with the averaged weights.
func (m *Model) Predict(words []string) []string {
	gaz := feature.NewGazetteers()
	tokens := tokenizer.FromWords(words)
	vectors := feature.ExtractAll(tokens, gaz)

	result := make([]string, 0, len(words))
	for _, fv := range vectors {
		result = append(result, m.predictSingle(fv))
	}
	return result
}
