// Package maxent implements a multinomial logistic regression tagger
// trained with stochastic gradient descent. Unlike the generative HMM it
// combines arbitrary overlapping features, but prediction is local: each
// token is classified independently of its neighbors.
package maxent

import (
	"log/slog"
	"math"
	"sort"

	"github.com/tupilabs/nerbr/corpus"
	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/tokenizer"
)

// Model holds per (feature, tag) weights keyed as "feature|tag".
type Model struct {
	Weights map[string]float64 `json:"weights"`
	Tags    []string           `json:"tags"`
}

func New() *Model {
	return &Model{Weights: make(map[string]float64)}
}

func weightKey(feat, tag string) string {
	return feat + "|" + tag
}

// Train fits the model with SGD and L2 regularization. Weights that shrink
// to effectively zero are dropped to keep the map sparse.
func (m *Model) Train(sentences []corpus.Sentence, iterations int, learningRate, lambda float64) {
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

	gaz := feature.NewGazetteers()

	for epoch := 0; epoch < iterations; epoch++ {
		correct, total := 0, 0

		for _, sentence := range sentences {
			tokens := tokenizer.FromWords(sentence.Words())
			vectors := feature.ExtractAll(tokens, gaz)

			for i, fv := range vectors {
				trueTag := sentence.Annotations[i].Tag

				scores := m.scores(fv)
				probs := m.softmax(scores)

				if pred, _ := m.best(scores); pred == trueTag {
					correct++
				}
				total++

				for tagIdx, t := range m.Tags {
					err := indicator(t == trueTag) - probs[tagIdx]
					if math.Abs(err) <= 1e-6 {
						continue
					}
					for fname, fval := range fv.Features {
						key := weightKey(fname, t)
						w := m.Weights[key]
						next := w + learningRate*(err*fval-lambda*w)
						if math.Abs(next) > 1e-9 {
							m.Weights[key] = next
						} else {
							delete(m.Weights, key)
						}
					}
				}
			}
		}

		if epoch%5 == 0 && total > 0 {
			slog.Debug("maxent epoch",
				"epoch", epoch,
				"accuracy", float64(correct)/float64(total))
		}
	}
}

// Predict classifies each word greedily, choosing the highest scoring tag
// in isolation.
func (m *Model) Predict(words []string) []string {
	gaz := feature.NewGazetteers()
	tokens := tokenizer.FromWords(words)
	vectors := feature.ExtractAll(tokens, gaz)

	result := make([]string, 0, len(words))
	for _, fv := range vectors {
		best, _ := m.best(m.scores(fv))
		result = append(result, best)
	}
	return result
}

// scores computes the raw linear score for every tag, in m.Tags order.
func (m *Model) scores(fv feature.Vector) []float64 {
	scores := make([]float64, len(m.Tags))
	for i, t := range m.Tags {
		var score float64
		for fname, fval := range fv.Features {
			if w, ok := m.Weights[weightKey(fname, t)]; ok {
				score += w * fval
			}
		}
		scores[i] = score
	}
	return scores
}

func (m *Model) softmax(scores []float64) []float64 {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	exps := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		exps[i] = math.Exp(s - maxScore)
		sum += exps[i]
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// best returns the highest scoring tag. Ties resolve to the tag that sorts
// first, keeping predictions deterministic.
func (m *Model) best(scores []float64) (string, float64) {
	bestTag := m.Tags[0]
	bestVal := math.Inf(-1)
	for i, t := range m.Tags {
		if scores[i] > bestVal {
			bestVal = scores[i]
			bestTag = t
		}
	}
	return bestTag, bestVal
}

func indicator(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
