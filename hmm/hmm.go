// Package hmm implements a Hidden Markov Model tagger: hidden states are
// BIO tags, observations are words.
//
// Probabilities are stored as natural logarithms of add-one smoothed
// estimates, so no lookup inside the trained support can be -Inf and long
// products never underflow. Unknown words map to the <UNK> sentinel, which
// always has a defined emission probability for every tag.
package hmm

import (
	"math"
	"sort"

	"github.com/tupilabs/nerbr/corpus"
	"github.com/tupilabs/nerbr/viterbi"
)

// Unknown is the sentinel substituted for words outside the vocabulary.
const Unknown = "<UNK>"

// Model holds the smoothed log-probability tables of a trained HMM.
// Maps are nested by tag label; Tags is kept sorted so that enumeration
// order, and therefore Viterbi tie-breaking, is deterministic.
type Model struct {
	Transition map[string]map[string]float64 `json:"transition"` // prev tag → curr tag
	Emission   map[string]map[string]float64 `json:"emission"`   // tag → word (or Unknown)
	Start      map[string]float64            `json:"start"`      // tag
	Tags       []string                      `json:"tags"`
	Vocab      map[string]bool               `json:"vocab"`
}

// New creates an untrained model.
func New() *Model {
	return &Model{
		Transition: make(map[string]map[string]float64),
		Emission:   make(map[string]map[string]float64),
		Start:      make(map[string]float64),
		Vocab:      make(map[string]bool),
	}
}

// Train estimates start, transition and emission distributions from the
// annotated corpus by counting and add-one smoothing each distribution over
// its own support: |tags| for start and transitions, |vocab|+1 for
// emissions, the +1 reserving mass for Unknown.
func (m *Model) Train(sentences []corpus.Sentence) {
	transitionCounts := make(map[string]map[string]int)
	emissionCounts := make(map[string]map[string]int)
	startCounts := make(map[string]int)
	tagCounts := make(map[string]int)
	tagSet := make(map[string]bool)

	for _, sentence := range sentences {
		prev := ""
		for i, ann := range sentence.Annotations {
			m.Vocab[ann.Word] = true
			tagSet[ann.Tag] = true
			tagCounts[ann.Tag]++

			if emissionCounts[ann.Tag] == nil {
				emissionCounts[ann.Tag] = make(map[string]int)
			}
			emissionCounts[ann.Tag][ann.Word]++

			if i == 0 {
				startCounts[ann.Tag]++
			} else {
				if transitionCounts[prev] == nil {
					transitionCounts[prev] = make(map[string]int)
				}
				transitionCounts[prev][ann.Tag]++
			}
			prev = ann.Tag
		}
	}

	m.Tags = m.Tags[:0]
	for t := range tagSet {
		m.Tags = append(m.Tags, t)
	}
	sort.Strings(m.Tags)

	numTags := float64(len(m.Tags))
	vocabSize := float64(len(m.Vocab))
	totalStarts := float64(len(sentences))

	for _, t := range m.Tags {
		count := float64(startCounts[t])
		m.Start[t] = math.Log((count + 1.0) / (totalStarts + numTags))
	}

	for _, prev := range m.Tags {
		prevCount := float64(tagCounts[prev])
		row := make(map[string]float64, len(m.Tags))
		for _, curr := range m.Tags {
			count := float64(transitionCounts[prev][curr])
			row[curr] = math.Log((count + 1.0) / (prevCount + numTags))
		}
		m.Transition[prev] = row
	}

	for _, t := range m.Tags {
		tagCount := float64(tagCounts[t])
		row := make(map[string]float64, len(m.Vocab)+1)
		denom := tagCount + vocabSize + 1.0
		for word := range m.Vocab {
			count := float64(emissionCounts[t][word])
			row[word] = math.Log((count + 1.0) / denom)
		}
		row[Unknown] = math.Log(1.0 / denom)
		m.Emission[t] = row
	}
}

// lookup substitutes Unknown for out-of-vocabulary words.
func (m *Model) lookup(word string) string {
	if m.Vocab[word] {
		return word
	}
	return Unknown
}

// Decode runs the shared Viterbi decoder over the model's log-probability
// tables. The start distribution is folded into the first emission column
// so the decoder needs no separate initialization term.
func (m *Model) Decode(words []string) viterbi.Result {
	if len(words) == 0 || len(m.Tags) == 0 {
		return viterbi.Result{}
	}

	emissions := make([][]float64, len(words))
	for i, word := range words {
		w := m.lookup(word)
		row := make([]float64, len(m.Tags))
		for s, t := range m.Tags {
			row[s] = m.Emission[t][w]
			if i == 0 {
				row[s] += m.Start[t]
			}
		}
		emissions[i] = row
	}

	transitions := make([][]float64, len(m.Tags))
	for p, prev := range m.Tags {
		row := make([]float64, len(m.Tags))
		for s, curr := range m.Tags {
			row[s] = m.Transition[prev][curr]
		}
		transitions[p] = row
	}

	return viterbi.Decode(m.Tags, emissions, transitions)
}

// Predict returns the most probable tag label sequence for the words,
// aligned 1:1 with the input. Empty input yields an empty sequence.
func (m *Model) Predict(words []string) []string {
	result := m.Decode(words)
	labels := make([]string, len(result.BestSequence))
	for i, t := range result.BestSequence {
		labels[i] = t.Label()
	}
	return labels
}
