// Package span implements a span classification tagger. Instead of labeling
// tokens with BIO tags it enumerates candidate token ranges and assigns a
// category, or "O", to each whole range. This sidesteps BIO reconstruction
// and can in principle surface overlapping entities.
package span

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/tupilabs/nerbr/corpus"
	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/tokenizer"
)

// Span is a labeled token range. End is exclusive.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Model is a linear span classifier with perceptron style updates.
// Labels are bare categories plus "O", not BIO tags.
type Model struct {
	Weights    map[string]float64 `json:"weights"`
	Tags       []string           `json:"tags"`
	MaxSpanLen int                `json:"max_span_len"`
}

func New() *Model {
	return &Model{
		Weights:    make(map[string]float64),
		MaxSpanLen: 6,
	}
}

func weightKey(feat, label string) string {
	return feat + "|" + label
}

// Train classifies every candidate span of each sentence against the gold
// spans derived from the BIO annotations, updating weights on mistakes.
func (m *Model) Train(sentences []corpus.Sentence, iterations int) {
	tagSet := map[string]bool{"O": true}
	for _, s := range sentences {
		for _, a := range s.Annotations {
			if a.Tag != "O" {
				category := strings.TrimPrefix(strings.TrimPrefix(a.Tag, "B-"), "I-")
				tagSet[category] = true
			}
		}
	}
	m.Tags = m.Tags[:0]
	for t := range tagSet {
		m.Tags = append(m.Tags, t)
	}
	sort.Strings(m.Tags)

	gaz := feature.NewGazetteers()

	for iter := 0; iter < iterations; iter++ {
		for _, sentence := range sentences {
			tokens := tokenizer.FromWords(sentence.Words())

			goldSpans := BIOToSpans(sentence.Tags())
			gold := make(map[[2]int]string, len(goldSpans))
			for _, s := range goldSpans {
				gold[[2]int{s.Start, s.End}] = s.Label
			}

			for _, cand := range m.candidates(len(tokens)) {
				fv := m.spanFeatures(tokens, cand[0], cand[1], gaz)

				trueLabel, ok := gold[cand]
				if !ok {
					trueLabel = "O"
				}

				pred := m.predictSingle(fv)
				if pred != trueLabel {
					m.update(fv, trueLabel, pred)
				}
			}
		}
	}
}

// Predict returns every candidate span classified as an entity. Overlapping
// spans are not suppressed.
func (m *Model) Predict(words []string) []Span {
	gaz := feature.NewGazetteers()
	tokens := tokenizer.FromWords(words)

	var results []Span
	for _, cand := range m.candidates(len(tokens)) {
		fv := m.spanFeatures(tokens, cand[0], cand[1], gaz)
		if label := m.predictSingle(fv); label != "O" {
			results = append(results, Span{Start: cand[0], End: cand[1], Label: label})
		}
	}
	return results
}

// candidates enumerates spans ordered by length, then by start index.
func (m *Model) candidates(nTokens int) [][2]int {
	var spans [][2]int
	for length := 1; length <= m.MaxSpanLen; length++ {
		for start := 0; start+length <= nTokens; start++ {
			spans = append(spans, [2]int{start, start + length})
		}
	}
	return spans
}

// spanFeatures builds boundary, context, length, content and gazetteer
// features for the span tokens[start:end].
func (m *Model) spanFeatures(tokens []tokenizer.Token, start, end int, gaz feature.Gazetteers) feature.Vector {
	fv := feature.NewVector(start)

	fv.Set("span_first="+strings.ToLower(tokens[start].Text), 1.0)
	fv.Set("span_last="+strings.ToLower(tokens[end-1].Text), 1.0)

	if start > 0 {
		fv.Set("ctx_prev="+strings.ToLower(tokens[start-1].Text), 1.0)
	}
	if end < len(tokens) {
		fv.Set("ctx_next="+strings.ToLower(tokens[end].Text), 1.0)
	}

	fv.Set("span_len="+strconv.Itoa(end-start), 1.0)

	for i := start; i < end; i++ {
		fv.Set("in_span="+strings.ToLower(tokens[i].Text), 1.0)
		if startsUpper(tokens[i].Text) {
			fv.Set("span_has_cap", 1.0)
		}
	}

	spanText := strings.ToLower(tokenizer.Join(tokens, start, end))
	if gaz.Persons[spanText] {
		fv.Set("span_is_person_gaz", 1.0)
	}
	if gaz.Locations[spanText] {
		fv.Set("span_is_loc_gaz", 1.0)
	}
	if gaz.Organizations[spanText] {
		fv.Set("span_is_org_gaz", 1.0)
	}

	return fv
}

// predictSingle scores every label and returns the best one. Ties resolve
// to the label that sorts first.
func (m *Model) predictSingle(fv feature.Vector) string {
	bestLabel := "O"
	bestScore := math.Inf(-1)
	for _, label := range m.Tags {
		score := m.scoreLabel(fv, label)
		if score > bestScore {
			bestScore = score
			bestLabel = label
		}
	}
	return bestLabel
}

func (m *Model) scoreLabel(fv feature.Vector, label string) float64 {
	var score float64
	for fname, fval := range fv.Features {
		if w, ok := m.Weights[weightKey(fname, label)]; ok {
			score += w * fval
		}
	}
	return score
}

func (m *Model) update(fv feature.Vector, trueLabel, predLabel string) {
	for fname := range fv.Features {
		m.Weights[weightKey(fname, trueLabel)] += 1.0
		m.Weights[weightKey(fname, predLabel)] -= 1.0
	}
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// BIOToSpans converts a BIO tag sequence to spans. An I tag with no open
// entity, or with a different category than the open one, starts a new span.
func BIOToSpans(tags []string) []Span {
	var spans []Span
	start := -1
	label := ""

	for i, t := range tags {
		switch {
		case strings.HasPrefix(t, "B-"):
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i, Label: label})
			}
			start = i
			label = t[2:]
		case strings.HasPrefix(t, "I-"):
			if start < 0 {
				start = i
				label = t[2:]
			} else if t[2:] != label {
				spans = append(spans, Span{Start: start, End: i, Label: label})
				start = i
				label = t[2:]
			}
		default:
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i, Label: label})
				start = -1
				label = ""
			}
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(tags), Label: label})
	}
	return spans
}
