// Package nerbr recognizes named entities in Brazilian Portuguese text.
//
// It ships five interchangeable taggers (CRF, HMM, MaxEnt, averaged
// perceptron and a span classifier) over a shared feature extractor and
// Viterbi decoder.
//
//	t := nerbr.New()
//	tokens, entities, _ := t.Annotate("Lula viajou para Brasília.", nerbr.ModeCRF)
//	for _, e := range entities {
//	    fmt.Println(e.Text, e.Label) // "Lula PER", "Brasília LOC"
//	}
package nerbr

import (
	"fmt"

	"github.com/tupilabs/nerbr/corpus"
	"github.com/tupilabs/nerbr/crf"
	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/hmm"
	"github.com/tupilabs/nerbr/maxent"
	"github.com/tupilabs/nerbr/perceptron"
	"github.com/tupilabs/nerbr/span"
	"github.com/tupilabs/nerbr/tag"
	"github.com/tupilabs/nerbr/tokenizer"
)

// Mode selects which tagger Annotate uses.
type Mode string

const (
	ModeCRF        Mode = "crf"
	ModeHMM        Mode = "hmm"
	ModeMaxEnt     Mode = "maxent"
	ModePerceptron Mode = "perceptron"
	ModeSpan       Mode = "span"
)

// ParseMode validates a mode name from user input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCRF, ModeHMM, ModeMaxEnt, ModePerceptron, ModeSpan:
		return Mode(s), nil
	}
	return "", fmt.Errorf("nerbr: unknown mode %q", s)
}

// Tagger bundles the five models and the gazetteers they share.
type Tagger struct {
	CRF        *crf.Model
	HMM        *hmm.Model
	MaxEnt     *maxent.Model
	Perceptron *perceptron.Model
	Span       *span.Model
	Gazetteers feature.Gazetteers
}

// New builds the default tagger: the CRF carries curated weights tuned for
// Portuguese, the statistical models are trained on the embedded corpus.
func New() *Tagger {
	return Train(corpus.Builtin(), DefaultTrainConfig())
}

// Annotate tokenizes text and tags it with the model selected by mode.
// It returns the per token tags and the reconstructed entity spans.
func (t *Tagger) Annotate(text string, mode Mode) ([]tag.TaggedToken, []tag.EntitySpan, error) {
	tokens := tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return []tag.TaggedToken{}, []tag.EntitySpan{}, nil
	}

	var tagged []tag.TaggedToken
	switch mode {
	case ModeCRF:
		if t.CRF == nil {
			return nil, nil, fmt.Errorf("nerbr: crf model not initialized")
		}
		vectors := feature.ExtractAll(tokens, t.Gazetteers)
		result := t.CRF.Decode(vectors)
		confidences := result.Confidences()
		tagged = make([]tag.TaggedToken, len(tokens))
		for i, tok := range tokens {
			tagged[i] = tag.NewTaggedToken(tok, result.BestSequence[i], confidences[i])
		}

	case ModeHMM:
		if t.HMM == nil {
			return nil, nil, fmt.Errorf("nerbr: hmm model not initialized")
		}
		result := t.HMM.Decode(tokenizer.Words(tokens))
		confidences := result.Confidences()
		tagged = make([]tag.TaggedToken, len(tokens))
		for i, tok := range tokens {
			tagged[i] = tag.NewTaggedToken(tok, result.BestSequence[i], confidences[i])
		}

	case ModeMaxEnt:
		if t.MaxEnt == nil {
			return nil, nil, fmt.Errorf("nerbr: maxent model not initialized")
		}
		tagged = taggedFromLabels(tokens, t.MaxEnt.Predict(tokenizer.Words(tokens)))

	case ModePerceptron:
		if t.Perceptron == nil {
			return nil, nil, fmt.Errorf("nerbr: perceptron model not initialized")
		}
		tagged = taggedFromLabels(tokens, t.Perceptron.Predict(tokenizer.Words(tokens)))

	case ModeSpan:
		if t.Span == nil {
			return nil, nil, fmt.Errorf("nerbr: span model not initialized")
		}
		spans := t.Span.Predict(tokenizer.Words(tokens))
		tagged = taggedFromLabels(tokens, spansToBIO(spans, len(tokens)))

	default:
		return nil, nil, fmt.Errorf("nerbr: unknown mode %q", mode)
	}

	return tagged, tag.SpansFromTagged(tagged, text), nil
}

// taggedFromLabels pairs tokens with predicted BIO labels. Greedy taggers
// give no calibrated score, so confidence is reported as 1.0.
func taggedFromLabels(tokens []tokenizer.Token, labels []string) []tag.TaggedToken {
	tagged := make([]tag.TaggedToken, len(tokens))
	for i, tok := range tokens {
		t, ok := tag.Parse(labels[i])
		if !ok {
			t = tag.O
		}
		tagged[i] = tag.NewTaggedToken(tok, t, 1.0)
	}
	return tagged
}

// spansToBIO projects span predictions back onto a BIO sequence. When spans
// overlap, the first prediction to claim a token wins.
func spansToBIO(spans []span.Span, nTokens int) []string {
	labels := make([]string, nTokens)
	for i := range labels {
		labels[i] = "O"
	}
	for _, s := range spans {
		claimed := false
		for i := s.Start; i < s.End && i < nTokens; i++ {
			if labels[i] != "O" {
				claimed = true
				break
			}
		}
		if claimed {
			continue
		}
		for i := s.Start; i < s.End && i < nTokens; i++ {
			if i == s.Start {
				labels[i] = "B-" + s.Label
			} else {
				labels[i] = "I-" + s.Label
			}
		}
	}
	return labels
}
