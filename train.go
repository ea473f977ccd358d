package nerbr

import (
	"fmt"
	"log/slog"

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

// TrainConfig controls training of all five models.
type TrainConfig struct {
	// TrainCRF replaces the curated CRF weights with weights learned from
	// the corpus. Off by default; the curated weights generalize better on
	// small corpora.
	TrainCRF bool
	CRF      crf.TrainConfig

	MaxEntIterations   int
	MaxEntLearningRate float64
	MaxEntL2           float64

	PerceptronIterations int
	SpanIterations       int
}

// DefaultTrainConfig returns the settings used by New.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		CRF:                  crf.DefaultTrainConfig(),
		MaxEntIterations:     20,
		MaxEntLearningRate:   0.1,
		MaxEntL2:             0.001,
		PerceptronIterations: 10,
		SpanIterations:       10,
	}
}

// Train builds a complete tagger from annotated sentences. Gazetteers are
// extracted from the corpus first so the feature extractor and the curated
// CRF weights can rely on them.
func Train(sentences []corpus.Sentence, cfg TrainConfig) *Tagger {
	t := &Tagger{
		Gazetteers: corpus.ExtractGazetteers(sentences),
	}

	if cfg.TrainCRF {
		t.CRF = crf.Train(crfSequences(sentences, t.Gazetteers), cfg.CRF)
	} else {
		t.CRF = defaultCRFModel()
	}

	t.HMM = hmm.New()
	t.HMM.Train(sentences)

	t.MaxEnt = maxent.New()
	t.MaxEnt.Train(sentences, cfg.MaxEntIterations, cfg.MaxEntLearningRate, cfg.MaxEntL2)

	t.Perceptron = perceptron.New()
	t.Perceptron.Train(sentences, cfg.PerceptronIterations)

	t.Span = span.New()
	t.Span.Train(sentences, cfg.SpanIterations)

	slog.Debug("training done",
		"sentences", len(sentences),
		"crf_weights", len(t.CRF.EmissionWeights))
	return t
}

// crfSequences converts annotated sentences to feature vector sequences for
// the CRF trainer. Unparseable tags fall back to O.
func crfSequences(sentences []corpus.Sentence, gaz feature.Gazetteers) []crf.Sequence {
	sequences := make([]crf.Sequence, 0, len(sentences))
	for _, s := range sentences {
		tokens := tokenizer.FromWords(s.Words())
		tags := make([]tag.Tag, len(s.Annotations))
		for i, a := range s.Annotations {
			t, ok := tag.Parse(a.Tag)
			if !ok {
				t = tag.O
			}
			tags[i] = t
		}
		sequences = append(sequences, crf.Sequence{
			Vectors: feature.ExtractAll(tokens, gaz),
			Tags:    tags,
		})
	}
	return sequences
}

// ModeMetrics aggregates evaluation results for one tagger.
type ModeMetrics struct {
	TokenAccuracy float64 `json:"token_accuracy"`
	Precision     float64 `json:"precision"`
	Recall        float64 `json:"recall"`
	F1            float64 `json:"f1"`
}

// Evaluate scores every model of the tagger on annotated sentences.
// Token accuracy compares BIO tags position by position; precision, recall
// and F1 compare exact entity spans (boundaries and category).
func (t *Tagger) Evaluate(sentences []corpus.Sentence) (map[Mode]ModeMetrics, error) {
	metrics := make(map[Mode]ModeMetrics)

	for _, mode := range []Mode{ModeCRF, ModeHMM, ModeMaxEnt, ModePerceptron, ModeSpan} {
		var correct, total int
		var truePos, predicted, gold int

		for _, s := range sentences {
			predTags, err := t.predictTags(s.Words(), mode)
			if err != nil {
				return nil, err
			}

			goldTags := s.Tags()
			for i := range goldTags {
				if predTags[i] == goldTags[i] {
					correct++
				}
				total++
			}

			goldSpans := span.BIOToSpans(goldTags)
			predSpans := span.BIOToSpans(predTags)
			gold += len(goldSpans)
			predicted += len(predSpans)
			goldSet := make(map[span.Span]bool, len(goldSpans))
			for _, gs := range goldSpans {
				goldSet[gs] = true
			}
			for _, ps := range predSpans {
				if goldSet[ps] {
					truePos++
				}
			}
		}

		m := ModeMetrics{}
		if total > 0 {
			m.TokenAccuracy = float64(correct) / float64(total)
		}
		if predicted > 0 {
			m.Precision = float64(truePos) / float64(predicted)
		}
		if gold > 0 {
			m.Recall = float64(truePos) / float64(gold)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		metrics[mode] = m
	}

	return metrics, nil
}

// predictTags tags pre-tokenized words with the selected model, returning
// BIO labels aligned with the input.
func (t *Tagger) predictTags(words []string, mode Mode) ([]string, error) {
	switch mode {
	case ModeCRF:
		tokens := tokenizer.FromWords(words)
		vectors := feature.ExtractAll(tokens, t.Gazetteers)
		result := t.CRF.Decode(vectors)
		labels := make([]string, len(result.BestSequence))
		for i, tg := range result.BestSequence {
			labels[i] = tg.Label()
		}
		return labels, nil
	case ModeHMM:
		return t.HMM.Predict(words), nil
	case ModeMaxEnt:
		return t.MaxEnt.Predict(words), nil
	case ModePerceptron:
		return t.Perceptron.Predict(words), nil
	case ModeSpan:
		return spansToBIO(t.Span.Predict(words), len(words)), nil
	}
	return nil, fmt.Errorf("nerbr: unknown mode %q", mode)
}
