package crf

import (
	"log/slog"

	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/tag"
)

// Sequence is one labeled training sentence: feature vectors aligned with
// gold tags.
type Sequence struct {
	Vectors []feature.Vector
	Tags    []tag.Tag
}

// TrainConfig holds CRF training hyperparameters.
type TrainConfig struct {
	Iterations   int
	LearningRate float64
	L2           float64
	Verbose      bool
}

// DefaultTrainConfig returns hyperparameters that converge on small
// annotated corpora.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Iterations:   20,
		LearningRate: 0.1,
		L2:           0.001,
	}
}

// Train fits emission and transition weights by stochastic gradient ascent
// on the conditional log-likelihood. Expected feature counts come from the
// forward-backward marginals of each sentence; the gold counts come from
// its annotation. L2 decay is applied to every weight touched by an update.
//
// Hand-set weights (see the default model in the root package) and trained
// weights are interchangeable: the decoder contract is the same.
func Train(sequences []Sequence, config TrainConfig) *Model {
	model := New()
	tags := tag.All()

	for iter := 0; iter < config.Iterations; iter++ {
		ll := 0.0
		for _, seq := range sequences {
			n := len(seq.Vectors)
			if n == 0 {
				continue
			}

			emissions := model.EmissionTable(seq.Vectors)
			fb := runForwardBackward(emissions, model.TransitionWeights)

			goldScore := 0.0
			for t, g := range seq.Tags {
				goldScore += emissions[t][g.Index()]
				if t > 0 {
					goldScore += model.TransitionWeights[seq.Tags[t-1].Index()][g.Index()]
				}
			}
			ll += goldScore - fb.logZ

			// Emission gradient: gold count minus model expectation.
			for t, fv := range seq.Vectors {
				gold := seq.Tags[t].Label()
				for feat, val := range fv.Features {
					for s, tg := range tags {
						key := feat + "|" + tg.Label()
						grad := -fb.marginals[t][s] * val
						if tg.Label() == gold {
							grad += val
						}
						w := model.EmissionWeights[key]
						w += config.LearningRate * (grad - config.L2*w)
						if w == 0 {
							delete(model.EmissionWeights, key)
						} else {
							model.EmissionWeights[key] = w
						}
					}
				}
			}

			// Transition gradient.
			if n > 1 {
				transMarg := transitionMarginals(fb, emissions, model.TransitionWeights)
				for t := 0; t < n-1; t++ {
					gp := seq.Tags[t].Index()
					gs := seq.Tags[t+1].Index()
					for p := range tags {
						for s := range tags {
							grad := -transMarg[t][p][s]
							if p == gp && s == gs {
								grad += 1.0
							}
							w := model.TransitionWeights[p][s]
							model.TransitionWeights[p][s] = w + config.LearningRate*(grad-config.L2*w)
						}
					}
				}
			}
		}

		if config.Verbose {
			slog.Debug("CRF training iteration", "iteration", iter+1, "log_likelihood", ll)
		}
	}

	return model
}
