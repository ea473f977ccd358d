// Package viterbi implements the dynamic program shared by every sequence
// tagger: given per-token emission scores and a transition-score matrix it
// returns the highest-scoring tag sequence in O(N*T^2).
//
// The decoder is agnostic to where the scores come from. The CRF feeds it
// unnormalized potentials; the HMM feeds it log-probabilities with the start
// distribution folded into the first emission column. Transitions the BIO
// grammar forbids are not rejected, only penalized, so decoding still
// returns a usable sequence when weights are inconsistent or untrained.
package viterbi

import (
	"math"

	"github.com/tupilabs/nerbr/tag"
)

// IllegalTransitionPenalty is subtracted from a path score whenever the
// chosen predecessor violates the BIO grammar.
const IllegalTransitionPenalty = 10.0

// TagScore is the diagnostic score breakdown for one tag at one step.
type TagScore struct {
	Tag        string  `json:"tag"`
	Score      float64 `json:"score"`
	BestPrev   string  `json:"best_prev"`
	Emission   float64 `json:"emission"`
	Transition float64 `json:"transition"`
}

// Step is the diagnostic trace of one token position: the accumulated score
// per tag plus the running best. Steps are retained for visualization only;
// nothing downstream consumes them.
type Step struct {
	TokenIndex int        `json:"token_index"`
	Scores     []TagScore `json:"scores"`
	BestTag    string     `json:"best_tag"`
	BestScore  float64    `json:"best_score"`
}

// Result is the decoded best sequence with its score and per-step trace.
type Result struct {
	BestSequence []tag.Tag `json:"best_sequence"`
	BestScore    float64   `json:"best_score"`
	Steps        []Step    `json:"steps"`
}

// Confidences returns, per token, the softmax probability of the chosen tag
// against the other tags' accumulated scores at that step.
func (r Result) Confidences() []float64 {
	confs := make([]float64, len(r.Steps))
	for i, step := range r.Steps {
		scores := make([]float64, len(step.Scores))
		chosen := 0
		for j, ts := range step.Scores {
			scores[j] = ts.Score
			if ts.Tag == r.BestSequence[i].Label() {
				chosen = j
			}
		}
		confs[i] = ScoresToProbs(scores)[chosen]
	}
	return confs
}

// Decode runs the Viterbi dynamic program.
//
// labels names the tag inventory; emissions[t][s] scores label s at token t
// and transitions[p][s] scores label p followed by label s. Labels must be
// canonical BIO strings so grammar legality can be checked. An empty
// emissions table yields an empty result.
func Decode(labels []string, emissions, transitions [][]float64) Result {
	n := len(emissions)
	if n == 0 {
		return Result{}
	}
	nTags := len(labels)
	tags := make([]tag.Tag, nTags)
	for s, l := range labels {
		tags[s], _ = tag.Parse(l)
	}

	scores := make([]float64, nTags)
	backptr := make([][]int, n)
	steps := make([]Step, 0, n)

	// Token 0: no incoming transition, emission only.
	backptr[0] = make([]int, nTags)
	for s := range scores {
		scores[s] = emissions[0][s]
		backptr[0][s] = s
	}
	best0, bestScore0 := argmax(scores)
	step0 := Step{TokenIndex: 0, BestTag: labels[best0], BestScore: bestScore0}
	for s := range scores {
		step0.Scores = append(step0.Scores, TagScore{
			Tag:      labels[s],
			Score:    scores[s],
			BestPrev: labels[s],
			Emission: emissions[0][s],
		})
	}
	steps = append(steps, step0)

	for t := 1; t < n; t++ {
		next := make([]float64, nTags)
		backptr[t] = make([]int, nTags)
		step := Step{TokenIndex: t}

		for s := range next {
			bestPrev := 0
			bestPrevScore := math.Inf(-1)
			bestTrans := 0.0
			for p := range scores {
				score := scores[p] + transitions[p][s]
				if score > bestPrevScore {
					bestPrevScore = score
					bestPrev = p
					bestTrans = transitions[p][s]
				}
			}

			next[s] = bestPrevScore + emissions[t][s]
			if !tag.IsValidTransition(tags[bestPrev], tags[s]) {
				next[s] -= IllegalTransitionPenalty
			}
			backptr[t][s] = bestPrev

			step.Scores = append(step.Scores, TagScore{
				Tag:        labels[s],
				Score:      next[s],
				BestPrev:   labels[bestPrev],
				Emission:   emissions[t][s],
				Transition: bestTrans,
			})
		}

		scores = next
		bestS, bestScore := argmax(scores)
		step.BestTag = labels[bestS]
		step.BestScore = bestScore
		steps = append(steps, step)
	}

	last, total := argmax(scores)
	seq := make([]tag.Tag, n)
	seq[n-1] = tags[last]
	for t := n - 1; t > 0; t-- {
		last = backptr[t][last]
		seq[t-1] = tags[last]
	}

	return Result{BestSequence: seq, BestScore: total, Steps: steps}
}

func argmax(scores []float64) (int, float64) {
	best := 0
	bestScore := math.Inf(-1)
	for i, s := range scores {
		if s > bestScore {
			bestScore = s
			best = i
		}
	}
	return best, bestScore
}

// ScoresToProbs converts raw scores into a probability distribution via a
// numerically stable softmax (max subtracted before exponentiating). When
// the exponentials sum to zero the distribution falls back to uniform.
func ScoresToProbs(scores []float64) []float64 {
	if len(scores) == 0 {
		return nil
	}
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	if sum == 0 {
		uniform := 1.0 / float64(len(scores))
		for i := range probs {
			probs[i] = uniform
		}
		return probs
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
