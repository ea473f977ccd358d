package viterbi

import (
	"math"
	"testing"
)

func TestDecodeSimple(t *testing.T) {
	labels := []string{"O", "B-PER"}
	emissions := [][]float64{
		{1.0, 0.5},
		{0.3, 2.0},
	}
	transitions := [][]float64{
		{0.1, 0.2},
		{0.3, 0.1},
	}

	result := Decode(labels, emissions, transitions)
	if len(result.BestSequence) != 2 {
		t.Fatalf("sequence length = %d, want 2", len(result.BestSequence))
	}

	// Candidates:
	//   [O, O]         1.0 + 0.1 + 0.3 = 1.4
	//   [O, B-PER]     1.0 + 0.2 + 2.0 = 3.2
	//   [B-PER, O]     0.5 + 0.3 + 0.3 = 1.1
	//   [B-PER, B-PER] 0.5 + 0.1 + 2.0 = 2.6
	if got := result.BestSequence[0].Label(); got != "O" {
		t.Errorf("tag 0 = %q, want O", got)
	}
	if got := result.BestSequence[1].Label(); got != "B-PER" {
		t.Errorf("tag 1 = %q, want B-PER", got)
	}
	if math.Abs(result.BestScore-3.2) > 1e-10 {
		t.Errorf("score = %v, want 3.2", result.BestScore)
	}
}

func TestDecodeEmpty(t *testing.T) {
	result := Decode([]string{"O"}, nil, nil)
	if len(result.BestSequence) != 0 || len(result.Steps) != 0 {
		t.Errorf("empty input should decode to empty result, got %+v", result)
	}
}

func TestDecodePenalizesIllegalTransition(t *testing.T) {
	// I-PER at token 1 is strongly favored by emissions, but O -> I-PER is
	// illegal and the penalty outweighs the emission advantage.
	labels := []string{"O", "I-PER"}
	emissions := [][]float64{
		{1.0, 0.0},
		{0.0, 5.0},
	}
	transitions := [][]float64{
		{0.0, 0.0},
		{0.0, 0.0},
	}

	result := Decode(labels, emissions, transitions)
	if got := result.BestSequence[1].Label(); got != "O" {
		t.Errorf("tag 1 = %q, want O after illegal-transition penalty", got)
	}
}

func TestDecodeStepsTrace(t *testing.T) {
	labels := []string{"O", "B-LOC"}
	emissions := [][]float64{{0.5, 1.5}, {1.0, 0.2}}
	transitions := [][]float64{{0.0, 0.0}, {0.0, 0.0}}

	result := Decode(labels, emissions, transitions)
	if len(result.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(result.Steps))
	}
	if result.Steps[0].BestTag != "B-LOC" {
		t.Errorf("step 0 best = %q, want B-LOC", result.Steps[0].BestTag)
	}
	if len(result.Steps[1].Scores) != 2 {
		t.Errorf("step 1 has %d tag scores, want 2", len(result.Steps[1].Scores))
	}
}

func TestConfidences(t *testing.T) {
	labels := []string{"O", "B-PER"}
	emissions := [][]float64{{2.0, 0.0}}
	transitions := [][]float64{{0, 0}, {0, 0}}

	result := Decode(labels, emissions, transitions)
	confs := result.Confidences()
	if len(confs) != 1 {
		t.Fatalf("got %d confidences", len(confs))
	}
	want := math.Exp(2.0) / (math.Exp(2.0) + 1.0)
	if math.Abs(confs[0]-want) > 1e-12 {
		t.Errorf("confidence = %v, want %v", confs[0], want)
	}
}

func TestScoresToProbs(t *testing.T) {
	probs := ScoresToProbs([]float64{1.0, 2.0, 3.0})
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v", sum)
	}
	if !(probs[2] > probs[1] && probs[1] > probs[0]) {
		t.Errorf("probabilities not monotone: %v", probs)
	}

	// Large magnitudes must not overflow
	probs = ScoresToProbs([]float64{1000.0, 1001.0})
	if math.IsNaN(probs[0]) || math.IsNaN(probs[1]) {
		t.Errorf("softmax overflowed: %v", probs)
	}

	if got := ScoresToProbs(nil); got != nil {
		t.Errorf("nil scores should give nil, got %v", got)
	}
}
