package perceptron

import (
	"testing"

	"github.com/tupilabs/nerbr/corpus"
	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/tokenizer"
)

func smallCorpus() []corpus.Sentence {
	return []corpus.Sentence{
		{
			Text: "Lula é presidente",
			Annotations: []corpus.Annotation{
				{Word: "Lula", Tag: "B-PER"}, {Word: "é", Tag: "O"}, {Word: "presidente", Tag: "O"},
			},
		},
	}
}

func TestTrainLearnsPattern(t *testing.T) {
	m := New()
	m.Train(smallCorpus(), 5)

	tags := m.Predict([]string{"Lula", "é"})
	if tags[0] != "B-PER" {
		t.Errorf("tag 0 = %q, want B-PER", tags[0])
	}
	if tags[1] != "O" {
		t.Errorf("tag 1 = %q, want O", tags[1])
	}
}

func TestFinalizeClearsBookkeeping(t *testing.T) {
	m := New()
	m.Train(smallCorpus(), 3)

	if len(m.TotalWeights) != 0 || len(m.LastUpdate) != 0 {
		t.Error("training bookkeeping should be cleared after finalize")
	}
	if m.Steps == 0 {
		t.Error("steps should count processed tokens")
	}
}

// naiveAveraged mirrors the lazy averaging with the textbook formulation:
// after every step, add the full current weight map into the running totals.
type naiveAveraged struct {
	weights map[string]float64
	totals  map[string]float64
	steps   int
}

func (n *naiveAveraged) step(fv feature.Vector, trueTag, predTag string, mistake bool) {
	if mistake {
		for fname := range fv.Features {
			n.weights[fname+"|"+trueTag] += 1.0
			n.weights[fname+"|"+predTag] -= 1.0
		}
	}
	n.steps++
	for k, w := range n.weights {
		n.totals[k] += w
	}
}

// TestLazyAveragingMatchesNaive replays one training pass and checks that
// the lazily maintained averages equal the naive per-step accumulation.
func TestLazyAveragingMatchesNaive(t *testing.T) {
	sentences := smallCorpus()

	lazy := New()
	lazy.Tags = []string{"B-PER", "O"}
	naive := &naiveAveraged{
		weights: map[string]float64{},
		totals:  map[string]float64{},
	}

	gaz := feature.NewGazetteers()
	for iter := 0; iter < 3; iter++ {
		for _, s := range sentences {
			vectors := feature.ExtractAll(tokenizer.FromWords(s.Words()), gaz)
			for i, fv := range vectors {
				trueTag := s.Annotations[i].Tag
				pred := lazy.predictSingle(fv)
				mistake := pred != trueTag
				if mistake {
					lazy.update(fv, trueTag, pred)
				}
				lazy.Steps++
				naive.step(fv, trueTag, pred, mistake)
			}
		}
	}
	lazy.finalizeWeights()

	if lazy.Steps != naive.steps {
		t.Fatalf("step counts differ: %d vs %d", lazy.Steps, naive.steps)
	}
	for k, total := range naive.totals {
		want := total / float64(naive.steps)
		got := lazy.Weights[k]
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("averaged weight %q = %v, want %v", k, got, want)
		}
	}
}

func TestPredictEmpty(t *testing.T) {
	m := New()
	m.Train(smallCorpus(), 2)
	if got := m.Predict(nil); len(got) != 0 {
		t.Errorf("got %v for empty input", got)
	}
}
