package maxent

import (
	"math"
	"reflect"
	"testing"

	"github.com/tupilabs/nerbr/corpus"
)

func TestTrainSimpleLearning(t *testing.T) {
	sentences := []corpus.Sentence{
		{
			Text: "Lula é presidente",
			Annotations: []corpus.Annotation{
				{Word: "Lula", Tag: "B-PER"}, {Word: "é", Tag: "O"}, {Word: "presidente", Tag: "O"},
			},
		},
		{
			Text: "Dilma foi presidente",
			Annotations: []corpus.Annotation{
				{Word: "Dilma", Tag: "B-PER"}, {Word: "foi", Tag: "O"}, {Word: "presidente", Tag: "O"},
			},
		},
	}

	m := New()
	m.Train(sentences, 20, 0.1, 0.001)

	tags := m.Predict([]string{"Lula", "foi"})
	if tags[0] != "B-PER" {
		t.Errorf("tag 0 = %q, want B-PER", tags[0])
	}
	if tags[1] != "O" {
		t.Errorf("tag 1 = %q, want O", tags[1])
	}
}

func TestTrainCollectsSortedTags(t *testing.T) {
	sentences := []corpus.Sentence{
		{Annotations: []corpus.Annotation{
			{Word: "em", Tag: "O"}, {Word: "São", Tag: "B-LOC"}, {Word: "Paulo", Tag: "I-LOC"},
		}},
	}
	m := New()
	m.Train(sentences, 1, 0.1, 0.001)

	want := []string{"B-LOC", "I-LOC", "O"}
	if !reflect.DeepEqual(m.Tags, want) {
		t.Errorf("tags = %v, want %v", m.Tags, want)
	}
}

func TestWeightPruning(t *testing.T) {
	sentences := []corpus.Sentence{
		{Annotations: []corpus.Annotation{
			{Word: "Lula", Tag: "B-PER"}, {Word: "governou", Tag: "O"},
		}},
	}
	m := New()
	m.Train(sentences, 10, 0.1, 0.001)

	for key, w := range m.Weights {
		if math.Abs(w) <= 1e-9 {
			t.Errorf("weight %q = %v should have been pruned", key, w)
		}
	}
}

func TestSoftmaxNormalizes(t *testing.T) {
	m := New()
	m.Tags = []string{"B-PER", "O"}
	probs := m.softmax([]float64{3.0, 1.0})
	if math.Abs(probs[0]+probs[1]-1.0) > 1e-12 {
		t.Errorf("probs sum to %v", probs[0]+probs[1])
	}
	if probs[0] <= probs[1] {
		t.Errorf("higher score should get higher probability: %v", probs)
	}
}
