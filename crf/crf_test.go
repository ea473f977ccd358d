package crf

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tupilabs/nerbr/feature"
	"github.com/tupilabs/nerbr/tag"
	"github.com/tupilabs/nerbr/tokenizer"
)

func vectorsFor(words ...string) []feature.Vector {
	return feature.ExtractAll(tokenizer.FromWords(words), feature.NewGazetteers())
}

func TestEmissionScore(t *testing.T) {
	m := New()
	m.SetEmission("is_capitalized", tag.B(tag.Per), 2.0)
	m.SetEmission("bias", tag.B(tag.Per), 0.5)
	m.SetEmission("is_capitalized", tag.O, -1.0)

	fv := feature.NewVector(0)
	fv.Set("is_capitalized", 1.0)
	fv.Set("bias", 1.0)

	if got := m.EmissionScore(fv, tag.B(tag.Per)); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("B-PER score = %v, want 2.5", got)
	}
	if got := m.EmissionScore(fv, tag.O); math.Abs(got-(-1.0)) > 1e-12 {
		t.Errorf("O score = %v, want -1.0", got)
	}
	if got := m.EmissionScore(fv, tag.B(tag.Loc)); got != 0 {
		t.Errorf("B-LOC score = %v, want 0", got)
	}
}

func TestTransitionScore(t *testing.T) {
	m := New()
	m.SetTransition(tag.B(tag.Per), tag.I(tag.Per), 3.0)
	if got := m.TransitionScore(tag.B(tag.Per), tag.I(tag.Per)); got != 3.0 {
		t.Errorf("got %v, want 3.0", got)
	}
	if got := m.TransitionScore(tag.O, tag.O); got != 0 {
		t.Errorf("unset transition = %v, want 0", got)
	}
}

func TestDecodePrefersWeightedPath(t *testing.T) {
	m := New()
	m.SetEmission("is_capitalized", tag.B(tag.Per), 5.0)
	m.SetEmission("is_capitalized", tag.O, -3.0)
	m.SetEmission("bias", tag.O, 1.0)
	m.SetTransition(tag.B(tag.Per), tag.I(tag.Per), 3.0)

	vectors := vectorsFor("Lula", "governou")
	seq := m.Predict(vectors)

	if seq[0] != tag.B(tag.Per) {
		t.Errorf("token 0 = %v, want B-PER", seq[0])
	}
	if seq[1] != tag.O {
		t.Errorf("token 1 = %v, want O", seq[1])
	}
}

func TestEmissionTableShape(t *testing.T) {
	m := New()
	table := m.EmissionTable(vectorsFor("Ana", "chegou", "hoje"))
	if len(table) != 3 {
		t.Fatalf("got %d rows, want 3", len(table))
	}
	for _, row := range table {
		if len(row) != tag.Count {
			t.Fatalf("row has %d columns, want %d", len(row), tag.Count)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	m := New()
	result := m.Decode(nil)
	if len(result.BestSequence) != 0 {
		t.Errorf("empty input decoded to %v", result.BestSequence)
	}
}

func TestSaveLoadModel(t *testing.T) {
	m := New()
	m.SetEmission("word=lula", tag.B(tag.Per), 4.2)
	m.SetTransition(tag.O, tag.B(tag.Per), 1.5)

	path := filepath.Join(t.TempDir(), "model.json")
	if err := SaveModel(m, path); err != nil {
		t.Fatalf("SaveModel: %v", err)
	}
	loaded, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	if got := loaded.EmissionWeights["word=lula|B-PER"]; got != 4.2 {
		t.Errorf("emission weight = %v, want 4.2", got)
	}
	if got := loaded.TransitionScore(tag.O, tag.B(tag.Per)); got != 1.5 {
		t.Errorf("transition weight = %v, want 1.5", got)
	}
}

func TestLoadModelMissing(t *testing.T) {
	if _, err := LoadModel(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := os.Stat("nope.json"); err == nil {
		t.Error("load should not create the file")
	}
}

func TestTrainLearnsSimplePattern(t *testing.T) {
	// "Lula" is always B-PER, the rest always O.
	sentences := [][2][]string{
		{{"Lula", "governou", "o", "país"}, {"B-PER", "O", "O", "O"}},
		{{"hoje", "Lula", "viajou"}, {"O", "B-PER", "O"}},
	}

	var sequences []Sequence
	for _, s := range sentences {
		tags := make([]tag.Tag, len(s[1]))
		for i, l := range s[1] {
			tags[i], _ = tag.Parse(l)
		}
		sequences = append(sequences, Sequence{
			Vectors: vectorsFor(s[0]...),
			Tags:    tags,
		})
	}

	model := Train(sequences, TrainConfig{Iterations: 50, LearningRate: 0.2, L2: 0.0001})

	seq := model.Predict(vectorsFor("Lula", "governou"))
	if seq[0] != tag.B(tag.Per) {
		t.Errorf("token 0 = %v, want B-PER", seq[0])
	}
	if seq[1] != tag.O {
		t.Errorf("token 1 = %v, want O", seq[1])
	}
}

func TestForwardBackwardMarginalsSumToOne(t *testing.T) {
	emissions := [][]float64{
		{1.0, 0.5, 0.2, 0, 0, 0, 0, 0, 0},
		{0.3, 2.0, 0.1, 0, 0, 0, 0, 0, 0},
	}
	trans := make([][]float64, tag.Count)
	for i := range trans {
		trans[i] = make([]float64, tag.Count)
	}

	fb := runForwardBackward(emissions, trans)
	for t1, row := range fb.marginals {
		var sum float64
		for _, p := range row {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("marginals at %d sum to %v", t1, sum)
		}
	}
}
