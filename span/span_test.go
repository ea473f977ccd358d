package span

import (
	"reflect"
	"testing"

	"github.com/tupilabs/nerbr/corpus"
)

func TestBIOToSpans(t *testing.T) {
	spans := BIOToSpans([]string{"O", "B-PER", "I-PER", "O", "B-LOC"})
	want := []Span{
		{Start: 1, End: 3, Label: "PER"},
		{Start: 4, End: 5, Label: "LOC"},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %v, want %v", spans, want)
	}
}

func TestBIOToSpansTrailingEntity(t *testing.T) {
	spans := BIOToSpans([]string{"O", "B-ORG", "I-ORG"})
	want := []Span{{Start: 1, End: 3, Label: "ORG"}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %v, want %v", spans, want)
	}
}

func TestBIOToSpansOrphanInside(t *testing.T) {
	// I without a preceding B opens a new span
	spans := BIOToSpans([]string{"I-LOC", "I-LOC", "O"})
	want := []Span{{Start: 0, End: 2, Label: "LOC"}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %v, want %v", spans, want)
	}
}

func TestBIOToSpansCategoryChange(t *testing.T) {
	// I of a different category closes the open span and starts another
	spans := BIOToSpans([]string{"B-PER", "I-LOC"})
	want := []Span{
		{Start: 0, End: 1, Label: "PER"},
		{Start: 1, End: 2, Label: "LOC"},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %v, want %v", spans, want)
	}
}

func TestCandidatesOrderedByLength(t *testing.T) {
	m := New()
	m.MaxSpanLen = 2
	got := m.candidates(3)
	want := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}, {1, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTrainLearnsSpan(t *testing.T) {
	sentences := []corpus.Sentence{
		{
			Text: "Lula é presidente",
			Annotations: []corpus.Annotation{
				{Word: "Lula", Tag: "B-PER"}, {Word: "é", Tag: "O"}, {Word: "presidente", Tag: "O"},
			},
		},
	}

	m := New()
	m.Train(sentences, 5)

	if !reflect.DeepEqual(m.Tags, []string{"O", "PER"}) {
		t.Fatalf("tags = %v", m.Tags)
	}

	spans := m.Predict([]string{"Lula", "é"})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(spans), spans)
	}
	if spans[0] != (Span{Start: 0, End: 1, Label: "PER"}) {
		t.Errorf("span = %+v", spans[0])
	}
}

func TestPredictUntrained(t *testing.T) {
	m := New()
	if spans := m.Predict([]string{"Lula"}); len(spans) != 0 {
		t.Errorf("untrained model predicted %v", spans)
	}
}
