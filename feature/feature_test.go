package feature

import (
	"testing"

	"github.com/tupilabs/nerbr/tokenizer"
)

func TestExtractOrthographic(t *testing.T) {
	tokens := tokenizer.FromWords([]string{"A", "Petrobras", "lucrou"})
	fv := Extract(tokens, 1, NewGazetteers())

	for _, key := range []string{
		"word=petrobras", "bias", "is_capitalized",
		"prefix2=pe", "prefix3=pet", "prefix4=petr",
		"suffix2=as", "suffix3=ras", "suffix4=bras",
	} {
		if fv.Features[key] != 1.0 {
			t.Errorf("missing feature %q", key)
		}
	}
	if _, ok := fv.Features["is_all_caps"]; ok {
		t.Error("Petrobras is not all caps")
	}
	if _, ok := fv.Features["is_digit"]; ok {
		t.Error("Petrobras is not a digit")
	}
}

func TestExtractContextWindow(t *testing.T) {
	tokens := tokenizer.FromWords([]string{"O", "presidente", "Lula", "viajou", "hoje"})
	fv := Extract(tokens, 2, NewGazetteers())

	for _, key := range []string{
		"prev_word=presidente", "prev2_word=o",
		"next_word=viajou", "next2_word=hoje",
		"bigram=presidente_viajou",
	} {
		if fv.Features[key] != 1.0 {
			t.Errorf("missing feature %q", key)
		}
	}
	if _, ok := fv.Features["BOS"]; ok {
		t.Error("token 2 is not sentence initial")
	}
}

func TestExtractBoundaryMarkers(t *testing.T) {
	tokens := tokenizer.FromWords([]string{"Lula", "voltou"})

	first := Extract(tokens, 0, NewGazetteers())
	if first.Features["BOS"] != 1.0 || first.Features["is_first"] != 1.0 {
		t.Error("first token should carry BOS and is_first")
	}
	if _, ok := first.Features["prev_word=lula"]; ok {
		t.Error("first token has no previous word")
	}

	last := Extract(tokens, 1, NewGazetteers())
	if last.Features["EOS"] != 1.0 || last.Features["is_last"] != 1.0 {
		t.Error("last token should carry EOS and is_last")
	}
}

func TestExtractShapes(t *testing.T) {
	tokens := tokenizer.FromWords([]string{"USP", "1984", "Covid-19", ",", "McLaren"})
	gaz := NewGazetteers()

	if fv := Extract(tokens, 0, gaz); fv.Features["is_all_caps"] != 1.0 {
		t.Error("USP should be all caps")
	}
	if fv := Extract(tokens, 1, gaz); fv.Features["is_digit"] != 1.0 {
		t.Error("1984 should be is_digit")
	}
	if fv := Extract(tokens, 2, gaz); fv.Features["has_hyphen"] != 1.0 {
		t.Error("Covid-19 should have has_hyphen")
	}
	if fv := Extract(tokens, 3, gaz); fv.Features["is_punctuation"] != 1.0 {
		t.Error("comma should be is_punctuation")
	}
	if fv := Extract(tokens, 4, gaz); fv.Features["is_mixed_case"] != 1.0 {
		t.Error("McLaren should be is_mixed_case")
	}
}

func TestExtractGazetteerMatch(t *testing.T) {
	gaz := NewGazetteers()
	gaz.Persons["lula"] = true
	gaz.Locations["brasília"] = true

	tokens := tokenizer.FromWords([]string{"Lula", "visitou", "Brasília"})

	if fv := Extract(tokens, 0, gaz); fv.Features["in_person_gazetteer"] != 1.0 {
		t.Error("Lula should match the person gazetteer case-insensitively")
	}
	if fv := Extract(tokens, 1, gaz); fv.Features["in_person_gazetteer"] == 1.0 {
		t.Error("visitou should not match any gazetteer")
	}
	if fv := Extract(tokens, 2, gaz); fv.Features["in_location_gazetteer"] != 1.0 {
		t.Error("Brasília should match the location gazetteer")
	}
}

func TestDot(t *testing.T) {
	fv := NewVector(0)
	fv.Set("a", 1.0)
	fv.Set("b", 2.0)
	weights := map[string]float64{"a": 0.5, "c": 10.0}
	if got := fv.Dot(weights); got != 0.5 {
		t.Errorf("Dot = %v, want 0.5", got)
	}
}
