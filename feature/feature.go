// Package feature turns tokens into sparse feature vectors for the
// discriminative taggers (CRF, MaxEnt, perceptron, span model).
//
// The feature space is an unbounded string vocabulary; each token activates
// only a small subset, so vectors are stored as maps. Extraction is a pure
// function of (tokens, index, gazetteers).
package feature

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/tupilabs/nerbr/tokenizer"
)

// Vector is a sparse feature vector for one token. Values are ordinarily
// 1.0 (binary features) but may be any real number. Vectors are created
// fresh per token and never mutated after extraction.
type Vector struct {
	Features   map[string]float64 `json:"features"`
	TokenIndex int                `json:"token_index"`
}

// NewVector creates an empty vector for the token at index.
func NewVector(index int) Vector {
	return Vector{Features: make(map[string]float64), TokenIndex: index}
}

// Set records a feature value.
func (v Vector) Set(key string, val float64) {
	v.Features[key] = val
}

// Dot computes the scalar product against a weight map; absent weights
// count as 0.
func (v Vector) Dot(weights map[string]float64) float64 {
	var sum float64
	for k, val := range v.Features {
		sum += val * weights[k]
	}
	return sum
}

// Gazetteers holds four lowercase entity lookup sets. Matching is done both
// case-sensitively and against the lowercased token.
type Gazetteers struct {
	Persons       map[string]bool `json:"persons"`
	Locations     map[string]bool `json:"locations"`
	Organizations map[string]bool `json:"organizations"`
	Misc          map[string]bool `json:"misc"`
}

// NewGazetteers creates empty gazetteers.
func NewGazetteers() Gazetteers {
	return Gazetteers{
		Persons:       make(map[string]bool),
		Locations:     make(map[string]bool),
		Organizations: make(map[string]bool),
		Misc:          make(map[string]bool),
	}
}

func inSet(set map[string]bool, word, lower string) bool {
	return set[lower] || set[word]
}

// ExtractAll extracts a feature vector for every token in the sequence.
// The result is aligned 1:1 with tokens.
func ExtractAll(tokens []tokenizer.Token, gaz Gazetteers) []Vector {
	vectors := make([]Vector, len(tokens))
	for i := range tokens {
		vectors[i] = Extract(tokens, i, gaz)
	}
	return vectors
}

// Extract builds the feature vector for the token at index i, combining
// orthographic features of the word itself, a ±2 context window, positional
// markers and gazetteer membership flags.
func Extract(tokens []tokenizer.Token, i int, gaz Gazetteers) Vector {
	fv := NewVector(i)
	word := tokens[i].Text
	lower := strings.ToLower(word)

	fv.Set("word="+lower, 1.0)
	fv.Set("bias", 1.0)

	runes := []rune(word)
	if firstUpper(runes) {
		fv.Set("is_capitalized", 1.0)
	}
	if allUpper(runes) && len(runes) > 1 {
		fv.Set("is_all_caps", 1.0)
	}
	if upperInMiddle(runes) {
		fv.Set("is_mixed_case", 1.0)
	}

	lowerRunes := []rune(lower)
	for n := 2; n <= 4; n++ {
		if len(lowerRunes) >= n {
			fv.Set("prefix"+strconv.Itoa(n)+"="+string(lowerRunes[:n]), 1.0)
			fv.Set("suffix"+strconv.Itoa(n)+"="+string(lowerRunes[len(lowerRunes)-n:]), 1.0)
		}
	}

	if allDigits(runes) {
		fv.Set("is_digit", 1.0)
	}
	if strings.ContainsRune(word, '-') {
		fv.Set("has_hyphen", 1.0)
	}
	if strings.ContainsRune(word, '.') {
		fv.Set("has_period", 1.0)
	}
	if len(runes) == 1 && !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
		fv.Set("is_punctuation", 1.0)
	}

	if i == 0 {
		fv.Set("is_first", 1.0)
	}
	if i == len(tokens)-1 {
		fv.Set("is_last", 1.0)
	}

	// Context window of two tokens to each side.
	if i > 0 {
		prev := tokens[i-1].Text
		fv.Set("prev_word="+strings.ToLower(prev), 1.0)
		if firstUpper([]rune(prev)) {
			fv.Set("prev_is_capitalized", 1.0)
		}
	} else {
		fv.Set("BOS", 1.0)
	}
	if i > 1 {
		fv.Set("prev2_word="+strings.ToLower(tokens[i-2].Text), 1.0)
	}
	if i+1 < len(tokens) {
		next := tokens[i+1].Text
		fv.Set("next_word="+strings.ToLower(next), 1.0)
		if firstUpper([]rune(next)) {
			fv.Set("next_is_capitalized", 1.0)
		}
	} else {
		fv.Set("EOS", 1.0)
	}
	if i+2 < len(tokens) {
		fv.Set("next2_word="+strings.ToLower(tokens[i+2].Text), 1.0)
	}
	if i > 0 && i+1 < len(tokens) {
		fv.Set("bigram="+strings.ToLower(tokens[i-1].Text)+"_"+strings.ToLower(tokens[i+1].Text), 1.0)
	}

	if inSet(gaz.Persons, word, lower) {
		fv.Set("in_person_gazetteer", 1.0)
	}
	if inSet(gaz.Locations, word, lower) {
		fv.Set("in_location_gazetteer", 1.0)
	}
	if inSet(gaz.Organizations, word, lower) {
		fv.Set("in_org_gazetteer", 1.0)
	}
	if inSet(gaz.Misc, word, lower) {
		fv.Set("in_misc_gazetteer", 1.0)
	}

	return fv
}

func firstUpper(runes []rune) bool {
	return len(runes) > 0 && unicode.IsUpper(runes[0])
}

func allUpper(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return len(runes) > 0
}

func upperInMiddle(runes []rune) bool {
	for _, r := range runes[min(1, len(runes)):] {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(runes) > 0
}
