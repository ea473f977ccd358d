// Package tokenizer splits raw Portuguese text into tokens with byte offsets.
//
// The taggers themselves are agnostic to tokenization; they consume the
// ordered []Token this package produces. Tokens are contiguous,
// non-overlapping and ordered by Index.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single unit of text with its byte position in the original
// string. Start is inclusive, End exclusive. Index is the 0-based position
// in the token sequence.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Index int    `json:"index"`
}

// Common PT-BR abbreviations whose trailing period stays attached to the word.
var abbreviations = map[string]bool{
	"Dr": true, "Dra": true, "Sr": true, "Sra": true, "Prof": true,
	"Profa": true, "Gov": true, "Dep": true, "Sen": true, "Min": true,
	"Gen": true, "Cap": true, "Sgt": true, "Cel": true, "Brig": true,
	"Adm": true, "Des": true, "Pres": true, "Eng": true, "Arq": true,
	"km": true, "cm": true, "mm": true, "kg": true, "mg": true,
	"ml": true, "ha": true, "etc": true, "vol": true, "art": true,
	"pág": true, "tel": true, "av": true,
}

// Tokenize splits text into word, number and punctuation tokens.
//
// Words keep internal hyphens ("curou-se", "COVID-19") and abbreviation
// periods ("Dr."). Numbers keep a decimal comma or period ("3,14").
// Any other non-space character becomes a single-character token.
func Tokenize(text string) []Token {
	var tokens []Token
	pos := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += size
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			end := scanWord(text, pos)
			tokens = appendToken(tokens, text, pos, end)
			pos = end
		default:
			tokens = appendToken(tokens, text, pos, pos+size)
			pos += size
		}
	}
	return tokens
}

// Words returns only the token texts, aligned with Tokenize output.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}

func appendToken(tokens []Token, text string, start, end int) []Token {
	return append(tokens, Token{
		Text:  text[start:end],
		Start: start,
		End:   end,
		Index: len(tokens),
	})
}

// scanWord advances past a run of letters/digits, allowing a single hyphen,
// decimal separator or abbreviation period to join two runs.
func scanWord(text string, start int) int {
	pos := start
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			pos += size
			continue
		}
		// Hyphen between alphanumerics: "curou-se", "COVID-19".
		if r == '-' && nextIsAlnum(text, pos+size) {
			pos += size
			continue
		}
		// Decimal separator inside a number: "3,14", "1.5".
		if (r == ',' || r == '.') && prevIsDigit(text, pos) && nextIsDigit(text, pos+size) {
			pos += size
			continue
		}
		// Abbreviation period: "Dr.", "av.".
		if r == '.' && abbreviations[text[start:pos]] {
			pos += size
		}
		break
	}
	return pos
}

func nextIsAlnum(text string, pos int) bool {
	if pos >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func nextIsDigit(text string, pos int) bool {
	if pos >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsDigit(r)
}

func prevIsDigit(text string, pos int) bool {
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return unicode.IsDigit(r)
}

// FromWords builds a token sequence from pre-split words, e.g. corpus
// annotations. Offsets are assigned as if the words were joined by single
// spaces.
func FromWords(words []string) []Token {
	tokens := make([]Token, len(words))
	pos := 0
	for i, w := range words {
		tokens[i] = Token{Text: w, Start: pos, End: pos + len(w), Index: i}
		pos += len(w) + 1
	}
	return tokens
}

// Join reconstructs the text covered by tokens[from:to] (token indices,
// to exclusive) with single spaces; used where the original text is not
// available.
func Join(tokens []Token, from, to int) string {
	var b strings.Builder
	for i := from; i < to && i < len(tokens); i++ {
		if i > from {
			b.WriteByte(' ')
		}
		b.WriteString(tokens[i].Text)
	}
	return b.String()
}
