package tag

import (
	"strings"

	"github.com/tupilabs/nerbr/tokenizer"
)

// TaggedToken pairs a token with its predicted tag and a confidence in
// [0, 1].
type TaggedToken struct {
	Token      tokenizer.Token `json:"token"`
	Tag        Tag             `json:"-"`
	Label      string          `json:"tag"`
	Confidence float64         `json:"confidence"`
}

// NewTaggedToken builds a TaggedToken with Label kept in sync with Tag.
func NewTaggedToken(tok tokenizer.Token, t Tag, confidence float64) TaggedToken {
	return TaggedToken{Token: tok, Tag: t, Label: t.Label(), Confidence: confidence}
}

// EntitySpan is a contiguous entity reconstructed from BIO tags.
// StartToken/EndToken are inclusive token indices; Start/End are byte
// offsets into the original text.
type EntitySpan struct {
	Text       string   `json:"text"`
	Category   Category `json:"-"`
	Label      string   `json:"category"`
	StartToken int      `json:"start_token"`
	EndToken   int      `json:"end_token"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Confidence float64  `json:"confidence"`
}

// SpansFromTagged folds a BIO-tagged token sequence into entity spans.
//
// A B-X tag opens a span; immediately following I-X tags of the same
// category extend it; anything else closes it. Span confidence is the mean
// of its tokens' confidences. Every tagger's output passes through this one
// function so callers see a uniform EntitySpan shape.
//
// originalText supplies exact surface text via byte offsets; pass "" when it
// is unavailable and the span text is joined from token texts instead.
func SpansFromTagged(tagged []TaggedToken, originalText string) []EntitySpan {
	var spans []EntitySpan
	i := 0
	for i < len(tagged) {
		if tagged[i].Tag.Kind != Begin {
			i++
			continue
		}
		cat := tagged[i].Tag.Category
		startTok := tagged[i].Token.Index
		startByte := tagged[i].Token.Start
		endTok := startTok
		endByte := tagged[i].Token.End
		confSum := tagged[i].Confidence
		count := 1

		j := i + 1
		for j < len(tagged) && tagged[j].Tag.Kind == Inside && tagged[j].Tag.Category == cat {
			endTok = tagged[j].Token.Index
			endByte = tagged[j].Token.End
			confSum += tagged[j].Confidence
			count++
			j++
		}

		text := spanText(tagged[i:j], originalText, startByte, endByte)
		spans = append(spans, EntitySpan{
			Text:       text,
			Category:   cat,
			Label:      cat.Name(),
			StartToken: startTok,
			EndToken:   endTok,
			Start:      startByte,
			End:        endByte,
			Confidence: confSum / float64(count),
		})
		i = j
	}
	return spans
}

func spanText(tagged []TaggedToken, originalText string, start, end int) string {
	if originalText != "" && start >= 0 && end <= len(originalText) && start < end {
		return strings.TrimSpace(originalText[start:end])
	}
	parts := make([]string, len(tagged))
	for i, tt := range tagged {
		parts[i] = tt.Token.Text
	}
	return strings.Join(parts, " ")
}
