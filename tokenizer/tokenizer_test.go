package tokenizer

import (
	"reflect"
	"testing"
)

func texts(tokens []Token) []string {
	return Words(tokens)
}

func TestTokenizeBasic(t *testing.T) {
	got := texts(Tokenize("Lula viajou para Brasília."))
	want := []string{"Lula", "viajou", "para", "Brasília", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeHyphenatedWords(t *testing.T) {
	got := texts(Tokenize("A Covid-19 curou-se sozinha"))
	want := []string{"A", "Covid-19", "curou-se", "sozinha"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeDecimalNumbers(t *testing.T) {
	got := texts(Tokenize("taxa de 10,5 ou 1.5"))
	want := []string{"taxa", "de", "10,5", "ou", "1.5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeAbbreviations(t *testing.T) {
	got := texts(Tokenize("O Dr. Silva mora na av. Paulista"))
	want := []string{"O", "Dr.", "Silva", "mora", "na", "av.", "Paulista"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeSentencePeriodNotAttached(t *testing.T) {
	got := texts(Tokenize("Ele chegou."))
	want := []string{"Ele", "chegou", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeOffsets(t *testing.T) {
	text := "São Paulo, Brasil"
	tokens := Tokenize(text)
	for _, tok := range tokens {
		if text[tok.Start:tok.End] != tok.Text {
			t.Errorf("token %d: text[%d:%d] = %q, want %q",
				tok.Index, tok.Start, tok.End, text[tok.Start:tok.End], tok.Text)
		}
	}
	if tokens[2].Text != "," {
		t.Errorf("token 2 = %q, want comma", tokens[2].Text)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("got %d tokens, want 0", len(got))
	}
	if got := Tokenize("   \n\t "); len(got) != 0 {
		t.Errorf("got %d tokens for whitespace, want 0", len(got))
	}
}

func TestFromWords(t *testing.T) {
	tokens := FromWords([]string{"Ana", "chegou"})
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens", len(tokens))
	}
	if tokens[0].Start != 0 || tokens[0].End != 3 {
		t.Errorf("token 0 offsets = [%d, %d]", tokens[0].Start, tokens[0].End)
	}
	if tokens[1].Start != 4 || tokens[1].Index != 1 {
		t.Errorf("token 1 start=%d index=%d", tokens[1].Start, tokens[1].Index)
	}
}

func TestJoin(t *testing.T) {
	tokens := FromWords([]string{"Rio", "de", "Janeiro", "hoje"})
	if got := Join(tokens, 0, 3); got != "Rio de Janeiro" {
		t.Errorf("Join = %q", got)
	}
	if got := Join(tokens, 2, 2); got != "" {
		t.Errorf("empty Join = %q", got)
	}
}
