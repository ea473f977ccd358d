package tag

import "testing"

func TestLabelRoundTrip(t *testing.T) {
	for _, tg := range All() {
		parsed, ok := Parse(tg.Label())
		if !ok {
			t.Fatalf("Parse(%q) failed", tg.Label())
		}
		if parsed != tg {
			t.Errorf("Parse(%q) = %v, want %v", tg.Label(), parsed, tg)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "X-PER", "B-DOG", "B", "I-", "o"} {
		if _, ok := Parse(s); ok {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestAllOrder(t *testing.T) {
	want := []string{"O", "B-PER", "I-PER", "B-ORG", "I-ORG", "B-LOC", "I-LOC", "B-MISC", "I-MISC"}
	labels := Labels()
	if len(labels) != Count {
		t.Fatalf("len(Labels()) = %d, want %d", len(labels), Count)
	}
	for i, l := range labels {
		if l != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, l, want[i])
		}
	}
	for i, tg := range All() {
		if tg.Index() != i {
			t.Errorf("All()[%d].Index() = %d", i, tg.Index())
		}
	}
}

func TestIsValidTransition(t *testing.T) {
	cases := []struct {
		prev, next Tag
		want       bool
	}{
		{O, O, true},
		{O, B(Per), true},
		{O, I(Per), false},
		{B(Per), I(Per), true},
		{B(Per), I(Loc), false},
		{I(Org), I(Org), true},
		{I(Org), I(Misc), false},
		{B(Loc), O, true},
		{I(Misc), B(Per), true},
	}
	for _, c := range cases {
		if got := IsValidTransition(c.prev, c.next); got != c.want {
			t.Errorf("IsValidTransition(%v, %v) = %v, want %v", c.prev, c.next, got, c.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("LOC")
	if !ok || c != Loc {
		t.Errorf("ParseCategory(LOC) = %v, %v", c, ok)
	}
	if _, ok := ParseCategory("loc"); ok {
		t.Error("ParseCategory should be case sensitive")
	}
}
