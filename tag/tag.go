// Package tag defines the BIO tag vocabulary used for Portuguese named
// entity recognition: Outside, plus Begin/Inside markers for each entity
// category. It also implements the BIO transition grammar and the
// reconstruction of entity spans from tagged token sequences.
package tag

import "strings"

// Category is an entity category recognized by the taggers.
type Category int

const (
	// Per covers names of people: "Machado de Assis", "Pelé".
	Per Category = iota
	// Org covers companies, institutions, public bodies, clubs: "Petrobras", "STF".
	Org
	// Loc covers countries, cities, states, rivers, regions: "Brasil", "Tietê".
	Loc
	// Misc covers everything else: events, works, laws, diseases: "Copa do Mundo", "COVID-19".
	Misc
)

// Name returns the canonical category string ("PER", "ORG", "LOC", "MISC").
func (c Category) Name() string {
	switch c {
	case Per:
		return "PER"
	case Org:
		return "ORG"
	case Loc:
		return "LOC"
	case Misc:
		return "MISC"
	}
	return ""
}

// Color returns the highlight color associated with the category.
func (c Category) Color() string {
	switch c {
	case Per:
		return "#3b82f6"
	case Org:
		return "#10b981"
	case Loc:
		return "#f59e0b"
	case Misc:
		return "#8b5cf6"
	}
	return ""
}

// ParseCategory parses a canonical category string. The second return value
// is false for unknown strings.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "PER":
		return Per, true
	case "ORG":
		return Org, true
	case "LOC":
		return Loc, true
	case "MISC":
		return Misc, true
	}
	return 0, false
}

// Categories lists all entity categories in canonical order.
func Categories() []Category {
	return []Category{Per, Org, Loc, Misc}
}

// Kind distinguishes the BIO role of a tag.
type Kind int

const (
	// Outside marks a token that is not part of any entity.
	Outside Kind = iota
	// Begin marks the first token of an entity.
	Begin
	// Inside marks a continuation token of an entity.
	Inside
)

// Tag is a BIO tag: either O, or B/I paired with a category.
// The zero value is O.
type Tag struct {
	Kind     Kind
	Category Category
}

// O is the Outside tag.
var O = Tag{Kind: Outside}

// B returns the Begin tag for a category.
func B(c Category) Tag { return Tag{Kind: Begin, Category: c} }

// I returns the Inside tag for a category.
func I(c Category) Tag { return Tag{Kind: Inside, Category: c} }

// Count is the total number of distinct tags: O plus B/I per category.
const Count = 9

// All returns every tag in its fixed index order. The order is stable across
// runs so that Viterbi tie-breaking is deterministic.
func All() []Tag {
	return []Tag{
		O,
		B(Per), I(Per),
		B(Org), I(Org),
		B(Loc), I(Loc),
		B(Misc), I(Misc),
	}
}

// Labels returns the canonical labels of All() in the same order.
func Labels() []string {
	all := All()
	labels := make([]string, len(all))
	for i, t := range all {
		labels[i] = t.Label()
	}
	return labels
}

// Index returns the tag's position in All(), usable as a matrix index.
func (t Tag) Index() int {
	if t.Kind == Outside {
		return 0
	}
	base := 1 + 2*int(t.Category)
	if t.Kind == Inside {
		return base + 1
	}
	return base
}

// Label returns the canonical string form: "O", "B-PER", "I-LOC", etc.
// This is the only external wire format for tags and round-trips via Parse.
func (t Tag) Label() string {
	switch t.Kind {
	case Begin:
		return "B-" + t.Category.Name()
	case Inside:
		return "I-" + t.Category.Name()
	}
	return "O"
}

// String implements fmt.Stringer.
func (t Tag) String() string { return t.Label() }

// Parse parses a canonical tag label. The second return value is false for
// malformed labels; parsing never panics.
func Parse(s string) (Tag, bool) {
	if s == "O" {
		return O, true
	}
	prefix, catName, found := strings.Cut(s, "-")
	if !found {
		return Tag{}, false
	}
	cat, ok := ParseCategory(catName)
	if !ok {
		return Tag{}, false
	}
	switch prefix {
	case "B":
		return B(cat), true
	case "I":
		return I(cat), true
	}
	return Tag{}, false
}

// IsEntity reports whether the tag is part of an entity (B or I).
func (t Tag) IsEntity() bool { return t.Kind != Outside }

// IsValidTransition reports whether next may follow prev under the BIO
// grammar: I-X is legal only immediately after B-X or I-X of the same
// category; every other transition is legal.
func IsValidTransition(prev, next Tag) bool {
	if next.Kind != Inside {
		return true
	}
	return prev.Kind != Outside && prev.Category == next.Category
}

// IsValidTransitionLabels is IsValidTransition over canonical labels.
// Unparseable labels are treated as O.
func IsValidTransitionLabels(prev, next string) bool {
	p, _ := Parse(prev)
	n, _ := Parse(next)
	return IsValidTransition(p, n)
}
