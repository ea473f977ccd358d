package nerbr

import (
	"github.com/tupilabs/nerbr/crf"
	"github.com/tupilabs/nerbr/tag"
)

// defaultCRFModel builds the CRF with curated weights for Brazilian
// Portuguese. Gazetteer membership is the strongest signal, followed by
// capitalization and contextual cue words like "presidente" or "ministério".
func defaultCRFModel() *crf.Model {
	m := crf.New()

	m.SetEmission("is_capitalized", tag.B(tag.Per), 2.8)
	m.SetEmission("is_capitalized", tag.B(tag.Org), 1.5)
	m.SetEmission("is_capitalized", tag.B(tag.Loc), 1.5)

	m.SetEmission("in_person_gazetteer", tag.B(tag.Per), 5.0)
	m.SetEmission("in_person_gazetteer", tag.I(tag.Per), 4.5)
	m.SetEmission("in_location_gazetteer", tag.B(tag.Loc), 5.0)
	m.SetEmission("in_location_gazetteer", tag.I(tag.Loc), 4.5)
	m.SetEmission("in_org_gazetteer", tag.B(tag.Org), 5.0)
	m.SetEmission("in_org_gazetteer", tag.I(tag.Org), 4.5)
	m.SetEmission("in_misc_gazetteer", tag.B(tag.Misc), 5.0)
	m.SetEmission("in_misc_gazetteer", tag.I(tag.Misc), 4.5)

	// Diminutive suffixes often mark nicknames
	m.SetEmission("suffix3=nho", tag.B(tag.Per), 1.0)
	m.SetEmission("suffix3=nha", tag.B(tag.Per), 1.0)
	m.SetEmission("suffix2=ão", tag.B(tag.Per), 0.5)
	m.SetEmission("suffix2=ão", tag.B(tag.Loc), 0.5)

	// Titles and professions preceding a person name
	m.SetEmission("prev_word=presidente", tag.B(tag.Per), 2.5)
	m.SetEmission("prev_word=governador", tag.B(tag.Per), 2.5)
	m.SetEmission("prev_word=deputado", tag.B(tag.Per), 2.0)
	m.SetEmission("prev_word=senador", tag.B(tag.Per), 2.0)
	m.SetEmission("prev_word=ministro", tag.B(tag.Per), 2.0)
	m.SetEmission("prev_word=ministra", tag.B(tag.Per), 2.0)
	m.SetEmission("prev_word=jogador", tag.B(tag.Per), 1.8)
	m.SetEmission("prev_word=atleta", tag.B(tag.Per), 1.8)
	m.SetEmission("prev_word=dr", tag.B(tag.Per), 1.8)
	m.SetEmission("prev_word=prof", tag.B(tag.Per), 1.8)
	m.SetEmission("prev_word=general", tag.B(tag.Per), 1.8)
	m.SetEmission("prev_word=escritor", tag.B(tag.Per), 1.5)
	m.SetEmission("prev_word=ator", tag.B(tag.Per), 1.5)
	m.SetEmission("prev_word=cantor", tag.B(tag.Per), 1.5)
	m.SetEmission("prev_word=dom", tag.B(tag.Per), 2.0)

	// Common first-name prefixes in Portuguese
	for _, prefix := range []string{"lu", "ma", "jo", "an", "ca", "fe", "ro", "pe", "fa", "ri"} {
		m.SetEmission("prefix2="+prefix, tag.B(tag.Per), 0.3)
	}

	m.SetEmission("prev_word=ministério", tag.B(tag.Org), 2.5)
	m.SetEmission("prev_word=instituto", tag.B(tag.Org), 2.0)
	m.SetEmission("prev_word=tribunal", tag.B(tag.Org), 2.0)
	m.SetEmission("prev_word=empresa", tag.B(tag.Org), 1.5)
	m.SetEmission("prev_word=clube", tag.B(tag.Org), 2.0)
	m.SetEmission("prev_word=equipe", tag.B(tag.Org), 1.5)
	m.SetEmission("prev_word=banco", tag.B(tag.Org), 2.0)
	m.SetEmission("prev_word=universidade", tag.B(tag.Org), 2.0)
	m.SetEmission("prev_word=startup", tag.B(tag.Org), 2.0)

	// "Petrobras", "Eletrobras"
	m.SetEmission("suffix3=ras", tag.B(tag.Org), 1.8)
	m.SetEmission("suffix3=ech", tag.B(tag.Org), 1.2)
	m.SetEmission("suffix4=bank", tag.B(tag.Org), 2.0)

	// Acronyms lean ORG, sometimes MISC
	m.SetEmission("is_all_caps", tag.B(tag.Org), 1.5)
	m.SetEmission("is_all_caps", tag.B(tag.Misc), 1.0)

	m.SetEmission("prev_word=cidade", tag.B(tag.Loc), 1.8)
	m.SetEmission("prev_word=estado", tag.B(tag.Loc), 1.8)
	m.SetEmission("prev_word=rio", tag.B(tag.Loc), 2.0)
	m.SetEmission("prev_word=região", tag.B(tag.Loc), 1.5)
	m.SetEmission("prev_word=fronteira", tag.B(tag.Loc), 1.5)
	m.SetEmission("prev_word=município", tag.B(tag.Loc), 2.0)
	m.SetEmission("prev_word=país", tag.B(tag.Loc), 1.8)
	m.SetEmission("prev_word=floresta", tag.B(tag.Loc), 1.5)
	m.SetEmission("prev_word=estádio", tag.B(tag.Loc), 2.0)
	m.SetEmission("prev_word=palácio", tag.B(tag.Loc), 2.0)
	m.SetEmission("prev_word=aeroporto", tag.B(tag.Loc), 2.0)
	m.SetEmission("prev_word=em", tag.B(tag.Loc), 0.8)
	m.SetEmission("prev_word=no", tag.B(tag.Loc), 0.8)
	m.SetEmission("prev_word=na", tag.B(tag.Loc), 0.8)
	m.SetEmission("prev_word=do", tag.B(tag.Loc), 0.5)
	m.SetEmission("prev_word=da", tag.B(tag.Loc), 0.5)

	// City name endings: Brasília, Florianópolis
	m.SetEmission("suffix3=lis", tag.B(tag.Loc), 1.2)
	m.SetEmission("suffix4=ília", tag.B(tag.Loc), 1.5)
	m.SetEmission("suffix2=as", tag.B(tag.Loc), 0.4)

	m.SetEmission("prev_word=copa", tag.B(tag.Misc), 2.0)
	m.SetEmission("prev_word=campeonato", tag.B(tag.Misc), 2.0)
	m.SetEmission("prev_word=taxa", tag.B(tag.Misc), 1.5)
	m.SetEmission("prev_word=lei", tag.B(tag.Misc), 1.5)
	m.SetEmission("prev_word=vírus", tag.B(tag.Misc), 1.8)
	m.SetEmission("prev_word=vacina", tag.B(tag.Misc), 1.0)
	m.SetEmission("prev_word=satélite", tag.B(tag.Misc), 1.8)
	m.SetEmission("prev_word=operação", tag.B(tag.Misc), 1.5)
	m.SetEmission("prev_word=fórmula", tag.B(tag.Misc), 2.0)

	m.SetEmission("BOS", tag.O, 0.5)
	m.SetEmission("bias", tag.O, 1.0)
	m.SetEmission("is_punctuation", tag.O, 5.0)
	m.SetEmission("is_digit", tag.O, 2.0)

	// Transition weights encode the BIO grammar
	for _, prev := range tag.All() {
		for _, next := range tag.All() {
			if !tag.IsValidTransition(prev, next) {
				m.SetTransition(prev, next, -8.0)
			}
		}
	}
	for _, c := range tag.Categories() {
		b, i := tag.B(c), tag.I(c)
		m.SetTransition(b, i, 4.0)
		m.SetTransition(i, i, 3.5)
		m.SetTransition(b, tag.O, 2.0)
		m.SetTransition(i, tag.O, 2.5)
		m.SetTransition(tag.O, b, 1.5)
	}
	m.SetTransition(tag.O, tag.O, 2.5)

	return m
}
