package corpus

import (
	"strings"

	"github.com/tupilabs/nerbr/feature"
)

// ExtractGazetteers collects known entity words from annotated sentences and
// merges them with curated lists of Brazilian people, places, organizations
// and events. All entries are lowercased; very short words are skipped to
// avoid noisy matches on articles and prepositions.
func ExtractGazetteers(sentences []Sentence) feature.Gazetteers {
	gaz := feature.NewGazetteers()

	for _, s := range sentences {
		var entity []string
		var category string
		flush := func() {
			if len(entity) == 0 {
				return
			}
			for _, word := range entity {
				insertWord(gaz, category, word)
			}
			entity = nil
		}
		for _, a := range s.Annotations {
			switch {
			case strings.HasPrefix(a.Tag, "B-"):
				flush()
				entity = []string{a.Word}
				category = strings.TrimPrefix(a.Tag, "B-")
			case strings.HasPrefix(a.Tag, "I-"):
				entity = append(entity, a.Word)
			default:
				flush()
			}
		}
		flush()
	}

	for _, p := range extraPersons {
		gaz.Persons[strings.ToLower(p)] = true
	}
	for _, l := range extraLocations {
		for _, word := range strings.Fields(l) {
			insertWord(gaz, "LOC", word)
		}
	}
	for _, o := range extraOrganizations {
		for _, word := range strings.Fields(o) {
			insertWord(gaz, "ORG", word)
		}
	}
	for _, m := range extraMisc {
		for _, word := range strings.Fields(m) {
			insertWord(gaz, "MISC", word)
		}
	}

	return gaz
}

// insertWord adds a single word to the gazetteer for category if it is long
// enough to be a useful signal. Person names tolerate shorter words than the
// other categories.
func insertWord(gaz feature.Gazetteers, category, word string) {
	lower := strings.ToLower(word)
	switch category {
	case "PER":
		if len(word) > 2 {
			gaz.Persons[lower] = true
		}
	case "LOC":
		if len(word) > 3 {
			gaz.Locations[lower] = true
		}
	case "ORG":
		if len(word) > 2 {
			gaz.Organizations[lower] = true
		}
	case "MISC":
		if len(word) > 3 {
			gaz.Misc[lower] = true
		}
	}
}

// Curated lists of well known Brazilian entities, used to seed the
// gazetteers beyond what the training corpus covers.
var extraPersons = []string{
	"Getúlio", "Vargas", "Juscelino", "Kubitschek", "Jânio", "Quadros",
	"Costa", "Silva", "Geisel", "Figueiredo", "Sarney", "Collor", "Itamar",
	"Franco", "Cardoso", "Rousseff", "Temer", "Bolsonaro", "Haddad",
	"Mantega", "Meirelles", "Guedes", "Ciro", "Alckmin", "Moro",
	"Senna", "Pelé", "Ronaldo", "Ronaldinho", "Zico", "Garrincha",
	"Neymar", "Vini", "Rodrygo", "Casemiro", "Marquinhos",
	"Gisele", "Bündchen", "Xuxa", "Ivete", "Sangalo", "Anitta",
	"Caetano", "Veloso", "Gilberto", "Gil", "Chico", "Buarque",
	"Machado", "Assis", "Guimarães", "Rosa", "Clarice", "Lispector",
	"Oswald", "Andrade", "Drummond", "Pessoa",
}

var extraLocations = []string{
	"Brasília", "São Paulo", "Rio de Janeiro", "Salvador", "Fortaleza",
	"Manaus", "Curitiba", "Recife", "Porto Alegre", "Belém", "Goiânia",
	"Florianópolis", "Maceió", "Natal", "Teresina", "Campo Grande",
	"João Pessoa", "Aracaju", "Cuiabá", "Macapá", "Porto Velho",
	"Boa Vista", "Palmas", "Rio Branco", "Vitória", "São Luís",
	"Amazônia", "Pantanal", "Cerrado", "Caatinga", "Pampa",
	"Nordeste", "Sudeste", "Norte", "Sul", "Centro-Oeste",
	"Maracanã", "Itaquerão", "Arena", "Mineirão", "Beira-Rio",
	"Planalto", "Palácio", "Congresso", "Senado", "Câmara",
	"Supremo", "STF", "STJ", "TSE", "TRF",
	"Argentina", "Chile", "Colômbia", "Peru", "Venezuela", "Uruguai",
	"Paraguai", "Bolívia", "Equador", "Qatar", "Japão", "Coreia",
	"Alemanha", "França", "Espanha", "Portugal", "Itália", "Inglaterra",
	"Estados Unidos", "China", "Rússia", "Índia", "África",
	"Europa", "Ásia", "América", "Latina", "Caribe",
	"Ipiranga", "Tietê", "São Francisco", "Paraná", "Tocantins",
	"Xingu", "Negro", "Solimões", "Tapajós",
}

var extraOrganizations = []string{
	"Petrobras", "Vale", "Embraer", "Nubank", "Itaú", "Bradesco", "Santander",
	"Caixa", "Econômica", "Federal", "BNDES", "IBGE", "INPE", "Fiocruz",
	"Anvisa", "Anatel", "Aneel", "ANS", "ANP", "CADE",
	"PT", "PL", "MDB", "PSDB", "PDT", "PSB", "Republicanos",
	"Podemos", "União", "Brasil", "Solidariedade", "Avante",
	"Flamengo", "Palmeiras", "Corinthians", "São Paulo", "Grêmio",
	"Internacional", "Atlético", "Cruzeiro", "Fluminense", "Vasco",
	"Botafogo", "Santos", "Sport", "Bahia", "Ceará", "Fortaleza",
	"McLaren", "Ferrari", "Mercedes", "Red Bull", "Alpine",
	"ONU", "UNESCO", "UNICEF", "OMS", "FMI", "Banco Mundial",
	"BRICS", "Mercosul", "ALBA", "UNASUL", "CELAC",
	"FIFA", "CBF", "COI", "COB",
	"USP", "Unicamp", "UFRJ", "UnB", "UFMG", "UFRGS",
	"Globo", "Record", "SBT", "Band", "CNN Brasil", "UOL", "Folha",
	"Estadão", "O Globo", "Veja", "Época", "IstoÉ",
}

var extraMisc = []string{
	"Copa do Mundo", "Olimpíadas", "Jogos Olímpicos", "Paralímpicos",
	"Libertadores", "Copa América", "Europeu", "Champions League",
	"Fórmula 1", "MotoGP", "Rally Dakar",
	"Carnaval", "Réveillon", "Natal", "São João", "Festa Junina",
	"COVID-19", "Dengue", "Febre Amarela", "Zika", "Malária",
	"PIB", "Selic", "IPCA", "IBOV", "FGTS", "INSS", "SUS",
	"Constituição", "Marco Civil", "Lei Maria da Penha", "ECA",
	"Operação Lava Jato", "Mensalão", "Privatizações",
	"Independência", "República", "Proclamação", "Abolição",
	"Inconfidência Mineira", "Revolução de 1930", "AI-5",
	"Amazônia-1", "SGDC", "VLS",
	"Gabriela Cravo e Canela", "Grande Sertão Veredas",
}
