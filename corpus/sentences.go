package corpus

// Builtin returns the embedded Brazilian Portuguese corpus. The sentences
// cover health, wellness, religion, history, economy, sports, science,
// culture, environment and a few deliberately ambiguous cases.
func Builtin() []Sentence {
	return []Sentence{
		{
			Text:   "A Fiocruz desenvolveu a vacina contra a dengue aprovada pela Anvisa em 2023.",
			Domain: "saúde",
			Annotations: []Annotation{
				{"A", "O"}, {"Fiocruz", "B-ORG"}, {"desenvolveu", "O"}, {"a", "O"},
				{"vacina", "O"}, {"contra", "O"}, {"a", "O"}, {"dengue", "B-MISC"},
				{"aprovada", "O"}, {"pela", "O"}, {"Anvisa", "B-ORG"}, {"em", "O"}, {"2023", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Hospital Albert Einstein em São Paulo é referência em cardiologia e oncologia no Brasil.",
			Domain: "saúde",
			Annotations: []Annotation{
				{"O", "O"}, {"Hospital", "B-ORG"}, {"Albert", "I-ORG"}, {"Einstein", "I-ORG"},
				{"em", "O"}, {"São", "B-LOC"}, {"Paulo", "I-LOC"}, {"é", "O"},
				{"referência", "O"}, {"em", "O"}, {"cardiologia", "O"}, {"e", "O"},
				{"oncologia", "O"}, {"no", "O"}, {"Brasil", "B-LOC"}, {".", "O"},
			},
		},
		{
			Text:   "A pesquisadora Margareth Dalcolmo foi um dos principais rostos da ciência durante a pandemia de Covid-19.",
			Domain: "saúde",
			Annotations: []Annotation{
				{"A", "O"}, {"pesquisadora", "O"},
				{"Margareth", "B-PER"}, {"Dalcolmo", "I-PER"},
				{"foi", "O"}, {"um", "O"}, {"dos", "O"}, {"principais", "O"},
				{"rostos", "O"}, {"da", "O"}, {"ciência", "O"}, {"durante", "O"},
				{"a", "O"}, {"pandemia", "O"}, {"de", "O"}, {"Covid-19", "B-MISC"}, {".", "O"},
			},
		},
		{
			Text:   "O Instituto Butantan é responsável por produzir milhões de doses de vacinas para o Sistema Único de Saúde.",
			Domain: "saúde",
			Annotations: []Annotation{
				{"O", "O"}, {"Instituto", "B-ORG"}, {"Butantan", "I-ORG"},
				{"é", "O"}, {"responsável", "O"}, {"por", "O"}, {"produzir", "O"},
				{"milhões", "O"}, {"de", "O"}, {"doses", "O"}, {"de", "O"},
				{"vacinas", "O"}, {"para", "O"}, {"o", "O"},
				{"Sistema", "B-ORG"}, {"Único", "I-ORG"}, {"de", "I-ORG"}, {"Saúde", "I-ORG"}, {".", "O"},
			},
		},
		{
			Text:   "O médico Drauzio Varella é um dos mais conhecidos divulgadores científicos do Brasil.",
			Domain: "saúde",
			Annotations: []Annotation{
				{"O", "O"}, {"médico", "O"}, {"Drauzio", "B-PER"}, {"Varella", "I-PER"},
				{"é", "O"}, {"um", "O"}, {"dos", "O"}, {"mais", "O"}, {"conhecidos", "O"},
				{"divulgadores", "O"}, {"científicos", "O"}, {"do", "O"}, {"Brasil", "B-LOC"}, {".", "O"},
			},
		},
		{
			Text:   "A Organização Mundial da Saúde declarou o fim da emergência global da Covid-19 em maio de 2023.",
			Domain: "saúde",
			Annotations: []Annotation{
				{"A", "O"}, {"Organização", "B-ORG"}, {"Mundial", "I-ORG"}, {"da", "I-ORG"}, {"Saúde", "I-ORG"},
				{"declarou", "O"}, {"o", "O"}, {"fim", "O"}, {"da", "O"}, {"emergência", "O"},
				{"global", "O"}, {"da", "O"}, {"Covid-19", "B-MISC"}, {"em", "O"},
				{"maio", "O"}, {"de", "O"}, {"2023", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Centro de Bem-Estar Animal de Curitiba oferece atendimento veterinário gratuito à população.",
			Domain: "bem-estar",
			Annotations: []Annotation{
				{"O", "O"}, {"Centro", "B-ORG"}, {"de", "I-ORG"}, {"Bem-Estar", "I-ORG"},
				{"Animal", "I-ORG"}, {"de", "O"}, {"Curitiba", "B-LOC"},
				{"oferece", "O"}, {"atendimento", "O"}, {"veterinário", "O"},
				{"gratuito", "O"}, {"à", "O"}, {"população", "O"}, {".", "O"},
			},
		},
		{
			Text:   "A nutricionista Ana Paula Torres recomenda a dieta mediterrânea para a prevenção de doenças cardiovasculares.",
			Domain: "bem-estar",
			Annotations: []Annotation{
				{"A", "O"}, {"nutricionista", "O"},
				{"Ana", "B-PER"}, {"Paula", "I-PER"}, {"Torres", "I-PER"},
				{"recomenda", "O"}, {"a", "O"}, {"dieta", "O"}, {"mediterrânea", "B-MISC"},
				{"para", "O"}, {"a", "O"}, {"prevenção", "O"}, {"de", "O"},
				{"doenças", "O"}, {"cardiovasculares", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Parque Estadual da Cantareira em São Paulo é ideal para trilhas e reconexão com a natureza.",
			Domain: "bem-estar",
			Annotations: []Annotation{
				{"O", "O"}, {"Parque", "B-LOC"}, {"Estadual", "I-LOC"}, {"da", "I-LOC"}, {"Cantareira", "I-LOC"},
				{"em", "O"}, {"São", "B-LOC"}, {"Paulo", "I-LOC"},
				{"é", "O"}, {"ideal", "O"}, {"para", "O"}, {"trilhas", "O"}, {"e", "O"},
				{"reconexão", "O"}, {"com", "O"}, {"a", "O"}, {"natureza", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O padre Fábio de Melo é um dos sacerdotes mais populares do Brasil e autor de diversos livros espirituais.",
			Domain: "religião",
			Annotations: []Annotation{
				{"O", "O"}, {"padre", "O"}, {"Fábio", "B-PER"}, {"de", "I-PER"}, {"Melo", "I-PER"},
				{"é", "O"}, {"um", "O"}, {"dos", "O"}, {"sacerdotes", "O"}, {"mais", "O"},
				{"populares", "O"}, {"do", "O"}, {"Brasil", "B-LOC"}, {"e", "O"},
				{"autor", "O"}, {"de", "O"}, {"diversos", "O"}, {"livros", "O"}, {"espirituais", "O"}, {".", "O"},
			},
		},
		{
			Text:   "A Basílica de Nossa Senhora de Nazaré em Belém recebe milhões de fiéis durante o Círio de Nazaré.",
			Domain: "religião",
			Annotations: []Annotation{
				{"A", "O"}, {"Basílica", "B-LOC"}, {"de", "I-LOC"}, {"Nossa", "I-LOC"},
				{"Senhora", "I-LOC"}, {"de", "I-LOC"}, {"Nazaré", "I-LOC"},
				{"em", "O"}, {"Belém", "B-LOC"}, {"recebe", "O"}, {"milhões", "O"},
				{"de", "O"}, {"fiéis", "O"}, {"durante", "O"}, {"o", "O"},
				{"Círio", "B-MISC"}, {"de", "I-MISC"}, {"Nazaré", "I-MISC"}, {".", "O"},
			},
		},
		{
			Text:   "Allan Kardec codificou o Espiritismo na França no século XIX, obra que se tornou base para o espiritismo brasileiro.",
			Domain: "religião",
			Annotations: []Annotation{
				{"Allan", "B-PER"}, {"Kardec", "I-PER"}, {"codificou", "O"},
				{"o", "O"}, {"Espiritismo", "B-MISC"}, {"na", "O"}, {"França", "B-LOC"},
				{"no", "O"}, {"século", "O"}, {"XIX", "O"}, {",", "O"}, {"obra", "O"},
				{"que", "O"}, {"se", "O"}, {"tornou", "O"}, {"base", "O"},
				{"para", "O"}, {"o", "O"}, {"espiritismo", "O"}, {"brasileiro", "O"}, {".", "O"},
			},
		},
		{
			Text:   "Dom Pedro I proclamou a Independência do Brasil às margens do Rio Ipiranga em 1822.",
			Domain: "história",
			Annotations: []Annotation{
				{"Dom", "B-PER"}, {"Pedro", "I-PER"}, {"I", "I-PER"}, {"proclamou", "O"}, {"a", "O"},
				{"Independência", "B-MISC"}, {"do", "I-MISC"}, {"Brasil", "I-MISC"},
				{"às", "O"}, {"margens", "O"}, {"do", "O"}, {"Rio", "B-LOC"}, {"Ipiranga", "I-LOC"},
				{"em", "O"}, {"1822", "O"}, {".", "O"},
			},
		},
		{
			Text:   "Tiradentes foi enforcado em 21 de abril de 1792 no Rio de Janeiro por liderar a Inconfidência Mineira.",
			Domain: "história",
			Annotations: []Annotation{
				{"Tiradentes", "B-PER"}, {"foi", "O"}, {"enforcado", "O"}, {"em", "O"},
				{"21", "O"}, {"de", "O"}, {"abril", "O"}, {"de", "O"}, {"1792", "O"},
				{"no", "O"}, {"Rio", "B-LOC"}, {"de", "I-LOC"}, {"Janeiro", "I-LOC"},
				{"por", "O"}, {"liderar", "O"}, {"a", "O"},
				{"Inconfidência", "B-MISC"}, {"Mineira", "I-MISC"}, {".", "O"},
			},
		},
		{
			Text:   "Zumbi dos Palmares foi o líder do Quilombo dos Palmares e símbolo da resistência negra no Brasil colonial.",
			Domain: "história",
			Annotations: []Annotation{
				{"Zumbi", "B-PER"}, {"dos", "I-PER"}, {"Palmares", "I-PER"}, {"foi", "O"},
				{"o", "O"}, {"líder", "O"}, {"do", "O"}, {"Quilombo", "B-LOC"},
				{"dos", "I-LOC"}, {"Palmares", "I-LOC"}, {"e", "O"}, {"símbolo", "O"},
				{"da", "O"}, {"resistência", "O"}, {"negra", "O"}, {"no", "O"},
				{"Brasil", "B-LOC"}, {"colonial", "O"}, {".", "O"},
			},
		},
		{
			Text:   "Getúlio Vargas governou o Brasil em dois períodos distintos e criou a Consolidação das Leis do Trabalho.",
			Domain: "história",
			Annotations: []Annotation{
				{"Getúlio", "B-PER"}, {"Vargas", "I-PER"}, {"governou", "O"}, {"o", "O"},
				{"Brasil", "B-LOC"}, {"em", "O"}, {"dois", "O"}, {"períodos", "O"},
				{"distintos", "O"}, {"e", "O"}, {"criou", "O"}, {"a", "O"},
				{"Consolidação", "B-MISC"}, {"das", "I-MISC"}, {"Leis", "I-MISC"},
				{"do", "I-MISC"}, {"Trabalho", "I-MISC"}, {".", "O"},
			},
		},
		{
			Text:   "Santos Dumont realizou o primeiro voo reconhecido da história com o 14-Bis em Paris em 1906.",
			Domain: "história",
			Annotations: []Annotation{
				{"Santos", "B-PER"}, {"Dumont", "I-PER"}, {"realizou", "O"}, {"o", "O"},
				{"primeiro", "O"}, {"voo", "O"}, {"reconhecido", "O"}, {"da", "O"},
				{"história", "O"}, {"com", "O"}, {"o", "O"},
				{"14-Bis", "B-MISC"}, {"em", "O"}, {"Paris", "B-LOC"}, {"em", "O"}, {"1906", "O"}, {".", "O"},
			},
		},
		{
			Text:   "A Petrobras anunciou lucro recorde de 50 bilhões de reais no terceiro trimestre.",
			Domain: "economia",
			Annotations: []Annotation{
				{"A", "O"}, {"Petrobras", "B-ORG"}, {"anunciou", "O"}, {"lucro", "O"}, {"recorde", "O"},
				{"de", "O"}, {"50", "O"}, {"bilhões", "O"}, {"de", "O"}, {"reais", "O"},
				{"no", "O"}, {"terceiro", "O"}, {"trimestre", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Banco Central do Brasil manteve a taxa Selic em 10,5% ao ano.",
			Domain: "economia",
			Annotations: []Annotation{
				{"O", "O"}, {"Banco", "B-ORG"}, {"Central", "I-ORG"}, {"do", "I-ORG"}, {"Brasil", "I-ORG"},
				{"manteve", "O"}, {"a", "O"}, {"taxa", "O"}, {"Selic", "B-MISC"},
				{"em", "O"}, {"10,5%", "O"}, {"ao", "O"}, {"ano", "O"}, {".", "O"},
			},
		},
		{
			Text:   "A Embraer assinou contrato com a Boeing para fornecimento de peças aeronáuticas.",
			Domain: "economia",
			Annotations: []Annotation{
				{"A", "O"}, {"Embraer", "B-ORG"}, {"assinou", "O"}, {"contrato", "O"},
				{"com", "O"}, {"a", "O"}, {"Boeing", "B-ORG"}, {"para", "O"}, {"fornecimento", "O"},
				{"de", "O"}, {"peças", "O"}, {"aeronáuticas", "O"}, {".", "O"},
			},
		},
		{
			Text:   "Pelé é considerado o maior jogador de futebol de todos os tempos.",
			Domain: "esportes",
			Annotations: []Annotation{
				{"Pelé", "B-PER"}, {"é", "O"}, {"considerado", "O"}, {"o", "O"}, {"maior", "O"},
				{"jogador", "O"}, {"de", "O"}, {"futebol", "O"}, {"de", "O"}, {"todos", "O"},
				{"os", "O"}, {"tempos", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Flamengo venceu o Fluminense por 3 a 1 no Maracanã pelo Campeonato Brasileiro.",
			Domain: "esportes",
			Annotations: []Annotation{
				{"O", "O"}, {"Flamengo", "B-ORG"}, {"venceu", "O"}, {"o", "O"},
				{"Fluminense", "B-ORG"}, {"por", "O"}, {"3", "O"}, {"a", "O"}, {"1", "O"},
				{"no", "O"}, {"Maracanã", "B-LOC"}, {"pelo", "O"}, {"Campeonato", "B-MISC"},
				{"Brasileiro", "I-MISC"}, {".", "O"},
			},
		},
		{
			Text:   "Ayrton Senna foi tricampeão mundial de Fórmula 1 pela equipe McLaren.",
			Domain: "esportes",
			Annotations: []Annotation{
				{"Ayrton", "B-PER"}, {"Senna", "I-PER"}, {"foi", "O"}, {"tricampeão", "O"},
				{"mundial", "O"}, {"de", "O"}, {"Fórmula", "B-MISC"}, {"1", "I-MISC"},
				{"pela", "O"}, {"equipe", "O"}, {"McLaren", "B-ORG"}, {".", "O"},
			},
		},
		{
			Text:   "Beatriz Souza conquistou a medalha de ouro no judô nos Jogos Olímpicos de Paris em 2024.",
			Domain: "esportes",
			Annotations: []Annotation{
				{"Beatriz", "B-PER"}, {"Souza", "I-PER"}, {"conquistou", "O"}, {"a", "O"},
				{"medalha", "O"}, {"de", "O"}, {"ouro", "O"}, {"no", "O"}, {"judô", "O"},
				{"nos", "O"}, {"Jogos", "B-MISC"}, {"Olímpicos", "I-MISC"}, {"de", "O"},
				{"Paris", "B-LOC"}, {"em", "O"}, {"2024", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Instituto Nacional de Pesquisas Espaciais lançou o satélite Amazônia-1 em órbita.",
			Domain: "ciência",
			Annotations: []Annotation{
				{"O", "O"}, {"Instituto", "B-ORG"}, {"Nacional", "I-ORG"}, {"de", "I-ORG"},
				{"Pesquisas", "I-ORG"}, {"Espaciais", "I-ORG"}, {"lançou", "O"}, {"o", "O"},
				{"satélite", "O"}, {"Amazônia-1", "B-MISC"}, {"em", "O"}, {"órbita", "O"}, {".", "O"},
			},
		},
		{
			Text:   "A Universidade de São Paulo é a melhor instituição de ensino superior da América Latina.",
			Domain: "educação",
			Annotations: []Annotation{
				{"A", "O"}, {"Universidade", "B-ORG"}, {"de", "I-ORG"}, {"São", "I-ORG"}, {"Paulo", "I-ORG"},
				{"é", "O"}, {"a", "O"}, {"melhor", "O"}, {"instituição", "O"}, {"de", "O"},
				{"ensino", "O"}, {"superior", "O"}, {"da", "O"}, {"América", "B-LOC"}, {"Latina", "I-LOC"}, {".", "O"},
			},
		},
		{
			Text:   "A startup brasileira Nubank se tornou o maior banco digital do mundo com mais de 90 milhões de clientes.",
			Domain: "tecnologia",
			Annotations: []Annotation{
				{"A", "O"}, {"startup", "O"}, {"brasileira", "O"}, {"Nubank", "B-ORG"},
				{"se", "O"}, {"tornou", "O"}, {"o", "O"}, {"maior", "O"}, {"banco", "O"},
				{"digital", "O"}, {"do", "O"}, {"mundo", "O"}, {"com", "O"}, {"mais", "O"},
				{"de", "O"}, {"90", "O"}, {"milhões", "O"}, {"de", "O"}, {"clientes", "O"}, {".", "O"},
			},
		},
		{
			Text:   "Jorge Amado foi um dos maiores escritores brasileiros, autor de Gabriela, Cravo e Canela.",
			Domain: "cultura",
			Annotations: []Annotation{
				{"Jorge", "B-PER"}, {"Amado", "I-PER"}, {"foi", "O"}, {"um", "O"}, {"dos", "O"},
				{"maiores", "O"}, {"escritores", "O"}, {"brasileiros", "O"}, {",", "O"},
				{"autor", "O"}, {"de", "O"}, {"Gabriela", "B-MISC"}, {",", "O"},
				{"Cravo", "I-MISC"}, {"e", "I-MISC"}, {"Canela", "I-MISC"}, {".", "O"},
			},
		},
		{
			Text:   "Carmen Miranda representou o Brasil no cinema americano nas décadas de 1940 e 1950.",
			Domain: "cultura",
			Annotations: []Annotation{
				{"Carmen", "B-PER"}, {"Miranda", "I-PER"}, {"representou", "O"}, {"o", "O"},
				{"Brasil", "B-LOC"}, {"no", "O"}, {"cinema", "O"}, {"americano", "O"},
				{"nas", "O"}, {"décadas", "O"}, {"de", "O"}, {"1940", "O"}, {"e", "O"}, {"1950", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O desmatamento da Floresta Amazônica atingiu 11 mil km² em 2022, segundo o INPE.",
			Domain: "meio ambiente",
			Annotations: []Annotation{
				{"O", "O"}, {"desmatamento", "O"}, {"da", "O"}, {"Floresta", "B-LOC"},
				{"Amazônica", "I-LOC"}, {"atingiu", "O"}, {"11", "O"}, {"mil", "O"}, {"km²", "O"},
				{"em", "O"}, {"2022", "O"}, {",", "O"}, {"segundo", "O"}, {"o", "O"}, {"INPE", "B-ORG"}, {".", "O"},
			},
		},
		{
			Text:   "O Rio São Francisco corta seis estados brasileiros e é vital para o Nordeste.",
			Domain: "meio ambiente",
			Annotations: []Annotation{
				{"O", "O"}, {"Rio", "B-LOC"}, {"São", "I-LOC"}, {"Francisco", "I-LOC"},
				{"corta", "O"}, {"seis", "O"}, {"estados", "O"}, {"brasileiros", "O"},
				{"e", "O"}, {"é", "O"}, {"vital", "O"}, {"para", "O"}, {"o", "O"}, {"Nordeste", "B-LOC"}, {".", "O"},
			},
		},
		{
			Text:   "Paris Hilton viajou para Paris na França para participar de um desfile de moda.",
			Domain: "desambiguação",
			Annotations: []Annotation{
				{"Paris", "B-PER"}, {"Hilton", "I-PER"}, {"viajou", "O"}, {"para", "O"},
				{"Paris", "B-LOC"}, {"na", "O"}, {"França", "B-LOC"}, {"para", "O"},
				{"participar", "O"}, {"de", "O"}, {"um", "O"}, {"desfile", "O"}, {"de", "O"}, {"moda", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Banco do Brasil emprestou dinheiro para seu João sentar no banco da praça.",
			Domain: "desambiguação",
			Annotations: []Annotation{
				{"O", "O"}, {"Banco", "B-ORG"}, {"do", "I-ORG"}, {"Brasil", "I-ORG"},
				{"emprestou", "O"}, {"dinheiro", "O"}, {"para", "O"}, {"seu", "O"},
				{"João", "B-PER"}, {"sentar", "O"}, {"no", "O"}, {"banco", "O"},
				{"da", "O"}, {"praça", "O"}, {".", "O"},
			},
		},
		{
			Text:   "O Estado do Rio de Janeiro declarou estado de calamidade.",
			Domain: "desambiguação",
			Annotations: []Annotation{
				{"O", "O"}, {"Estado", "B-ORG"}, {"do", "I-ORG"},
				{"Rio", "I-ORG"}, {"de", "I-ORG"}, {"Janeiro", "I-ORG"}, {"declarou", "O"},
				{"estado", "O"}, {"de", "O"}, {"calamidade", "O"}, {".", "O"},
			},
		},
	}
}
