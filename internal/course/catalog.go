// Package course holds the fixed catalog of Explore IA modules and their
// static instructional content.
package course

type Section struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Items []string `json:"items,omitempty"`
}

type Module struct {
	ID          string    `json:"id"`
	Order       int       `json:"order"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections,omitempty"`
}

const (
	Introducao      = "introducao"
	FundamentosML   = "fundamentos-ml"
	DadosAlgoritmos = "dados-algoritmos"
	RedesNeurais    = "redes-neurais"
	IAEtica         = "ia-etica"
)

// Catalog order is the learning order; NextModule and certificate eligibility rely on it.
var modules = []Module{
	{
		ID:          Introducao,
		Order:       1,
		Title:       "Introdução à IA",
		Description: "Compreenda os fundamentos da IA e sua importância no mundo moderno",
		Sections: []Section{
			{
				Title: "O que é Inteligência Artificial?",
				Body: "A Inteligência Artificial (IA) é a capacidade de máquinas e sistemas computacionais " +
					"realizarem tarefas que normalmente requerem inteligência humana, como reconhecimento de padrões, " +
					"tomada de decisões, compreensão de linguagem natural e resolução de problemas complexos.",
			},
			{
				Title: "História da IA",
				Body: "O conceito de IA nasceu na década de 1950, quando o matemático inglês Alan Turing propôs o " +
					"famoso \"Teste de Turing\" para avaliar se uma máquina poderia exibir comportamento inteligente " +
					"equivalente ao humano.",
			},
			{
				Title: "Aplicações no Dia a Dia",
				Items: []string{
					"Assistentes Virtuais: Siri, Alexa, Google Assistant",
					"Recomendações: Netflix, Spotify, YouTube",
					"Navegação: Google Maps, Waze",
					"Reconhecimento facial: desbloqueio de smartphones",
				},
			},
		},
	},
	{
		ID:          FundamentosML,
		Order:       2,
		Title:       "Fundamentos do Aprendizado de Máquina",
		Description: "Como sistemas aprendem a partir de dados em vez de regras explícitas",
		Sections: []Section{
			{
				Title: "Aprendizado a partir de exemplos",
				Body: "No aprendizado de máquina, um modelo ajusta seus parâmetros observando exemplos. " +
					"Quanto mais representativos os dados, melhor o modelo generaliza para casos novos.",
			},
			{
				Title: "Tipos de aprendizado",
				Items: []string{
					"Supervisionado: dados rotulados, como classificação de e-mails em spam ou não spam",
					"Não supervisionado: agrupamento de dados sem rótulos",
					"Por reforço: um agente aprende por tentativa e erro com recompensas",
				},
			},
		},
	},
	{
		ID:          DadosAlgoritmos,
		Order:       3,
		Title:       "Representação de Dados e Algoritmos",
		Description: "Como dados são preparados e quais algoritmos os transformam em previsões",
		Sections: []Section{
			{
				Title: "Dados como matéria-prima",
				Body: "Textos, imagens e números precisam ser convertidos em representações numéricas " +
					"(vetores e matrizes) antes de serem processados por um algoritmo.",
			},
			{
				Title: "Algoritmos clássicos",
				Items: []string{
					"Regressão linear",
					"Árvores de decisão",
					"k-vizinhos mais próximos (k-NN)",
					"k-means",
				},
			},
		},
	},
	{
		ID:          RedesNeurais,
		Order:       4,
		Title:       "Redes Neurais Artificiais",
		Description: "Neurônios artificiais, camadas e o treinamento por retropropagação",
		Sections: []Section{
			{
				Title: "Do neurônio à rede",
				Body: "Um neurônio artificial combina entradas ponderadas e aplica uma função de ativação. " +
					"Camadas de neurônios conectados formam uma rede capaz de aprender relações complexas.",
			},
			{
				Title: "Treinamento",
				Body: "A retropropagação calcula como cada peso contribui para o erro e o gradiente " +
					"descendente ajusta os pesos para reduzi-lo.",
			},
		},
	},
	{
		ID:          IAEtica,
		Order:       5,
		Title:       "IA e Ética",
		Description: "Vieses, privacidade, transparência e responsabilidade no uso da IA",
		Sections: []Section{
			{
				Title: "Princípios",
				Items: []string{
					"Justiça: evitar discriminação causada por dados enviesados",
					"Privacidade: proteger os dados pessoais usados no treinamento",
					"Transparência: explicar como decisões automatizadas são tomadas",
					"Responsabilidade: definir quem responde pelos resultados de um sistema",
				},
			},
		},
	},
}

// Modules returns a copy of the catalog.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

func IDs() []string {
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	return ids
}

func Find(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

func DisplayName(id string) string {
	if m, ok := Find(id); ok {
		return m.Title
	}
	return id
}

// NextModule returns the module after currentID. The last module and unknown
// ids wrap around to the first one.
func NextModule(currentID string) string {
	for i, m := range modules {
		if m.ID == currentID && i < len(modules)-1 {
			return modules[i+1].ID
		}
	}
	return modules[0].ID
}
