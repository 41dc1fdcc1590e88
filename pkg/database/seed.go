package database

import (
	"explore_ia_backend/internal/course"
	"explore_ia_backend/internal/model"
	"explore_ia_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seedPoints = 10

type seedQuestion struct {
	text    string
	options [4]string
	correct string
}

var seedQuestions = map[string][]seedQuestion{
	course.Introducao: {
		{"O que é Inteligência Artificial?", [4]string{
			"Um ramo da computação que cria sistemas capazes de realizar tarefas que exigem inteligência humana",
			"Um tipo de hardware de alto desempenho",
			"Uma linguagem de programação",
			"Um sistema operacional",
		}, "a"},
		{"Em que ano o termo \"Inteligência Artificial\" foi cunhado na conferência de Dartmouth?", [4]string{
			"1943", "1956", "1969", "1997",
		}, "b"},
		{"Qual destes é um exemplo de IA estreita (fraca)?", [4]string{
			"Uma máquina com consciência própria",
			"Um sistema que supera humanos em qualquer tarefa",
			"Um assistente de voz que reconhece comandos",
			"Um robô com emoções reais",
		}, "c"},
		{"O Teste de Turing avalia:", [4]string{
			"A velocidade de processamento de um computador",
			"A capacidade de uma máquina exibir comportamento indistinguível do humano",
			"A quantidade de memória disponível",
			"A eficiência energética de um algoritmo",
		}, "b"},
		{"Qual área NÃO é tradicionalmente considerada subcampo da IA?", [4]string{
			"Processamento de linguagem natural",
			"Visão computacional",
			"Robótica",
			"Contabilidade tributária",
		}, "d"},
	},
	course.FundamentosML: {
		{"No aprendizado supervisionado, o modelo é treinado com:", [4]string{
			"Dados sem rótulos",
			"Dados rotulados com a resposta esperada",
			"Apenas recompensas e punições",
			"Nenhum dado",
		}, "b"},
		{"Agrupar clientes por comportamento de compra sem rótulos prévios é um exemplo de:", [4]string{
			"Regressão",
			"Classificação",
			"Clusterização",
			"Aprendizado por reforço",
		}, "c"},
		{"O que caracteriza o overfitting?", [4]string{
			"O modelo vai bem no treino e mal em dados novos",
			"O modelo vai mal no treino e bem em dados novos",
			"O modelo não consegue aprender nada",
			"O modelo usa poucos parâmetros",
		}, "a"},
		{"Para que serve o conjunto de teste?", [4]string{
			"Ajustar os pesos do modelo",
			"Aumentar o volume de dados de treino",
			"Avaliar o desempenho em dados não vistos",
			"Substituir os dados de validação",
		}, "c"},
	},
	course.DadosAlgoritmos: {
		{"Normalizar atributos numéricos serve para:", [4]string{
			"Colocar os valores em escalas comparáveis",
			"Remover todas as linhas duplicadas",
			"Converter texto em imagem",
			"Aumentar o número de atributos",
		}, "a"},
		{"One-hot encoding é usado para representar:", [4]string{
			"Valores contínuos",
			"Variáveis categóricas",
			"Imagens em alta resolução",
			"Séries temporais",
		}, "b"},
		{"Uma árvore de decisão toma decisões por meio de:", [4]string{
			"Multiplicação de matrizes",
			"Sequências de perguntas sobre os atributos",
			"Sorteio aleatório",
			"Gradiente descendente obrigatório",
		}, "b"},
		{"O algoritmo k-NN classifica um exemplo com base:", [4]string{
			"Na média global dos dados",
			"Em uma rede neural profunda",
			"Nos k vizinhos mais próximos",
			"Na ordem alfabética dos rótulos",
		}, "c"},
	},
	course.RedesNeurais: {
		{"O elemento básico de uma rede neural artificial é:", [4]string{
			"O pixel", "O neurônio (perceptron)", "O byte", "O cluster",
		}, "b"},
		{"Qual é a função da função de ativação?", [4]string{
			"Introduzir não linearidade no modelo",
			"Armazenar os dados de treino",
			"Reduzir o tamanho do conjunto de dados",
			"Conectar o modelo à internet",
		}, "a"},
		{"Backpropagation é utilizado para:", [4]string{
			"Coletar dados rotulados",
			"Calcular gradientes e ajustar pesos",
			"Visualizar a arquitetura da rede",
			"Comprimir o modelo treinado",
		}, "b"},
		{"Redes convolucionais (CNNs) são especialmente eficazes em:", [4]string{
			"Planilhas financeiras",
			"Processamento de imagens",
			"Bancos de dados relacionais",
			"Compressão de áudio sem perdas",
		}, "b"},
	},
	course.IAEtica: {
		{"Viés algorítmico ocorre quando:", [4]string{
			"O modelo é rápido demais",
			"O modelo reproduz ou amplia preconceitos presentes nos dados",
			"O código tem erros de sintaxe",
			"O servidor fica indisponível",
		}, "b"},
		{"Explicabilidade em IA significa:", [4]string{
			"Tornar compreensível como o modelo chega às decisões",
			"Aumentar a acurácia a qualquer custo",
			"Ocultar o funcionamento do modelo",
			"Usar apenas modelos lineares",
		}, "a"},
		{"A LGPD trata principalmente de:", [4]string{
			"Padrões de hardware",
			"Proteção de dados pessoais",
			"Licenças de software livre",
			"Velocidade de conexão à internet",
		}, "b"},
		{"Qual prática contribui para uma IA responsável?", [4]string{
			"Ignorar o impacto social do sistema",
			"Treinar com dados coletados sem consentimento",
			"Auditar modelos e monitorar resultados continuamente",
			"Remover toda supervisão humana",
		}, "c"},
	},
}

// SeedQuestions 题库为空时写入每个模块的初始题目
func SeedQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var rows []model.Question
	for _, id := range course.IDs() {
		for _, q := range seedQuestions[id] {
			rows = append(rows, model.Question{
				ModuleName:    id,
				Question:      q.text,
				OptionA:       q.options[0],
				OptionB:       q.options[1],
				OptionC:       q.options[2],
				OptionD:       q.options[3],
				CorrectAnswer: q.correct,
				Points:        seedPoints,
			})
		}
	}

	if err := db.CreateInBatches(rows, 50).Error; err != nil {
		return err
	}
	logger.Log.Info("Seeded quiz questions", zap.Int("count", len(rows)))
	return nil
}
