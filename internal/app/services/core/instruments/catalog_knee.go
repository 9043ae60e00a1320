package instruments

func kneeRegion() *JointRegion {
	return &JointRegion{
		Key:         "joelho",
		Name:        "Joelho",
		Instruments: []*Instrument{womacKnee(), koos(), lysholm()},
	}
}

func womacKnee() *Instrument {
	return newInstrument(Instrument{
		ID:          "womac",
		ShortName:   "WOMAC",
		FullName:    "Western Ontario and McMaster Universities Osteoarthritis Index",
		Description: "Padrão-ouro para osteoartrite de joelho. Avalia dor, rigidez e função física.",
		Validation:  "Validado em Português-Brasil (Fernandes, 2011)",
		Citation:    "Fernandes MI. Tradução e validação do questionário de qualidade de vida específico para osteoartrose WOMAC. Acta Ortop Bras. 2011;19(4):218-24.",
		Questions: []Question{
			{ID: 1, Text: "Caminhando em uma superfície plana", Section: "Dor"},
			{ID: 2, Text: "Subindo ou descendo escadas", Section: "Dor"},
			{ID: 3, Text: "À noite, deitado na cama", Section: "Dor"},
			{ID: 4, Text: "Sentando ou deitando", Section: "Dor"},
			{ID: 5, Text: "Ficando em pé", Section: "Dor"},
			{ID: 6, Text: "Qual é a intensidade de sua rigidez logo após acordar pela manhã?", Section: "Rigidez"},
			{ID: 7, Text: "Qual é a intensidade de sua rigidez após sentar, deitar ou repousar durante o dia?", Section: "Rigidez"},
			{ID: 8, Text: "Descendo escadas", Section: "Função Física"},
			{ID: 9, Text: "Subindo escadas", Section: "Função Física"},
			{ID: 10, Text: "Levantando-se quando sentado", Section: "Função Física"},
			{ID: 11, Text: "Ficando em pé", Section: "Função Física"},
			{ID: 12, Text: "Abaixando-se para pegar algo", Section: "Função Física"},
			{ID: 13, Text: "Andando em superfície plana", Section: "Função Física"},
			{ID: 14, Text: "Entrando e saindo do carro", Section: "Função Física"},
			{ID: 15, Text: "Indo fazer compras", Section: "Função Física"},
			{ID: 16, Text: "Colocando meias", Section: "Função Física"},
			{ID: 17, Text: "Levantando-se da cama", Section: "Função Física"},
			{ID: 18, Text: "Tirando as meias", Section: "Função Física"},
			{ID: 19, Text: "Deitando na cama", Section: "Função Física"},
			{ID: 20, Text: "Entrando e saindo do banho", Section: "Função Física"},
			{ID: 21, Text: "Sentando-se", Section: "Função Física"},
			{ID: 22, Text: "Sentando e levantando do vaso sanitário", Section: "Função Física"},
			{ID: 23, Text: "Fazendo tarefas domésticas pesadas", Section: "Função Física"},
			{ID: 24, Text: "Fazendo tarefas domésticas leves", Section: "Função Física"},
		},
		Options: Uniform(intensityOptions...),
		Primary: MetricPercentage,
	}, SumPercentage(96), impairmentLadder)
}

func koos() *Instrument {
	return newInstrument(Instrument{
		ID:          "koos",
		ShortName:   "KOOS",
		FullName:    "Knee injury and Osteoarthritis Outcome Score",
		Description: "Avalia sintomas, dor, função em AVD, esporte/lazer e qualidade de vida relacionada ao joelho.",
		Validation:  "Validado internacionalmente, amplamente utilizado",
		Citation:    "Roos EM, et al. Knee Injury and Osteoarthritis Outcome Score (KOOS). J Orthop Sports Phys Ther. 1998;28(2):88-96.",
		Questions: []Question{
			{ID: 1, Text: "Com que frequência você sente o joelho inchado?", Section: "Sintomas"},
			{ID: 2, Text: "Você sente ou ouve ruídos quando o joelho se movimenta?", Section: "Sintomas"},
			{ID: 3, Text: "O joelho trava ou fica bloqueado?", Section: "Sintomas"},
			{ID: 4, Text: "Você consegue esticar completamente o joelho?", Section: "Sintomas"},
			{ID: 5, Text: "Você consegue dobrar completamente o joelho?", Section: "Sintomas"},
			{ID: 6, Text: "Quanta dor você teve ao torcer/girar sobre o joelho afetado?", Section: "Dor"},
			{ID: 7, Text: "Quanta dor você teve ao esticar completamente o joelho?", Section: "Dor"},
			{ID: 8, Text: "Quanta dor você teve ao dobrar completamente o joelho?", Section: "Dor"},
			{ID: 9, Text: "Quanta dor você teve ao caminhar em superfície plana?", Section: "Dor"},
			{ID: 10, Text: "Quanta dor você teve ao subir ou descer escadas?", Section: "Dor"},
			{ID: 11, Text: "Quanta dor você teve durante a noite na cama?", Section: "Dor"},
			{ID: 12, Text: "Quanta dor você teve sentado ou deitado?", Section: "Dor"},
			{ID: 13, Text: "Quanta dor você teve ficando em pé?", Section: "Dor"},
			{ID: 14, Text: "Qual o grau de dificuldade ao descer escadas?", Section: "AVD"},
			{ID: 15, Text: "Qual o grau de dificuldade ao subir escadas?", Section: "AVD"},
			{ID: 16, Text: "Qual o grau de dificuldade para levantar-se estando sentado?", Section: "AVD"},
			{ID: 17, Text: "Qual o grau de dificuldade para ficar em pé?", Section: "AVD"},
		},
		Options: Uniform(
			Option{Value: 0, Label: "Nunca / Nenhuma"},
			Option{Value: 1, Label: "Raramente / Leve"},
			Option{Value: 2, Label: "Às vezes / Moderada"},
			Option{Value: 3, Label: "Frequentemente / Grave"},
			Option{Value: 4, Label: "Sempre / Extrema"},
		),
		Primary: MetricPercentage,
	}, InvertedPercentage(68), Ladder{
		Direction: HigherIsBetter,
		Bands: []Band{
			{Threshold: 85, Label: "Função excelente"},
			{Threshold: 70, Label: "Função boa"},
			{Threshold: 55, Label: "Função regular"},
		},
		Fallback: "Função ruim",
	})
}

func lysholm() *Instrument {
	return newInstrument(Instrument{
		ID:          "lysholm",
		ShortName:   "Lysholm",
		FullName:    "Lysholm Knee Scoring Scale",
		Description: "Avalia função e instabilidade do joelho. Excelente para lesões ligamentares e meniscais.",
		Validation:  "Validado em Português-Brasil (Peccin et al., 2006)",
		Citation:    `Peccin MS, Ciconelli R, Cohen M. Questionário específico para sintomas do joelho "Lysholm Knee Scoring Scale". Acta Ortop Bras. 2006;14(5):268-72.`,
		Questions: []Question{
			{ID: 1, Text: "Mancar (claudicação)", Section: "Marcha"},
			{ID: 2, Text: "Apoio", Section: "Suporte"},
			{ID: 3, Text: "Travamento do joelho", Section: "Travamento"},
			{ID: 4, Text: "Instabilidade (falseio)", Section: "Instabilidade"},
			{ID: 5, Text: "Dor", Section: "Dor"},
			{ID: 6, Text: "Edema (inchaço)", Section: "Edema"},
			{ID: 7, Text: "Subir escadas", Section: "Escadas"},
			{ID: 8, Text: "Agachar", Section: "Agachamento"},
		},
		Options: PerQuestion(map[int][]Option{
			1: {
				{Value: 5, Label: "Não"},
				{Value: 3, Label: "Leve ou periódica"},
				{Value: 0, Label: "Grave e constante"},
			},
			2: {
				{Value: 5, Label: "Nenhum"},
				{Value: 3, Label: "Bengala ou muleta"},
				{Value: 0, Label: "Sem sustentação de peso"},
			},
			3: {
				{Value: 15, Label: "Sem travamento"},
				{Value: 10, Label: "Travamento ocasional"},
				{Value: 6, Label: "Travamento frequente"},
				{Value: 2, Label: "Joelho travado no exame"},
			},
			4: {
				{Value: 25, Label: "Nunca sente falseio"},
				{Value: 20, Label: "Raramente durante exercício pesado"},
				{Value: 15, Label: "Frequentemente durante exercício pesado"},
				{Value: 10, Label: "Ocasionalmente em atividades diárias"},
				{Value: 5, Label: "Frequentemente em atividades diárias"},
				{Value: 0, Label: "A cada passo"},
			},
			5: {
				{Value: 25, Label: "Nenhuma"},
				{Value: 20, Label: "Inconstante e leve durante exercício pesado"},
				{Value: 15, Label: "Marcante durante exercício pesado"},
				{Value: 10, Label: "Marcante ao caminhar mais de 2 km"},
				{Value: 5, Label: "Marcante ao caminhar menos de 2 km"},
				{Value: 0, Label: "Constante"},
			},
			6: {
				{Value: 10, Label: "Nenhum"},
				{Value: 6, Label: "Com exercícios pesados"},
				{Value: 2, Label: "Com exercícios comuns"},
				{Value: 0, Label: "Constante"},
			},
			7: {
				{Value: 10, Label: "Sem problema"},
				{Value: 6, Label: "Levemente prejudicado"},
				{Value: 2, Label: "Um degrau de cada vez"},
				{Value: 0, Label: "Impossível"},
			},
			8: {
				{Value: 5, Label: "Sem problema"},
				{Value: 4, Label: "Levemente prejudicado"},
				{Value: 2, Label: "Não além de 90 graus"},
				{Value: 0, Label: "Impossível"},
			},
		}),
		Primary: MetricTotal,
	}, PointsTotal(100), Ladder{
		Direction: HigherIsBetter,
		Bands: []Band{
			{Threshold: 95, Label: "Excelente"},
			{Threshold: 84, Label: "Bom"},
			{Threshold: 65, Label: "Regular"},
		},
		Fallback: "Ruim",
	})
}
