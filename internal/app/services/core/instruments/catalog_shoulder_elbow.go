package instruments

func shoulderElbowRegion() *JointRegion {
	return &JointRegion{
		Key:         "ombro_cotovelo",
		Name:        "Ombro e Cotovelo",
		Instruments: []*Instrument{spadi(), meps(), quickDASHUpperLimb()},
	}
}

func spadi() *Instrument {
	return newInstrument(Instrument{
		ID:          "spadi",
		ShortName:   "SPADI",
		FullName:    "Shoulder Pain and Disability Index",
		Description: "Específico para ombro. Avalia dor e incapacidade funcional.",
		Validation:  "Validado em Português-Brasil (Martins et al., 2010)",
		Citation:    "Martins J, Napoles BV, Hoffman CB, Oliveira AS. The Brazilian version of Shoulder Pain and Disability Index. Braz J Phys Ther. 2010;14(6):527-36.",
		MCID:        "13 pontos",
		Questions: []Question{
			{ID: 1, Text: "Na pior dor do ombro?", Section: "Dor"},
			{ID: 2, Text: "Deitado sobre o lado afetado?", Section: "Dor"},
			{ID: 3, Text: "Alcançando algo em uma prateleira alta?", Section: "Dor"},
			{ID: 4, Text: "Tocando a parte de trás do pescoço?", Section: "Dor"},
			{ID: 5, Text: "Empurrando com o braço afetado?", Section: "Dor"},
			{ID: 6, Text: "Lavar suas costas?", Section: "Função"},
			{ID: 7, Text: "Colocar um casaco ou camisa?", Section: "Função"},
			{ID: 8, Text: "Pentear o cabelo?", Section: "Função"},
			{ID: 9, Text: "Alcançar uma prateleira alta?", Section: "Função"},
			{ID: 10, Text: "Carregar um objeto pesado de 5kg?", Section: "Função"},
			{ID: 11, Text: "Remover algo do bolso de trás?", Section: "Função"},
			{ID: 12, Text: "Lavar o cabelo?", Section: "Função"},
			{ID: 13, Text: "Realizar atividades habituais?", Section: "Função"},
		},
		Options: Uniform(numericScale("Sem dor/dificuldade", "Pior dor/extrema dificuldade")...),
		Primary: MetricTotalPercentage,
	}, SplitPercentage(
		Subscale{Questions: IDRange{From: 1, To: 5}, Max: 50},
		Subscale{Questions: IDRange{From: 6, To: 13}, Max: 80},
	), Ladder{
		Direction: HigherIsWorse,
		Bands: []Band{
			{Threshold: 25, Label: "Incapacidade leve"},
			{Threshold: 50, Label: "Incapacidade moderada"},
			{Threshold: 75, Label: "Incapacidade grave"},
		},
		Fallback: "Incapacidade muito grave",
	})
}

func meps() *Instrument {
	return newInstrument(Instrument{
		ID:          "meps",
		ShortName:   "MEPS",
		FullName:    "Mayo Elbow Performance Score",
		Description: "Específico para cotovelo. Avalia dor, mobilidade, estabilidade e função.",
		Validation:  "Amplamente utilizado internacionalmente",
		Citation:    "Morrey BF, An KN, Chao EYS. Functional evaluation of the elbow. In: Morrey BF, editor. The Elbow and its Disorders. 2nd ed. Philadelphia: WB Saunders; 1993. p. 86-97.",
		Questions: []Question{
			{ID: 1, Text: "Dor no cotovelo", Section: "Dor"},
			{ID: 2, Text: "Amplitude de movimento (arco de flexão-extensão)", Section: "Mobilidade"},
			{ID: 3, Text: "Estabilidade", Section: "Estabilidade"},
			{ID: 4, Text: "Função - capacidade de realizar atividades diárias", Section: "Função"},
		},
		Options: PerQuestion(map[int][]Option{
			1: {
				{Value: 45, Label: "Nenhuma"},
				{Value: 30, Label: "Leve"},
				{Value: 15, Label: "Moderada"},
				{Value: 0, Label: "Grave"},
			},
			2: {
				{Value: 20, Label: "Arco > 100 graus"},
				{Value: 15, Label: "Arco 50-100 graus"},
				{Value: 5, Label: "Arco < 50 graus"},
			},
			3: {
				{Value: 10, Label: "Estável"},
				{Value: 5, Label: "Moderadamente instável"},
				{Value: 0, Label: "Muito instável"},
			},
			4: {
				{Value: 25, Label: "Alimentação, higiene, pentear cabelo, vestir: tudo independente"},
				{Value: 20, Label: "Alimentação, higiene, pentear cabelo, vestir: independente com dificuldade"},
				{Value: 15, Label: "Alimentação e higiene independentes; pentear cabelo e vestir com dificuldade"},
				{Value: 10, Label: "Alimentação e higiene independentes; não consegue pentear cabelo ou vestir"},
				{Value: 5, Label: "Alimentação independente; precisa ajuda para higiene, pentear e vestir"},
				{Value: 0, Label: "Precisa ajuda para alimentação"},
			},
		}),
		Primary: MetricTotal,
	}, PointsTotal(100), Ladder{
		Direction: HigherIsBetter,
		Bands: []Band{
			{Threshold: 90, Label: "Excelente"},
			{Threshold: 75, Label: "Bom"},
			{Threshold: 60, Label: "Regular"},
		},
		Fallback: "Ruim",
	})
}

func quickDASHUpperLimb() *Instrument {
	return quickDASH(
		"dash",
		"Questionário breve para todo membro superior. Aplicável a ombro e cotovelo.",
		"Validado em Português-Brasil (Orfale et al., 2005)",
		"Orfale AG, Araújo PM, Ferraz MB, Natour J. Translation into Brazilian Portuguese, cultural adaptation and evaluation of the reliability of the DASH. Braz J Med Biol Res. 2005;38(2):293-302.",
		[]Question{
			{ID: 1, Text: "Abrir um vidro novo ou com tampa muito apertada", Section: "Função"},
			{ID: 2, Text: "Fazer tarefas domésticas pesadas", Section: "Função"},
			{ID: 3, Text: "Carregar uma sacola de compras ou maleta", Section: "Função"},
			{ID: 4, Text: "Lavar suas costas", Section: "AVD"},
			{ID: 5, Text: "Usar uma faca para cortar alimentos", Section: "AVD"},
			{ID: 6, Text: "Atividades recreativas com algum impacto ou força", Section: "Lazer"},
			{ID: 7, Text: "Interferência do problema nas atividades sociais", Section: "Social"},
			{ID: 8, Text: "Limitação no trabalho ou atividades", Section: "Trabalho"},
			{ID: 9, Text: "Intensidade da dor", Section: "Dor"},
			{ID: 10, Text: "Formigamento", Section: "Sintomas"},
			{ID: 11, Text: "Dificuldade para dormir", Section: "Sono"},
		},
	)
}
