package instruments

func wristHandRegion() *JointRegion {
	return &JointRegion{
		Key:         "punho_mao",
		Name:        "Punho e Mão",
		Instruments: []*Instrument{prwe(), quickDASHHand()},
	}
}

func prwe() *Instrument {
	return newInstrument(Instrument{
		ID:          "prwe",
		ShortName:   "PRWE",
		FullName:    "Patient-Rated Wrist Evaluation",
		Description: "Específico para punho. Avalia dor e função em lesões e patologias do punho.",
		Validation:  "Validado internacionalmente",
		Citation:    "MacDermid JC, et al. Patient rating of wrist pain and disability: a reliable and valid measurement tool. J Orthop Trauma. 1998;12(8):577-86.",
		MCID:        "11.5 pontos",
		Questions: []Question{
			{ID: 1, Text: "Na pior dor do punho", Section: "Dor"},
			{ID: 2, Text: "Dor no punho durante a noite", Section: "Dor"},
			{ID: 3, Text: "Frequência da dor no punho", Section: "Dor"},
			{ID: 4, Text: "Dor ao fazer atividade com força", Section: "Dor"},
			{ID: 5, Text: "Dor ao fazer movimento repetitivo", Section: "Dor"},
			{ID: 6, Text: "Virar uma maçaneta", Section: "Função"},
			{ID: 7, Text: "Usar uma faca para cortar", Section: "Função"},
			{ID: 8, Text: "Abotoar roupas", Section: "Função"},
			{ID: 9, Text: "Fazer tarefas domésticas", Section: "Função"},
			{ID: 10, Text: "Carregar sacolas de compras", Section: "Função"},
			{ID: 11, Text: "Lavar ou secar o corpo", Section: "Função"},
			{ID: 12, Text: "Vestir uma camisa", Section: "Função"},
			{ID: 13, Text: "Fazer a cama", Section: "Função"},
			{ID: 14, Text: "Abrir uma tampa ou jarra", Section: "Função"},
			{ID: 15, Text: "Realizar atividade de trabalho usual", Section: "Função"},
		},
		Options: Uniform(numericScale("Sem dor/dificuldade", "Pior dor/impossível")...),
		Primary: MetricTotalScore,
	}, SplitWeighted(
		Subscale{Questions: IDRange{From: 1, To: 5}, Max: 50},
		Subscale{Questions: IDRange{From: 6, To: 15}, Max: 100},
		50,
	), minimalDisabilityLadder)
}

func quickDASHHand() *Instrument {
	return quickDASH(
		"dash_mao",
		"Versão breve aplicável à mão e todo membro superior.",
		"Validado em Português-Brasil",
		"Orfale AG, et al. Braz J Med Biol Res. 2005;38(2):293-302.",
		[]Question{
			{ID: 1, Text: "Abrir um vidro novo ou com tampa muito apertada", Section: "Função"},
			{ID: 2, Text: "Escrever", Section: "AVD"},
			{ID: 3, Text: "Virar uma chave", Section: "AVD"},
			{ID: 4, Text: "Preparar uma refeição", Section: "AVD"},
			{ID: 5, Text: "Empurrar para abrir uma porta pesada", Section: "Função"},
			{ID: 6, Text: "Colocar algo em prateleira acima da cabeça", Section: "Função"},
			{ID: 7, Text: "Fazer tarefas domésticas pesadas", Section: "Função"},
			{ID: 8, Text: "Fazer jardinagem", Section: "Lazer"},
			{ID: 9, Text: "Arrumar a cama", Section: "AVD"},
			{ID: 10, Text: "Carregar uma sacola ou maleta", Section: "Função"},
			{ID: 11, Text: "Carregar um objeto pesado (mais de 5kg)", Section: "Função"},
		},
	)
}
