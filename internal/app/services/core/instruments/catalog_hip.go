package instruments

func hipRegion() *JointRegion {
	return &JointRegion{
		Key:         "quadril",
		Name:        "Quadril",
		Instruments: []*Instrument{womacHip(), harris()},
	}
}

func womacHip() *Instrument {
	return newInstrument(Instrument{
		ID:          "womac_quadril",
		ShortName:   "WOMAC Quadril",
		FullName:    "Western Ontario and McMaster Universities Osteoarthritis Index - Quadril",
		Description: "Padrão-ouro para osteoartrite de quadril. Avalia dor, rigidez e função.",
		Validation:  "Validado em Português-Brasil",
		Citation:    "Fernandes MI. Tradução e validação do WOMAC. Acta Ortop Bras. 2011;19(4):218-24.",
		Questions: []Question{
			{ID: 1, Text: "Caminhando em superfície plana", Section: "Dor"},
			{ID: 2, Text: "Subindo ou descendo escadas", Section: "Dor"},
			{ID: 3, Text: "À noite na cama", Section: "Dor"},
			{ID: 4, Text: "Sentando ou deitando", Section: "Dor"},
			{ID: 5, Text: "Ficando em pé", Section: "Dor"},
			{ID: 6, Text: "Rigidez ao acordar pela manhã", Section: "Rigidez"},
			{ID: 7, Text: "Rigidez após sentar/deitar durante o dia", Section: "Rigidez"},
			{ID: 8, Text: "Descendo escadas", Section: "Função"},
			{ID: 9, Text: "Subindo escadas", Section: "Função"},
			{ID: 10, Text: "Levantando-se quando sentado", Section: "Função"},
			{ID: 11, Text: "Ficando em pé", Section: "Função"},
			{ID: 12, Text: "Abaixando para pegar algo", Section: "Função"},
			{ID: 13, Text: "Andando em superfície plana", Section: "Função"},
			{ID: 14, Text: "Entrando/saindo do carro", Section: "Função"},
			{ID: 15, Text: "Fazendo compras", Section: "Função"},
			{ID: 16, Text: "Colocando meias", Section: "Função"},
			{ID: 17, Text: "Levantando da cama", Section: "Função"},
			{ID: 18, Text: "Tirando meias", Section: "Função"},
			{ID: 19, Text: "Deitando na cama", Section: "Função"},
			{ID: 20, Text: "Entrando/saindo do banho", Section: "Função"},
		},
		Options: Uniform(intensityOptions...),
		Primary: MetricPercentage,
	}, SumPercentage(80), impairmentLadder)
}

func harris() *Instrument {
	return newInstrument(Instrument{
		ID:          "harris",
		ShortName:   "Harris Hip Score",
		FullName:    "Harris Hip Score",
		Description: "Score clássico para avaliação de resultados cirúrgicos e função do quadril.",
		Validation:  "Amplamente utilizado internacionalmente",
		Citation:    "Harris WH. Traumatic arthritis of the hip after dislocation and acetabular fractures. J Bone Joint Surg Am. 1969;51(4):737-55.",
		Questions: []Question{
			{ID: 1, Text: "Dor no quadril", Section: "Dor"},
			{ID: 2, Text: "Claudicação (mancar)", Section: "Marcha"},
			{ID: 3, Text: "Necessidade de apoio para caminhar", Section: "Marcha"},
			{ID: 4, Text: "Distância que consegue caminhar", Section: "Mobilidade"},
			{ID: 5, Text: "Subir escadas", Section: "AVD"},
			{ID: 6, Text: "Calçar sapatos e meias", Section: "AVD"},
			{ID: 7, Text: "Sentar-se", Section: "AVD"},
			{ID: 8, Text: "Usar transporte público", Section: "Mobilidade"},
		},
		Options: PerQuestion(map[int][]Option{
			1: {
				{Value: 44, Label: "Nenhuma ou ignora"},
				{Value: 40, Label: "Leve, ocasional"},
				{Value: 30, Label: "Moderada, tolerável, sem medicação"},
				{Value: 20, Label: "Moderada, com medicação ocasional"},
				{Value: 10, Label: "Acentuada, atividade limitada"},
				{Value: 0, Label: "Totalmente incapacitado"},
			},
			2: {
				{Value: 11, Label: "Nenhuma"},
				{Value: 8, Label: "Leve"},
				{Value: 5, Label: "Moderada"},
				{Value: 0, Label: "Grave"},
			},
			3: {
				{Value: 11, Label: "Nenhum"},
				{Value: 7, Label: "Bengala para longas caminhadas"},
				{Value: 5, Label: "Bengala maior parte do tempo"},
				{Value: 3, Label: "Uma muleta"},
				{Value: 2, Label: "Duas bengalas"},
				{Value: 0, Label: "Duas muletas ou impossível"},
			},
			4: {
				{Value: 11, Label: "Ilimitada"},
				{Value: 8, Label: "Seis quarteirões"},
				{Value: 5, Label: "Dois ou três quarteirões"},
				{Value: 2, Label: "Apenas dentro de casa"},
				{Value: 0, Label: "Acamado ou cadeira"},
			},
			5: {
				{Value: 4, Label: "Normalmente sem corrimão"},
				{Value: 2, Label: "Normalmente com corrimão"},
				{Value: 1, Label: "De qualquer maneira"},
				{Value: 0, Label: "Incapaz"},
			},
			6: {
				{Value: 4, Label: "Com facilidade"},
				{Value: 2, Label: "Com dificuldade"},
				{Value: 0, Label: "Incapaz"},
			},
			7: {
				{Value: 5, Label: "Confortavelmente em cadeira comum por 1 hora"},
				{Value: 3, Label: "Em cadeira alta por 30 minutos"},
				{Value: 0, Label: "Incapaz de sentar confortavelmente"},
			},
			8: {
				{Value: 1, Label: "Sim"},
				{Value: 0, Label: "Não"},
			},
		}),
		Primary: MetricTotal,
	}, PointsTotal(91), clinicalRatingLadder)
}
