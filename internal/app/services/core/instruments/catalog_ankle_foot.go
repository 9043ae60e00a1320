package instruments

func ankleFootRegion() *JointRegion {
	return &JointRegion{
		Key:         "tornozelo_pe",
		Name:        "Tornozelo e Pé",
		Instruments: []*Instrument{faam(), aofas()},
	}
}

func faam() *Instrument {
	return newInstrument(Instrument{
		ID:          "faam",
		ShortName:   "FAAM",
		FullName:    "Foot and Ankle Ability Measure",
		Description: "Medida específica de capacidade funcional do tornozelo e pé.",
		Validation:  "Validado internacionalmente (Martin et al., 2005)",
		Citation:    "Martin RL, Irrgang JJ, Burdett RG, Conti SF, Van Swearingen JM. Evidence of validity for the FAAM. Foot Ankle Int. 2005;26(11):968-83.",
		MCID:        "8 pontos",
		Questions: []Question{
			{ID: 1, Text: "Ficar em pé", Section: "AVD"},
			{ID: 2, Text: "Andar em superfície plana", Section: "AVD"},
			{ID: 3, Text: "Andar em superfície irregular", Section: "AVD"},
			{ID: 4, Text: "Subir escadas", Section: "AVD"},
			{ID: 5, Text: "Descer escadas", Section: "AVD"},
			{ID: 6, Text: "Ficar na ponta dos pés", Section: "AVD"},
			{ID: 7, Text: "Caminhar inicialmente", Section: "AVD"},
			{ID: 8, Text: "Caminhar aproximadamente 10 minutos", Section: "AVD"},
			{ID: 9, Text: "Andar rápido", Section: "AVD"},
			{ID: 10, Text: "Ficar em pé por mais de 15 minutos", Section: "AVD"},
			{ID: 11, Text: "Sentar com os pés no chão", Section: "AVD"},
			{ID: 12, Text: "Entrar e sair do carro", Section: "AVD"},
		},
		Options: Uniform(
			Option{Value: 4, Label: "4 - Sem dificuldade"},
			Option{Value: 3, Label: "3 - Dificuldade leve"},
			Option{Value: 2, Label: "2 - Dificuldade moderada"},
			Option{Value: 1, Label: "1 - Dificuldade extrema"},
			Option{Value: 0, Label: "0 - Incapaz de fazer"},
		),
		Primary: MetricPercentage,
	}, SumPercentage(48), Ladder{
		Direction: HigherIsBetter,
		Bands: []Band{
			{Threshold: 90, Label: "Função excelente"},
			{Threshold: 75, Label: "Função boa"},
			{Threshold: 50, Label: "Função regular"},
		},
		Fallback: "Função ruim",
	})
}

func aofas() *Instrument {
	return newInstrument(Instrument{
		ID:          "aofas",
		ShortName:   "AOFAS",
		FullName:    "American Orthopaedic Foot and Ankle Society Score - Retropé",
		Description: "Score clínico para avaliação de tornozelo e retropé.",
		Validation:  "Amplamente utilizado internacionalmente",
		Citation:    "Kitaoka HB, Alexander IJ, Adelaar RS, et al. Clinical rating systems for the ankle-hindfoot. Foot Ankle Int. 1994;15(7):349-53.",
		Questions: []Question{
			{ID: 1, Text: "Dor no tornozelo/retropé", Section: "Dor"},
			{ID: 2, Text: "Limitação de atividades", Section: "Função"},
			{ID: 3, Text: "Distância máxima de caminhada", Section: "Função"},
			{ID: 4, Text: "Tipo de superfície para caminhar", Section: "Função"},
			{ID: 5, Text: "Anormalidade da marcha", Section: "Marcha"},
			{ID: 6, Text: "Mobilidade sagital (flexão/extensão)", Section: "Amplitude"},
			{ID: 7, Text: "Mobilidade do retropé (inversão/eversão)", Section: "Amplitude"},
			{ID: 8, Text: "Estabilidade tornozelo-retropé", Section: "Estabilidade"},
		},
		Options: PerQuestion(map[int][]Option{
			1: {
				{Value: 40, Label: "Nenhuma"},
				{Value: 30, Label: "Leve, ocasional"},
				{Value: 20, Label: "Moderada, diária"},
				{Value: 0, Label: "Grave, quase sempre presente"},
			},
			2: {
				{Value: 10, Label: "Sem limitação"},
				{Value: 7, Label: "Sem limitação AVD, limitação recreacional"},
				{Value: 4, Label: "Limitação de AVD e recreacional"},
				{Value: 0, Label: "Limitação grave"},
			},
			3: {
				{Value: 5, Label: "Maior que 6 quarteirões"},
				{Value: 4, Label: "4-6 quarteirões"},
				{Value: 2, Label: "1-3 quarteirões"},
				{Value: 0, Label: "Menos de 1 quarteirão"},
			},
			4: {
				{Value: 5, Label: "Sem dificuldade em qualquer superfície"},
				{Value: 3, Label: "Alguma dificuldade em terreno irregular"},
				{Value: 0, Label: "Dificuldade grave"},
			},
			5: {
				{Value: 8, Label: "Nenhuma, leve"},
				{Value: 4, Label: "Óbvia"},
				{Value: 0, Label: "Acentuada"},
			},
			6: {
				{Value: 8, Label: "Normal ou restrição leve (30° ou mais)"},
				{Value: 4, Label: "Restrição moderada (15-29°)"},
				{Value: 0, Label: "Restrição grave (menos de 15°)"},
			},
			7: {
				{Value: 6, Label: "Normal ou restrição leve (75-100%)"},
				{Value: 3, Label: "Restrição moderada (25-74%)"},
				{Value: 0, Label: "Restrição grave (menos de 25%)"},
			},
			8: {
				{Value: 8, Label: "Estável"},
				{Value: 0, Label: "Definitivamente instável"},
			},
		}),
		Primary: MetricTotal,
	}, PointsTotal(100), clinicalRatingLadder)
}
