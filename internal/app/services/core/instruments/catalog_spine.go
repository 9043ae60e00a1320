package instruments

func spineRegion() *JointRegion {
	return &JointRegion{
		Key:         "coluna",
		Name:        "Coluna",
		Instruments: []*Instrument{ndi(), oswestry()},
	}
}

func ndi() *Instrument {
	return newInstrument(Instrument{
		ID:          "ndi",
		ShortName:   "NDI",
		FullName:    "Neck Disability Index",
		Description: "Padrão-ouro para avaliação de dor cervical e incapacidade funcional.",
		Validation:  "Validado internacionalmente com ampla evidência",
		Citation:    "Vernon H, Mior S. The Neck Disability Index: a study of reliability and validity. J Manipulative Physiol Ther. 1991;14(7):409-15.",
		MCID:        "5 pontos (10%)",
		Questions: []Question{
			{ID: 1, Text: "Intensidade da dor", Section: "Dor"},
			{ID: 2, Text: "Cuidados pessoais (vestir-se, tomar banho)", Section: "AVD"},
			{ID: 3, Text: "Levantar objetos", Section: "Função"},
			{ID: 4, Text: "Leitura", Section: "Função"},
			{ID: 5, Text: "Dores de cabeça", Section: "Sintomas"},
			{ID: 6, Text: "Concentração", Section: "Cognitivo"},
			{ID: 7, Text: "Trabalho", Section: "Função"},
			{ID: 8, Text: "Dirigir automóvel", Section: "AVD"},
			{ID: 9, Text: "Dormir", Section: "Sono"},
			{ID: 10, Text: "Atividades de lazer", Section: "Social"},
		},
		Options: Uniform(disabilityIndexOptions...),
		Primary: MetricPercentage,
	}, SumPercentage(50), Ladder{
		Direction: HigherIsWorse,
		Bands: []Band{
			{Threshold: 8, Label: "Sem incapacidade"},
			{Threshold: 20, Label: "Incapacidade leve"},
			{Threshold: 34, Label: "Incapacidade moderada"},
			{Threshold: 48, Label: "Incapacidade grave"},
			{Threshold: 68, Label: "Incapacidade muito grave"},
		},
		Fallback: "Incapacidade completa",
	})
}

func oswestry() *Instrument {
	return newInstrument(Instrument{
		ID:          "oswestry",
		ShortName:   "ODI",
		FullName:    "Oswestry Disability Index",
		Description: "Padrão-ouro para avaliação de dor lombar e incapacidade funcional.",
		Validation:  "Validado em Português-Brasil (Vigatto et al., 2007)",
		Citation:    "Vigatto R, Alexandre NM, Correa Filho HR. Development of a Brazilian Portuguese version of the Oswestry Disability Index. Spine. 2007;32(4):481-6.",
		MCID:        "10 pontos (20%)",
		Questions: []Question{
			{ID: 1, Text: "Intensidade da dor", Section: "Dor"},
			{ID: 2, Text: "Cuidados pessoais (vestir-se, tomar banho)", Section: "AVD"},
			{ID: 3, Text: "Levantar objetos", Section: "Função"},
			{ID: 4, Text: "Caminhar", Section: "Mobilidade"},
			{ID: 5, Text: "Sentar", Section: "Função"},
			{ID: 6, Text: "Ficar em pé", Section: "Função"},
			{ID: 7, Text: "Dormir", Section: "Sono"},
			{ID: 8, Text: "Vida sexual", Section: "Social"},
			{ID: 9, Text: "Vida social", Section: "Social"},
			{ID: 10, Text: "Viajar", Section: "Mobilidade"},
		},
		Options: Uniform(disabilityIndexOptions...),
		Primary: MetricPercentage,
	}, SumPercentage(50), Ladder{
		Direction: HigherIsWorse,
		Bands: []Band{
			{Threshold: 20, Label: "Incapacidade mínima"},
			{Threshold: 40, Label: "Incapacidade moderada"},
			{Threshold: 60, Label: "Incapacidade grave"},
			{Threshold: 80, Label: "Incapacidade muito grave"},
		},
		Fallback: "Paciente acamado",
	})
}
