package instruments

import "strconv"

var (
	intensityOptions = []Option{
		{Value: 0, Label: "Nenhuma"},
		{Value: 1, Label: "Pouca"},
		{Value: 2, Label: "Moderada"},
		{Value: 3, Label: "Intensa"},
		{Value: 4, Label: "Muito intensa"},
	}

	disabilityIndexOptions = []Option{
		{Value: 0, Label: "0 - Sem problema"},
		{Value: 1, Label: "1 - Problema leve"},
		{Value: 2, Label: "2 - Problema moderado"},
		{Value: 3, Label: "3 - Problema considerável"},
		{Value: 4, Label: "4 - Problema grave"},
		{Value: 5, Label: "5 - Problema completo"},
	}

	quickDASHOptions = []Option{
		{Value: 1, Label: "1 - Sem dificuldade"},
		{Value: 2, Label: "2 - Dificuldade leve"},
		{Value: 3, Label: "3 - Dificuldade moderada"},
		{Value: 4, Label: "4 - Dificuldade grave"},
		{Value: 5, Label: "5 - Incapaz"},
	}
)

// numericScale builds a 0..10 scale whose ends carry descriptive labels.
func numericScale(lowest, highest string) []Option {
	options := make([]Option, 0, 11)
	options = append(options, Option{Value: 0, Label: "0 - " + lowest})
	for value := 1; value < 10; value++ {
		options = append(options, Option{Value: value, Label: strconv.Itoa(value)})
	}
	return append(options, Option{Value: 10, Label: "10 - " + highest})
}

var (
	impairmentLadder = Ladder{
		Direction: HigherIsWorse,
		Bands: []Band{
			{Threshold: 25, Label: "Comprometimento leve"},
			{Threshold: 50, Label: "Comprometimento moderado"},
			{Threshold: 75, Label: "Comprometimento grave"},
		},
		Fallback: "Comprometimento muito grave",
	}

	minimalDisabilityLadder = Ladder{
		Direction: HigherIsWorse,
		Bands: []Band{
			{Threshold: 25, Label: "Incapacidade mínima"},
			{Threshold: 50, Label: "Incapacidade moderada"},
			{Threshold: 75, Label: "Incapacidade grave"},
		},
		Fallback: "Incapacidade muito grave",
	}

	clinicalRatingLadder = Ladder{
		Direction: HigherIsBetter,
		Bands: []Band{
			{Threshold: 90, Label: "Excelente"},
			{Threshold: 80, Label: "Bom"},
			{Threshold: 70, Label: "Regular"},
		},
		Fallback: "Ruim",
	}
)

func quickDASH(id, description, validation, citation string, questions []Question) *Instrument {
	return newInstrument(Instrument{
		ID:          id,
		ShortName:   "QuickDASH",
		FullName:    "Quick Disabilities of the Arm, Shoulder and Hand",
		Description: description,
		Validation:  validation,
		Citation:    citation,
		MCID:        "10 pontos",
		Questions:   questions,
		Options:     Uniform(quickDASHOptions...),
		Primary:     MetricScore,
	}, LinearRescale(len(questions)), minimalDisabilityLadder)
}
