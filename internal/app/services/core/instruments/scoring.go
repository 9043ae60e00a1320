package instruments

func sum(answers Answers) float64 {
	total := 0
	for _, value := range answers {
		total += value
	}
	return float64(total)
}

func sumRange(answers Answers, r IDRange) float64 {
	total := 0
	for id := r.From; id <= r.To; id++ {
		total += answers[id]
	}
	return float64(total)
}

// IDRange is an inclusive range of question IDs forming a subscale.
type IDRange struct {
	From int
	To   int
}

type Subscale struct {
	Questions IDRange
	Max       float64
}

// SumPercentage reports the raw total and its share of max, higher is worse.
func SumPercentage(max float64) ScoreFunc {
	return func(answers Answers) Result {
		total := sum(answers)
		return NewResult(MetricPercentage,
			Metric{Name: MetricTotal, Value: total},
			Metric{Name: MetricMaxScore, Value: max},
			Metric{Name: MetricPercentage, Value: total / max * 100},
		)
	}
}

// InvertedPercentage is SumPercentage flipped so that 100 is the best function.
func InvertedPercentage(max float64) ScoreFunc {
	return func(answers Answers) Result {
		total := sum(answers)
		return NewResult(MetricPercentage,
			Metric{Name: MetricTotal, Value: total},
			Metric{Name: MetricMaxScore, Value: max},
			Metric{Name: MetricPercentage, Value: 100 - (total / max * 100)},
		)
	}
}

// PointsTotal reports the weighted point total against a fixed ceiling.
func PointsTotal(ceiling float64) ScoreFunc {
	return func(answers Answers) Result {
		return NewResult(MetricTotal,
			Metric{Name: MetricTotal, Value: sum(answers)},
			Metric{Name: MetricMaxScore, Value: ceiling},
		)
	}
}

// SplitPercentage normalizes the pain and function subscales independently and
// averages both percentages into the composite.
func SplitPercentage(pain, function Subscale) ScoreFunc {
	return func(answers Answers) Result {
		painTotal := sumRange(answers, pain.Questions)
		functionTotal := sumRange(answers, function.Questions)
		painPercentage := painTotal / pain.Max * 100
		functionPercentage := functionTotal / function.Max * 100
		return NewResult(MetricTotalPercentage,
			Metric{Name: MetricPainTotal, Value: painTotal},
			Metric{Name: MetricFunctionTotal, Value: functionTotal},
			Metric{Name: MetricPainPercentage, Value: painPercentage},
			Metric{Name: MetricFunctionPercentage, Value: functionPercentage},
			Metric{Name: MetricTotalPercentage, Value: (painPercentage + functionPercentage) / 2},
		)
	}
}

// SplitWeighted gives each subscale an equal share of weight points and adds
// them into the composite.
func SplitWeighted(pain, function Subscale, weight float64) ScoreFunc {
	return func(answers Answers) Result {
		painTotal := sumRange(answers, pain.Questions)
		functionTotal := sumRange(answers, function.Questions)
		painScore := painTotal / pain.Max * weight
		functionScore := functionTotal / function.Max * weight
		return NewResult(MetricTotalScore,
			Metric{Name: MetricPainTotal, Value: painTotal},
			Metric{Name: MetricFunctionTotal, Value: functionTotal},
			Metric{Name: MetricPainScore, Value: painScore},
			Metric{Name: MetricFunctionScore, Value: functionScore},
			Metric{Name: MetricTotalScore, Value: painScore + functionScore},
		)
	}
}

// LinearRescale maps the mean of a 1-5 ordinal scale onto 0-100.
func LinearRescale(questionCount int) ScoreFunc {
	return func(answers Answers) Result {
		total := sum(answers)
		return NewResult(MetricScore,
			Metric{Name: MetricSum, Value: total},
			Metric{Name: MetricScore, Value: (total/float64(questionCount) - 1) * 25},
			Metric{Name: MetricMaxScore, Value: 100},
		)
	}
}
