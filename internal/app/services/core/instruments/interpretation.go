package instruments

type Direction string

const (
	// HigherIsWorse ladders are ascending and test value <= threshold.
	HigherIsWorse Direction = "higher_is_worse"
	// HigherIsBetter ladders are descending and test value >= threshold.
	HigherIsBetter Direction = "higher_is_better"
)

type Band struct {
	Threshold float64
	Label     string
}

// Ladder classifies a primary metric. Bands are tested in declaration order
// and the first match wins; Fallback covers everything past the last band.
type Ladder struct {
	Direction Direction
	Bands     []Band
	Fallback  string
}

func (l Ladder) Classify(value float64) string {
	for _, band := range l.Bands {
		switch l.Direction {
		case HigherIsBetter:
			if value >= band.Threshold {
				return band.Label
			}
		default:
			if value <= band.Threshold {
				return band.Label
			}
		}
	}
	return l.Fallback
}

// Labels lists the categories from the first band to the fallback.
func (l Ladder) Labels() []string {
	labels := make([]string, 0, len(l.Bands)+1)
	for _, band := range l.Bands {
		labels = append(labels, band.Label)
	}
	return append(labels, l.Fallback)
}

// Interpreter reads the result's primary metric and classifies it.
func (l Ladder) Interpreter() InterpretFunc {
	return func(result Result) string {
		return l.Classify(result.Primary())
	}
}

// Rank returns the position of label in the ladder, or -1.
func (l Ladder) Rank(label string) int {
	for index, candidate := range l.Labels() {
		if candidate == label {
			return index
		}
	}
	return -1
}
