package instruments

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

const (
	MetricTotal              = "total"
	MetricSum                = "sum"
	MetricScore              = "score"
	MetricMaxScore           = "max_score"
	MetricPercentage         = "percentage"
	MetricPainTotal          = "pain_total"
	MetricFunctionTotal      = "function_total"
	MetricPainPercentage     = "pain_percentage"
	MetricFunctionPercentage = "function_percentage"
	MetricTotalPercentage    = "total_percentage"
	MetricPainScore          = "pain_score"
	MetricFunctionScore      = "function_score"
	MetricTotalScore         = "total_score"
)

type Metric struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Result is the raw output of a scoring function. Metrics keep the order in
// which the instrument reports them.
type Result struct {
	primary string
	metrics []Metric
}

func NewResult(primary string, metrics ...Metric) Result {
	copied := make([]Metric, len(metrics))
	copy(copied, metrics)
	return Result{primary: primary, metrics: copied}
}

func (r Result) IsZero() bool {
	return len(r.metrics) == 0
}

func (r Result) PrimaryName() string {
	return r.primary
}

func (r Result) Primary() float64 {
	value, _ := r.Value(r.primary)
	return value
}

func (r Result) Value(name string) (float64, bool) {
	for _, metric := range r.metrics {
		if metric.Name == name {
			return metric.Value, true
		}
	}
	return 0, false
}

func (r Result) Metrics() []Metric {
	copied := make([]Metric, len(r.metrics))
	copy(copied, r.metrics)
	return copied
}

// MarshalJSON writes the metrics as a single object in instrument order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for index, metric := range r.metrics {
		if index > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(metric.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(metric.Value, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Fields flattens the metrics for encoders that do not honour MarshalJSON,
// such as bson and yaml.
func (r Result) Fields() map[string]float64 {
	fields := make(map[string]float64, len(r.metrics))
	for _, metric := range r.metrics {
		fields[metric.Name] = metric.Value
	}
	return fields
}
