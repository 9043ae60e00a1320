package responses

import (
	"time"

	"github.com/goccy/go-json"
)

type Assessment struct {
	RunID           string            `json:"run_id"`
	State           string            `json:"state"`
	RegisterPatient bool              `json:"register_patient"`
	Patient         *Patient          `json:"patient,omitempty"`
	Joint           *JointRef         `json:"joint,omitempty"`
	Instrument      *InstrumentRef    `json:"instrument,omitempty"`
	Cursor          int               `json:"cursor"`
	QuestionCount   int               `json:"question_count"`
	Progress        float64           `json:"progress"`
	Question        *Question         `json:"question,omitempty"`
	CurrentAnswer   *int              `json:"current_answer,omitempty"`
	Answers         map[int]int       `json:"answers"`
	Result          *AssessmentResult `json:"result,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type Patient struct {
	Name      string `json:"name,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Document  string `json:"document,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type JointRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type InstrumentRef struct {
	ID        string `json:"id"`
	ShortName string `json:"short_name"`
}

type AssessmentResult struct {
	PrimaryMetric  string          `json:"primary_metric"`
	PrimaryValue   float64         `json:"primary_value"`
	Score          json.RawMessage `json:"score"`
	Interpretation string          `json:"interpretation"`
	CompletedAt    time.Time       `json:"completed_at"`
}
