package assessments

import (
	"bytes"
	"fmt"
	"outcomes-service/internal/app/models"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// scoreTrailer is appended to the metric object so the stored score reads
// as one flat document.
type scoreTrailer struct {
	Interpretation string `json:"interpretation"`
	Date           string `json:"date"`
	Joint          string `json:"joint"`
	Instrument     string `json:"instrument"`
}

// NewOutcomeRecord flattens a completed outcome and the run's patient into
// the row handed to persistence. Blank patient fields are stored as
// "Não informado".
func NewOutcomeRecord(runID string, patient models.Patient, outcome Outcome) (models.OutcomeRecord, error) {
	score, err := scoreDocument(outcome)
	if err != nil {
		return models.OutcomeRecord{}, err
	}
	answers, err := json.Marshal(outcome.Answers)
	if err != nil {
		return models.OutcomeRecord{}, err
	}

	patient = patient.WithDefaults()
	return models.OutcomeRecord{
		ID:               uuid.NewString(),
		RunID:            runID,
		Timestamp:        outcome.CompletedAt,
		PatientName:      patient.Name,
		PatientBirthDate: patient.BirthDate,
		PatientDocument:  patient.Document,
		PatientPhone:     patient.Phone,
		Joint:            outcome.JointName,
		Instrument:       outcome.InstrumentName,
		Score:            string(score),
		Interpretation:   outcome.Interpretation,
		Answers:          string(answers),
	}, nil
}

func scoreDocument(outcome Outcome) ([]byte, error) {
	metrics, err := json.Marshal(outcome.Result)
	if err != nil {
		return nil, err
	}
	trailer, err := json.Marshal(scoreTrailer{
		Interpretation: outcome.Interpretation,
		Date:           outcome.CompletedAt.Format(time.RFC3339),
		Joint:          outcome.JointName,
		Instrument:     outcome.InstrumentName,
	})
	if err != nil {
		return nil, err
	}

	metrics = bytes.TrimSpace(metrics)
	if len(metrics) < 2 || metrics[0] != '{' || metrics[len(metrics)-1] != '}' {
		return nil, fmt.Errorf("result of %s did not encode as an object", outcome.InstrumentID)
	}
	if len(metrics) == 2 {
		return trailer, nil
	}

	document := make([]byte, 0, len(metrics)+len(trailer))
	document = append(document, metrics[:len(metrics)-1]...)
	document = append(document, ',')
	document = append(document, trailer[1:]...)
	return document, nil
}
