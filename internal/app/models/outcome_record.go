package models

import "time"

// OutcomeRecord is the row handed to external persistence once an assessment
// completes. Score and Answers hold serialized JSON.
type OutcomeRecord struct {
	ID               string    `bson:"_id" json:"id"`
	RunID            string    `bson:"run_id" json:"run_id"`
	Timestamp        time.Time `bson:"timestamp" json:"timestamp"`
	PatientName      string    `bson:"patient_name" json:"patient_name"`
	PatientBirthDate string    `bson:"patient_birth_date" json:"patient_birth_date"`
	PatientDocument  string    `bson:"patient_document" json:"patient_document"`
	PatientPhone     string    `bson:"patient_phone" json:"patient_phone"`
	Joint            string    `bson:"joint" json:"joint"`
	Instrument       string    `bson:"instrument" json:"instrument"`
	Score            string    `bson:"score" json:"score"`
	Interpretation   string    `bson:"interpretation" json:"interpretation"`
	Answers          string    `bson:"answers" json:"answers"`
}
