package requests

type Patient struct {
	Name      string `json:"name" validate:"omitempty,max=200"`
	BirthDate string `json:"birth_date" validate:"omitempty,birth_date"`
	Document  string `json:"document" validate:"omitempty,max=32"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
}

type CreateAssessment struct {
	Patient         *Patient `json:"patient"`
	RegisterPatient bool     `json:"register_patient"`
}

type UpdatePatient struct {
	Patient Patient `json:"patient"`
}

type SelectJoint struct {
	JointKey string `json:"joint_key" validate:"required,max=64"`
}

type SelectInstrument struct {
	InstrumentID string `json:"instrument_id" validate:"required,max=64"`
}

// Pointers tell an explicit zero apart from a missing field.
type AnswerQuestion struct {
	QuestionID *int `json:"question_id" validate:"required,gte=0"`
	Value      *int `json:"value" validate:"required,gte=0"`
}
