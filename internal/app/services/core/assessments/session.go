package assessments

import (
	"time"

	"outcomes-service/internal/app/services/core/instruments"
)

// Session is the state of one pass through joint selection, instrument
// selection and answer collection. A reset throws the whole value away.
type Session struct {
	Joint     *instruments.JointRegion
	Collector *Collector
	outcome   *Outcome
}

func newSession(joint *instruments.JointRegion) *Session {
	return &Session{
		Joint:     joint,
		Collector: NewCollector(),
	}
}

// Outcome is a scored and labelled instrument together with the answers that
// produced it.
type Outcome struct {
	JointKey       string
	JointName      string
	InstrumentID   string
	InstrumentName string
	Result         instruments.Result
	Interpretation string
	Answers        instruments.Answers
	CompletedAt    time.Time
}

type Snapshot struct {
	State      State
	Joint      *instruments.JointRegion
	Instrument *instruments.Instrument
	Cursor     int
	Question   *instruments.Question
	Options    []instruments.Option
	Answer     *int
	Progress   float64
	Answers    instruments.Answers
	Outcome    *Outcome
}
