package assessments

import (
	"errors"
	"fmt"

	"outcomes-service/internal/app/services/core/instruments"
)

var (
	ErrInvalidAnswer     = errors.New("invalid answer")
	ErrIllegalTransition = errors.New("illegal transition")
)

type State string

const (
	StateAwaitingSelection State = "awaiting_selection"
	StateInProgress        State = "in_progress"
	StateCompleted         State = "completed"
)

// Collector walks one instrument question by question. It is not safe for
// concurrent use; SessionController serializes access to it.
type Collector struct {
	instrument     *instruments.Instrument
	state          State
	cursor         int
	answers        instruments.Answers
	result         instruments.Result
	interpretation string
}

func NewCollector() *Collector {
	return &Collector{state: StateAwaitingSelection}
}

func (c *Collector) State() State {
	return c.state
}

func (c *Collector) Cursor() int {
	return c.cursor
}

func (c *Collector) Instrument() *instruments.Instrument {
	return c.instrument
}

// Start begins collection for instrument at the first question.
func (c *Collector) Start(instrument *instruments.Instrument) error {
	if c.state != StateAwaitingSelection {
		return fmt.Errorf("%w: cannot start a new instrument while %s", ErrIllegalTransition, c.state)
	}
	if instrument == nil || instrument.QuestionCount() == 0 {
		return fmt.Errorf("%w: instrument has no questions", ErrIllegalTransition)
	}

	c.instrument = instrument
	c.state = StateInProgress
	c.cursor = 0
	c.answers = make(instruments.Answers, instrument.QuestionCount())
	return nil
}

// Answer records value for the question at the cursor. Answering the last
// question completes the run and scores it.
func (c *Collector) Answer(questionID, value int) error {
	if c.state != StateInProgress {
		return fmt.Errorf("%w: cannot answer while %s", ErrIllegalTransition, c.state)
	}

	current := c.instrument.Questions[c.cursor]
	if questionID != current.ID {
		return fmt.Errorf("%w: question %d is not the current question %d", ErrInvalidAnswer, questionID, current.ID)
	}
	if !c.instrument.Options.IsValid(questionID, value) {
		return fmt.Errorf("%w: %d is not an option of question %d", ErrInvalidAnswer, value, questionID)
	}

	c.answers[questionID] = value

	if c.cursor == c.lastIndex() {
		c.complete()
		return nil
	}
	c.cursor++
	return nil
}

func (c *Collector) Previous() error {
	if c.state != StateInProgress {
		return fmt.Errorf("%w: cannot go back while %s", ErrIllegalTransition, c.state)
	}
	if c.cursor == 0 {
		return fmt.Errorf("%w: already at the first question", ErrIllegalTransition)
	}
	c.cursor--
	return nil
}

func (c *Collector) Next() error {
	if c.state != StateInProgress {
		return fmt.Errorf("%w: cannot go forward while %s", ErrIllegalTransition, c.state)
	}
	if c.cursor == c.lastIndex() {
		return fmt.Errorf("%w: already at the last question", ErrIllegalTransition)
	}
	if _, answered := c.answers[c.instrument.Questions[c.cursor].ID]; !answered {
		return fmt.Errorf("%w: question %d has no answer yet", ErrIllegalTransition, c.instrument.Questions[c.cursor].ID)
	}
	c.cursor++
	return nil
}

func (c *Collector) Reset() {
	*c = Collector{state: StateAwaitingSelection}
}

// CurrentQuestion is only defined while in progress.
func (c *Collector) CurrentQuestion() (instruments.Question, bool) {
	if c.state != StateInProgress {
		return instruments.Question{}, false
	}
	return c.instrument.Questions[c.cursor], true
}

func (c *Collector) CurrentOptions() []instruments.Option {
	question, ok := c.CurrentQuestion()
	if !ok {
		return nil
	}
	options := c.instrument.Options.OptionsFor(question.ID)
	return append([]instruments.Option(nil), options...)
}

// CurrentAnswer returns the value already recorded for the question at the
// cursor, if any.
func (c *Collector) CurrentAnswer() (int, bool) {
	question, ok := c.CurrentQuestion()
	if !ok {
		return 0, false
	}
	value, answered := c.answers[question.ID]
	return value, answered
}

func (c *Collector) ProgressFraction() float64 {
	switch c.state {
	case StateInProgress:
		return float64(c.cursor+1) / float64(c.instrument.QuestionCount())
	case StateCompleted:
		return 1
	default:
		return 0
	}
}

// Answers returns a copy of the recorded answers.
func (c *Collector) Answers() instruments.Answers {
	if c.answers == nil {
		return instruments.Answers{}
	}
	return c.answers.Clone()
}

func (c *Collector) Result() (instruments.Result, string, bool) {
	if c.state != StateCompleted {
		return instruments.Result{}, "", false
	}
	return c.result, c.interpretation, true
}

func (c *Collector) lastIndex() int {
	return c.instrument.QuestionCount() - 1
}

func (c *Collector) complete() {
	result, interpretation, err := c.instrument.Evaluate(c.answers)
	if err != nil {
		// Answer only ever records valid options for the current question, so
		// reaching the last index with a partial map is a bug in the walk.
		panic(fmt.Errorf("assessments: completing %s: %w", c.instrument.ID, err))
	}
	c.state = StateCompleted
	c.result = result
	c.interpretation = interpretation
}
