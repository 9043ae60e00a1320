package instruments

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrIncompleteScoringInput = errors.New("incomplete scoring input")
	ErrInvalidCatalog         = errors.New("invalid catalog")
)

type Option struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type Question struct {
	ID      int    `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Section string `json:"section" yaml:"section"`
}

// Answers maps a question ID to the chosen option value.
type Answers map[int]int

func (a Answers) Clone() Answers {
	cloned := make(Answers, len(a))
	for id, value := range a {
		cloned[id] = value
	}
	return cloned
}

type SchemaKind string

const (
	SchemaUniform     SchemaKind = "uniform"
	SchemaPerQuestion SchemaKind = "per_question"
)

// OptionSchema is either one option list shared by every question or a
// dedicated list per question ID. Use Uniform or PerQuestion to build one.
type OptionSchema struct {
	kind        SchemaKind
	uniform     []Option
	perQuestion map[int][]Option
}

func Uniform(options ...Option) OptionSchema {
	return OptionSchema{kind: SchemaUniform, uniform: options}
}

func PerQuestion(options map[int][]Option) OptionSchema {
	return OptionSchema{kind: SchemaPerQuestion, perQuestion: options}
}

func (s OptionSchema) Kind() SchemaKind {
	return s.kind
}

func (s OptionSchema) OptionsFor(questionID int) []Option {
	switch s.kind {
	case SchemaUniform:
		return s.uniform
	case SchemaPerQuestion:
		return s.perQuestion[questionID]
	default:
		return nil
	}
}

func (s OptionSchema) IsValid(questionID, value int) bool {
	for _, option := range s.OptionsFor(questionID) {
		if option.Value == value {
			return true
		}
	}
	return false
}

// Bounds returns the smallest and largest option value for a question.
func (s OptionSchema) Bounds(questionID int) (min, max int) {
	options := s.OptionsFor(questionID)
	if len(options) == 0 {
		return 0, 0
	}
	min, max = options[0].Value, options[0].Value
	for _, option := range options[1:] {
		if option.Value < min {
			min = option.Value
		}
		if option.Value > max {
			max = option.Value
		}
	}
	return min, max
}

type ScoreFunc func(answers Answers) Result

type InterpretFunc func(result Result) string

type Instrument struct {
	ID          string
	ShortName   string
	FullName    string
	Description string
	Validation  string
	Citation    string
	MCID        string
	Questions   []Question
	Options     OptionSchema
	Primary     string
	Ladder      Ladder
	Score       ScoreFunc
	Interpret   InterpretFunc
}

func (i *Instrument) Direction() Direction {
	return i.Ladder.Direction
}

func (i *Instrument) QuestionCount() int {
	return len(i.Questions)
}

func (i *Instrument) QuestionIndex(questionID int) (int, bool) {
	for index, question := range i.Questions {
		if question.ID == questionID {
			return index, true
		}
	}
	return 0, false
}

// CheckAnswers reports whether answers has exactly one valid value for every
// declared question and nothing else.
func (i *Instrument) CheckAnswers(answers Answers) error {
	if len(answers) != len(i.Questions) {
		return fmt.Errorf("%w: instrument %s expects %d answers, got %d", ErrIncompleteScoringInput, i.ID, len(i.Questions), len(answers))
	}
	for _, question := range i.Questions {
		value, ok := answers[question.ID]
		if !ok {
			return fmt.Errorf("%w: instrument %s is missing question %d", ErrIncompleteScoringInput, i.ID, question.ID)
		}
		if !i.Options.IsValid(question.ID, value) {
			return fmt.Errorf("%w: instrument %s question %d has no option %d", ErrIncompleteScoringInput, i.ID, question.ID, value)
		}
	}
	return nil
}

// Evaluate scores a complete answer set and labels the result.
func (i *Instrument) Evaluate(answers Answers) (Result, string, error) {
	if err := i.CheckAnswers(answers); err != nil {
		return Result{}, "", err
	}
	result := i.Score(answers.Clone())
	return result, i.Interpret(result), nil
}

// Extremes builds the answer sets made only of the lowest and only of the
// highest option values.
func (i *Instrument) Extremes() (lowest, highest Answers) {
	lowest = make(Answers, len(i.Questions))
	highest = make(Answers, len(i.Questions))
	for _, question := range i.Questions {
		lowest[question.ID], highest[question.ID] = i.Options.Bounds(question.ID)
	}
	return lowest, highest
}

func (i *Instrument) validate() error {
	if i.ID == "" {
		return fmt.Errorf("%w: instrument without id", ErrInvalidCatalog)
	}
	if len(i.Questions) == 0 {
		return fmt.Errorf("%w: instrument %s has no questions", ErrInvalidCatalog, i.ID)
	}
	if i.Score == nil || i.Interpret == nil {
		return fmt.Errorf("%w: instrument %s is missing scoring or interpretation", ErrInvalidCatalog, i.ID)
	}
	if i.Options.kind != SchemaUniform && i.Options.kind != SchemaPerQuestion {
		return fmt.Errorf("%w: instrument %s has no option schema", ErrInvalidCatalog, i.ID)
	}

	declared := make(map[int]bool, len(i.Questions))
	for _, question := range i.Questions {
		if declared[question.ID] {
			return fmt.Errorf("%w: instrument %s declares question %d twice", ErrInvalidCatalog, i.ID, question.ID)
		}
		declared[question.ID] = true
		if len(i.Options.OptionsFor(question.ID)) == 0 {
			return fmt.Errorf("%w: instrument %s has no options for question %d", ErrInvalidCatalog, i.ID, question.ID)
		}
	}

	if i.Options.kind == SchemaPerQuestion {
		extra := make([]int, 0)
		for id := range i.Options.perQuestion {
			if !declared[id] {
				extra = append(extra, id)
			}
		}
		if len(extra) > 0 {
			sort.Ints(extra)
			return fmt.Errorf("%w: instrument %s has options for undeclared questions %v", ErrInvalidCatalog, i.ID, extra)
		}
	}
	return nil
}

type JointRegion struct {
	Key         string
	Name        string
	Instruments []*Instrument
}
