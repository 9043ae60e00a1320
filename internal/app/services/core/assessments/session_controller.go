package assessments

import (
	"fmt"
	"sync"
	"time"

	"outcomes-service/internal/app/services/core/instruments"
)

// CompletionHook receives every outcome as soon as its run completes. It is
// called while the controller lock is held and must not block.
type CompletionHook func(outcome Outcome)

// SessionController drives joint selection, instrument selection, answer
// collection and the result of a single assessment run. All methods are safe
// for concurrent use; transitions are applied one at a time.
type SessionController struct {
	mu         sync.Mutex
	catalog    *instruments.Catalog
	session    *Session
	onComplete CompletionHook
	now        func() time.Time
}

func NewSessionController(catalog *instruments.Catalog, onComplete CompletionHook) *SessionController {
	return &SessionController{
		catalog:    catalog,
		onComplete: onComplete,
		now:        time.Now,
	}
}

// SelectJoint opens a fresh session for jointKey. Switching joints is allowed
// until an instrument has been picked.
func (sc *SessionController) SelectJoint(jointKey string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session != nil && sc.session.Collector.State() != StateAwaitingSelection {
		return fmt.Errorf("%w: reset before choosing another joint", ErrIllegalTransition)
	}

	joint, err := sc.catalog.GetJoint(jointKey)
	if err != nil {
		return err
	}
	sc.session = newSession(joint)
	return nil
}

func (sc *SessionController) SelectInstrument(instrumentID string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session == nil {
		return fmt.Errorf("%w: no joint selected", ErrIllegalTransition)
	}
	instrument, err := sc.catalog.GetInstrument(sc.session.Joint.Key, instrumentID)
	if err != nil {
		return err
	}
	return sc.session.Collector.Start(instrument)
}

func (sc *SessionController) Answer(questionID, value int) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	collector, err := sc.collector()
	if err != nil {
		return err
	}
	if err := collector.Answer(questionID, value); err != nil {
		return err
	}
	if collector.State() == StateCompleted {
		sc.finish()
	}
	return nil
}

func (sc *SessionController) Previous() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	collector, err := sc.collector()
	if err != nil {
		return err
	}
	return collector.Previous()
}

func (sc *SessionController) Next() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	collector, err := sc.collector()
	if err != nil {
		return err
	}
	return collector.Next()
}

// Reset drops the current session. The next run starts from joint selection.
func (sc *SessionController) Reset() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session != nil {
		sc.session.Collector.Reset()
	}
	sc.session = nil
}

func (sc *SessionController) CurrentQuestion() (instruments.Question, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session == nil {
		return instruments.Question{}, false
	}
	return sc.session.Collector.CurrentQuestion()
}

func (sc *SessionController) CurrentOptions() []instruments.Option {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session == nil {
		return nil
	}
	return sc.session.Collector.CurrentOptions()
}

func (sc *SessionController) ProgressFraction() float64 {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session == nil {
		return 0
	}
	return sc.session.Collector.ProgressFraction()
}

// Result is only available once the run is completed.
func (sc *SessionController) Result() (Outcome, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session == nil || sc.session.outcome == nil {
		return Outcome{}, false
	}
	return cloneOutcome(*sc.session.outcome), true
}

func (sc *SessionController) Snapshot() Snapshot {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.session == nil {
		return Snapshot{State: StateAwaitingSelection, Answers: instruments.Answers{}}
	}

	collector := sc.session.Collector
	snapshot := Snapshot{
		State:      collector.State(),
		Joint:      sc.session.Joint,
		Instrument: collector.Instrument(),
		Cursor:     collector.Cursor(),
		Options:    collector.CurrentOptions(),
		Progress:   collector.ProgressFraction(),
		Answers:    collector.Answers(),
	}
	if question, ok := collector.CurrentQuestion(); ok {
		snapshot.Question = &question
	}
	if value, ok := collector.CurrentAnswer(); ok {
		snapshot.Answer = &value
	}
	if sc.session.outcome != nil {
		outcome := cloneOutcome(*sc.session.outcome)
		snapshot.Outcome = &outcome
	}
	return snapshot
}

func (sc *SessionController) collector() (*Collector, error) {
	if sc.session == nil {
		return nil, fmt.Errorf("%w: no joint selected", ErrIllegalTransition)
	}
	return sc.session.Collector, nil
}

func (sc *SessionController) finish() {
	collector := sc.session.Collector
	result, interpretation, _ := collector.Result()
	instrument := collector.Instrument()

	outcome := Outcome{
		JointKey:       sc.session.Joint.Key,
		JointName:      sc.session.Joint.Name,
		InstrumentID:   instrument.ID,
		InstrumentName: instrument.ShortName,
		Result:         result,
		Interpretation: interpretation,
		Answers:        collector.Answers(),
		CompletedAt:    sc.now().UTC(),
	}
	sc.session.outcome = &outcome

	if sc.onComplete != nil {
		sc.onComplete(cloneOutcome(outcome))
	}
}

func cloneOutcome(outcome Outcome) Outcome {
	outcome.Answers = outcome.Answers.Clone()
	return outcome
}
