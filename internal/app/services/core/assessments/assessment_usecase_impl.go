package assessments

import (
	"context"
	"errors"
	"fmt"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/app/services/core/instruments"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/dto/requests"
	"outcomes-service/internal/pkg/dto/responses"
	"outcomes-service/internal/pkg/exceptions"
	"outcomes-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// run is one assessment held in memory between requests.
type run struct {
	id         string
	controller *SessionController

	mu              sync.Mutex
	patient         models.Patient
	registerPatient bool
	lastRequestID   string
	updatedAt       time.Time
}

func (r *run) touch(requestID string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRequestID = requestID
	r.updatedAt = now
}

type assessmentUsecase struct {
	Catalog   *instruments.Catalog
	Publisher contracts.OutcomePublisher
	Log       *zap.Logger

	mu   sync.RWMutex
	runs map[string]*run
	now  func() time.Time
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

// NewAssessmentUsecase keeps every run in process memory. publisher may be
// nil, in which case completed runs are never emitted.
func NewAssessmentUsecase(
	catalog *instruments.Catalog,
	publisher contracts.OutcomePublisher,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = newAssessmentUsecase(catalog, publisher, logger)
	})
	return assessmentUsecaseInstance
}

func newAssessmentUsecase(catalog *instruments.Catalog, publisher contracts.OutcomePublisher, logger *zap.Logger) *assessmentUsecase {
	return &assessmentUsecase{
		Catalog:   catalog,
		Publisher: publisher,
		Log:       logger,
		runs:      make(map[string]*run),
		now:       time.Now,
	}
}

func (uc *assessmentUsecase) CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.CreateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	r := &run{
		id:              utils.GenerateRunID(),
		patient:         models.NewPatientFromRequest(request.Patient),
		registerPatient: request.RegisterPatient,
		lastRequestID:   requestID,
		updatedAt:       uc.now(),
	}
	r.controller = NewSessionController(uc.Catalog, func(outcome Outcome) {
		uc.emit(r, outcome)
	})

	uc.mu.Lock()
	uc.runs[r.id] = r
	count := len(uc.runs)
	uc.mu.Unlock()

	uc.Log.Info("assessmentUsecase.CreateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, r.id),
		zap.Int(constvars.LoggingRunCountKey, count),
	)
	return uc.convertRunIntoResponse(r), nil
}

func (uc *assessmentUsecase) FindAssessmentByRunID(ctx context.Context, runID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.FindAssessmentByRunID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	r, err := uc.findRun(runID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAssessmentByRunID error fetching run",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.convertRunIntoResponse(r), nil
}

func (uc *assessmentUsecase) UpdatePatient(ctx context.Context, runID string, request *requests.UpdatePatient) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	r, err := uc.findRun(runID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.UpdatePatient error fetching run",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if _, completed := r.controller.Result(); completed {
		err := exceptions.ErrIllegalTransition(fmt.Errorf("%w: patient data is fixed once the run completes", ErrIllegalTransition))
		uc.Log.Error("assessmentUsecase.UpdatePatient run already completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return nil, err
	}

	r.mu.Lock()
	r.patient = models.NewPatientFromRequest(&request.Patient)
	r.lastRequestID = requestID
	r.updatedAt = uc.now()
	r.mu.Unlock()

	uc.Log.Info("assessmentUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)
	return uc.convertRunIntoResponse(r), nil
}

func (uc *assessmentUsecase) SelectJoint(ctx context.Context, runID string, request *requests.SelectJoint) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.SelectJoint called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingJointKey, request.JointKey),
	)

	return uc.transition(ctx, "SelectJoint", runID, func(r *run) error {
		err := r.controller.SelectJoint(request.JointKey)
		if errors.Is(err, instruments.ErrNotFound) {
			return exceptions.ErrJointNotFound(err, request.JointKey)
		}
		return err
	})
}

func (uc *assessmentUsecase) SelectInstrument(ctx context.Context, runID string, request *requests.SelectInstrument) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.SelectInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingInstrumentIDKey, request.InstrumentID),
	)

	return uc.transition(ctx, "SelectInstrument", runID, func(r *run) error {
		err := r.controller.SelectInstrument(request.InstrumentID)
		if errors.Is(err, instruments.ErrNotFound) {
			jointKey := ""
			if joint := r.controller.Snapshot().Joint; joint != nil {
				jointKey = joint.Key
			}
			return exceptions.ErrInstrumentNotFound(err, jointKey, request.InstrumentID)
		}
		return err
	})
}

func (uc *assessmentUsecase) AnswerQuestion(ctx context.Context, runID string, request *requests.AnswerQuestion) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if request.QuestionID == nil || request.Value == nil {
		return nil, exceptions.ErrInvalidAnswer(fmt.Errorf("%w: question_id and value are required", ErrInvalidAnswer))
	}
	uc.Log.Info("assessmentUsecase.AnswerQuestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.Int(constvars.LoggingQuestionIDKey, *request.QuestionID),
	)

	return uc.transition(ctx, "AnswerQuestion", runID, func(r *run) error {
		return r.controller.Answer(*request.QuestionID, *request.Value)
	})
}

func (uc *assessmentUsecase) PreviousQuestion(ctx context.Context, runID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.PreviousQuestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	return uc.transition(ctx, "PreviousQuestion", runID, func(r *run) error {
		return r.controller.Previous()
	})
}

func (uc *assessmentUsecase) NextQuestion(ctx context.Context, runID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.NextQuestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	return uc.transition(ctx, "NextQuestion", runID, func(r *run) error {
		return r.controller.Next()
	})
}

func (uc *assessmentUsecase) ResetAssessment(ctx context.Context, runID string) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.ResetAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	return uc.transition(ctx, "ResetAssessment", runID, func(r *run) error {
		r.controller.Reset()
		return nil
	})
}

func (uc *assessmentUsecase) DeleteAssessmentByRunID(ctx context.Context, runID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assessmentUsecase.DeleteAssessmentByRunID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	uc.mu.Lock()
	r, exists := uc.runs[runID]
	delete(uc.runs, runID)
	uc.mu.Unlock()

	if !exists {
		err := exceptions.ErrAssessmentNotFound(nil, runID)
		uc.Log.Error("assessmentUsecase.DeleteAssessmentByRunID run not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	r.controller.Reset()

	uc.Log.Info("assessmentUsecase.DeleteAssessmentByRunID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)
	return nil
}

func (uc *assessmentUsecase) EvictIdle(ctx context.Context, cutoff time.Time) int {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.mu.Lock()
	evicted := 0
	for id, r := range uc.runs {
		r.mu.Lock()
		idle := r.updatedAt.Before(cutoff)
		r.mu.Unlock()
		if idle {
			delete(uc.runs, id)
			evicted++
		}
	}
	remaining := len(uc.runs)
	uc.mu.Unlock()

	if evicted > 0 {
		uc.Log.Info("assessmentUsecase.EvictIdle evicted idle runs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingEvictedCountKey, evicted),
			zap.Int(constvars.LoggingRunCountKey, remaining),
		)
	}
	return evicted
}

func (uc *assessmentUsecase) findRun(runID string) (*run, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, exists := uc.runs[runID]
	if !exists {
		return nil, exceptions.ErrAssessmentNotFound(nil, runID)
	}
	return r, nil
}

// transition applies apply to the run and maps engine errors onto HTTP
// errors. The run lock is not held while apply runs; the session controller
// serializes itself and the completion hook takes the run lock.
func (uc *assessmentUsecase) transition(ctx context.Context, method, runID string, apply func(r *run) error) (*responses.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	r, err := uc.findRun(runID)
	if err != nil {
		uc.Log.Error(fmt.Sprintf("assessmentUsecase.%s error fetching run", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	r.touch(requestID, uc.now())

	if err := apply(r); err != nil {
		err = mapEngineError(err)
		uc.Log.Error(fmt.Sprintf("assessmentUsecase.%s error applying transition", method),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return nil, err
	}

	response := uc.convertRunIntoResponse(r)
	uc.Log.Info(fmt.Sprintf("assessmentUsecase.%s succeeded", method),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingStateKey, response.State),
		zap.Int(constvars.LoggingCursorKey, response.Cursor),
	)
	return response, nil
}

func mapEngineError(err error) error {
	var customErr *exceptions.CustomError
	switch {
	case errors.As(err, &customErr):
		return err
	case errors.Is(err, ErrInvalidAnswer):
		return exceptions.ErrInvalidAnswer(err)
	case errors.Is(err, ErrIllegalTransition):
		return exceptions.ErrIllegalTransition(err)
	default:
		return err
	}
}

// emit runs inside the session controller's completion hook and must not
// block: Publish only schedules delivery.
func (uc *assessmentUsecase) emit(r *run, outcome Outcome) {
	r.mu.Lock()
	patient := r.patient
	register := r.registerPatient
	requestID := r.lastRequestID
	r.mu.Unlock()

	uc.Log.Info("assessmentUsecase.emit run completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, r.id),
		zap.String(constvars.LoggingInstrumentIDKey, outcome.InstrumentID),
		zap.String(constvars.LoggingInterpretationKey, outcome.Interpretation),
	)

	if uc.Publisher == nil || !register {
		return
	}

	record, err := NewOutcomeRecord(r.id, patient, outcome)
	if err != nil {
		uc.Log.Error("assessmentUsecase.emit error building outcome record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRunIDKey, r.id),
			zap.Error(err),
		)
		return
	}

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	uc.Publisher.Publish(ctx, record)
}

func (uc *assessmentUsecase) convertRunIntoResponse(r *run) *responses.Assessment {
	snapshot := r.controller.Snapshot()

	r.mu.Lock()
	response := &responses.Assessment{
		RunID:           r.id,
		State:           string(snapshot.State),
		RegisterPatient: r.registerPatient,
		Patient:         r.patient.ConvertIntoResponse(),
		Cursor:          snapshot.Cursor,
		Progress:        snapshot.Progress,
		Answers:         snapshot.Answers,
		UpdatedAt:       r.updatedAt,
	}
	r.mu.Unlock()

	if snapshot.Joint != nil {
		response.Joint = &responses.JointRef{Key: snapshot.Joint.Key, Name: snapshot.Joint.Name}
	}
	if snapshot.Instrument != nil {
		response.Instrument = &responses.InstrumentRef{ID: snapshot.Instrument.ID, ShortName: snapshot.Instrument.ShortName}
		response.QuestionCount = snapshot.Instrument.QuestionCount()
		if snapshot.Question != nil {
			question := snapshot.Instrument.ConvertQuestionIntoResponse(*snapshot.Question)
			response.Question = &question
		}
	}
	response.CurrentAnswer = snapshot.Answer

	if snapshot.Outcome != nil {
		response.Result = convertOutcomeIntoResponse(*snapshot.Outcome)
	}
	return response
}

func convertOutcomeIntoResponse(outcome Outcome) *responses.AssessmentResult {
	score, err := json.Marshal(outcome.Result)
	if err != nil {
		score = nil
	}
	return &responses.AssessmentResult{
		PrimaryMetric:  outcome.Result.PrimaryName(),
		PrimaryValue:   outcome.Result.Primary(),
		Score:          score,
		Interpretation: outcome.Interpretation,
		CompletedAt:    outcome.CompletedAt,
	}
}
