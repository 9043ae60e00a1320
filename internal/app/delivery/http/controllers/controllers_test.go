package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/dto/requests"
	"outcomes-service/internal/pkg/dto/responses"
	"outcomes-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInstrumentUsecase struct {
	joints     []responses.Joint
	instrument *responses.InstrumentDetail
	err        error
	gotJoint   string
}

func (f *fakeInstrumentUsecase) ListJoints(ctx context.Context) ([]responses.Joint, error) {
	return f.joints, f.err
}

func (f *fakeInstrumentUsecase) ListInstruments(ctx context.Context, jointKey string) ([]responses.InstrumentSummary, error) {
	f.gotJoint = jointKey
	return []responses.InstrumentSummary{}, f.err
}

func (f *fakeInstrumentUsecase) FindInstrument(ctx context.Context, jointKey, instrumentID string) (*responses.InstrumentDetail, error) {
	f.gotJoint = jointKey
	return f.instrument, f.err
}

type fakeAssessmentUsecase struct {
	response *responses.Assessment
	err      error

	gotRunID  string
	gotCreate *requests.CreateAssessment
	gotAnswer *requests.AnswerQuestion
	calls     []string
}

func (f *fakeAssessmentUsecase) record(method, runID string) (*responses.Assessment, error) {
	f.calls = append(f.calls, method)
	f.gotRunID = runID
	return f.response, f.err
}

func (f *fakeAssessmentUsecase) CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error) {
	f.gotCreate = request
	return f.record("CreateAssessment", "")
}

func (f *fakeAssessmentUsecase) FindAssessmentByRunID(ctx context.Context, runID string) (*responses.Assessment, error) {
	return f.record("FindAssessmentByRunID", runID)
}

func (f *fakeAssessmentUsecase) UpdatePatient(ctx context.Context, runID string, request *requests.UpdatePatient) (*responses.Assessment, error) {
	return f.record("UpdatePatient", runID)
}

func (f *fakeAssessmentUsecase) SelectJoint(ctx context.Context, runID string, request *requests.SelectJoint) (*responses.Assessment, error) {
	return f.record("SelectJoint", runID)
}

func (f *fakeAssessmentUsecase) SelectInstrument(ctx context.Context, runID string, request *requests.SelectInstrument) (*responses.Assessment, error) {
	return f.record("SelectInstrument", runID)
}

func (f *fakeAssessmentUsecase) AnswerQuestion(ctx context.Context, runID string, request *requests.AnswerQuestion) (*responses.Assessment, error) {
	f.gotAnswer = request
	return f.record("AnswerQuestion", runID)
}

func (f *fakeAssessmentUsecase) PreviousQuestion(ctx context.Context, runID string) (*responses.Assessment, error) {
	return f.record("PreviousQuestion", runID)
}

func (f *fakeAssessmentUsecase) NextQuestion(ctx context.Context, runID string) (*responses.Assessment, error) {
	return f.record("NextQuestion", runID)
}

func (f *fakeAssessmentUsecase) ResetAssessment(ctx context.Context, runID string) (*responses.Assessment, error) {
	return f.record("ResetAssessment", runID)
}

func (f *fakeAssessmentUsecase) DeleteAssessmentByRunID(ctx context.Context, runID string) error {
	_, err := f.record("DeleteAssessmentByRunID", runID)
	return err
}

func (f *fakeAssessmentUsecase) EvictIdle(ctx context.Context, cutoff time.Time) int {
	return 0
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newAssessmentRouter(usecase *fakeAssessmentUsecase) http.Handler {
	ctrl := &AssessmentController{Log: zap.NewNop(), AssessmentUsecase: usecase}

	router := chi.NewRouter()
	router.Use(withRequestID)
	router.Post("/assessments", ctrl.CreateAssessment)
	router.Get("/assessments/{run_id}", ctrl.FindAssessmentByRunID)
	router.Put("/assessments/{run_id}/patient", ctrl.UpdatePatient)
	router.Post("/assessments/{run_id}/joint", ctrl.SelectJoint)
	router.Post("/assessments/{run_id}/instrument", ctrl.SelectInstrument)
	router.Post("/assessments/{run_id}/answers", ctrl.AnswerQuestion)
	router.Post("/assessments/{run_id}/previous", ctrl.PreviousQuestion)
	router.Post("/assessments/{run_id}/next", ctrl.NextQuestion)
	router.Post("/assessments/{run_id}/reset", ctrl.ResetAssessment)
	router.Delete("/assessments/{run_id}", ctrl.DeleteAssessmentByRunID)
	return router
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestInstrumentControllerListJoints(t *testing.T) {
	usecase := &fakeInstrumentUsecase{joints: []responses.Joint{{Key: "joelho", Name: "Joelho"}}}
	ctrl := &InstrumentController{Log: zap.NewNop(), InstrumentUsecase: usecase}

	router := chi.NewRouter()
	router.Use(withRequestID)
	router.Get("/joints", ctrl.ListJoints)

	rr := serve(router, http.MethodGet, "/joints", "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, constvars.GetJointsSuccessMessage, body["message"])
	assert.Len(t, body["data"], 1)
}

func TestInstrumentControllerNotFound(t *testing.T) {
	usecase := &fakeInstrumentUsecase{err: exceptions.ErrJointNotFound(nil, "cotovelo")}
	ctrl := &InstrumentController{Log: zap.NewNop(), InstrumentUsecase: usecase}

	router := chi.NewRouter()
	router.Use(withRequestID)
	router.Get("/joints/{joint_key}/instruments", ctrl.ListInstruments)

	rr := serve(router, http.MethodGet, "/joints/cotovelo/instruments", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "cotovelo", usecase.gotJoint)
}

func TestInstrumentControllerMissingRequestID(t *testing.T) {
	ctrl := &InstrumentController{Log: zap.NewNop(), InstrumentUsecase: &fakeInstrumentUsecase{}}

	rr := httptest.NewRecorder()
	ctrl.ListJoints(rr, httptest.NewRequest(http.MethodGet, "/joints", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAssessmentControllerCreate(t *testing.T) {
	t.Run("empty body starts an anonymous run", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{response: &responses.Assessment{RunID: "run-1", State: "awaiting_selection"}}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments", "")

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, usecase.gotCreate)
		assert.Nil(t, usecase.gotCreate.Patient)
		assert.False(t, usecase.gotCreate.RegisterPatient)

		body := decodeBody(t, rr)
		assert.Equal(t, constvars.CreateAssessmentSuccessMessage, body["message"])
	})

	t.Run("patient is decoded", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{response: &responses.Assessment{RunID: "run-2"}}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments",
			`{"patient":{"name":"Maria","birth_date":"1980-02-01"},"register_patient":true}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, usecase.gotCreate.Patient)
		assert.Equal(t, "Maria", usecase.gotCreate.Patient.Name)
		assert.True(t, usecase.gotCreate.RegisterPatient)
	})

	t.Run("malformed birth date is rejected", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments",
			`{"patient":{"birth_date":"01/02/1980"}}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, usecase.calls)
	})

	t.Run("broken JSON", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments", `{"patient":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, usecase.calls)
	})
}

func TestAssessmentControllerAnswer(t *testing.T) {
	t.Run("explicit zero is accepted", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{response: &responses.Assessment{RunID: "run-1", State: "in_progress"}}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments/run-1/answers",
			`{"question_id":1,"value":0}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "run-1", usecase.gotRunID)
		require.NotNil(t, usecase.gotAnswer.Value)
		assert.Equal(t, 0, *usecase.gotAnswer.Value)
		assert.Equal(t, constvars.AnswerSuccessMessage, decodeBody(t, rr)["message"])
	})

	t.Run("missing value", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments/run-1/answers", `{"question_id":1}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, usecase.calls)
	})

	t.Run("last answer reports completion", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{response: &responses.Assessment{
			RunID:  "run-1",
			State:  "completed",
			Result: &responses.AssessmentResult{PrimaryMetric: "total", PrimaryValue: 40},
		}}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments/run-1/answers",
			`{"question_id":10,"value":4}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.AssessmentCompletedSuccessMessage, decodeBody(t, rr)["message"])
	})

	t.Run("usecase errors keep their status", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{err: exceptions.ErrInvalidAnswer(nil)}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments/run-1/answers",
			`{"question_id":1,"value":9}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestAssessmentControllerTransitions(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		call    string
		message string
	}{
		{"find", http.MethodGet, "/assessments/run-9", "", "FindAssessmentByRunID", constvars.GetAssessmentSuccessMessage},
		{"patient", http.MethodPut, "/assessments/run-9/patient", `{"patient":{"name":"Ana"}}`, "UpdatePatient", constvars.UpdatePatientSuccessMessage},
		{"joint", http.MethodPost, "/assessments/run-9/joint", `{"joint_key":"joelho"}`, "SelectJoint", constvars.SelectJointSuccessMessage},
		{"instrument", http.MethodPost, "/assessments/run-9/instrument", `{"instrument_id":"womac"}`, "SelectInstrument", constvars.SelectInstrumentSuccessMessage},
		{"previous", http.MethodPost, "/assessments/run-9/previous", "", "PreviousQuestion", constvars.NavigateSuccessMessage},
		{"next", http.MethodPost, "/assessments/run-9/next", "", "NextQuestion", constvars.NavigateSuccessMessage},
		{"reset", http.MethodPost, "/assessments/run-9/reset", "", "ResetAssessment", constvars.ResetAssessmentSuccessMessage},
		{"delete", http.MethodDelete, "/assessments/run-9", "", "DeleteAssessmentByRunID", constvars.DeleteAssessmentSuccessMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase := &fakeAssessmentUsecase{response: &responses.Assessment{RunID: "run-9"}}
			rr := serve(newAssessmentRouter(usecase), tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, []string{tt.call}, usecase.calls)
			assert.Equal(t, "run-9", usecase.gotRunID)
			assert.Equal(t, tt.message, decodeBody(t, rr)["message"])
		})
	}
}

func TestAssessmentControllerSelectJointRequiresKey(t *testing.T) {
	usecase := &fakeAssessmentUsecase{}
	rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments/run-1/joint", `{}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, usecase.calls)
}

func TestAssessmentControllerErrors(t *testing.T) {
	t.Run("unknown run", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{err: exceptions.ErrAssessmentNotFound(nil, "nope")}
		rr := serve(newAssessmentRouter(usecase), http.MethodGet, "/assessments/nope", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{err: exceptions.ErrIllegalTransition(nil)}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments/run-1/next", "")
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("deadline", func(t *testing.T) {
		usecase := &fakeAssessmentUsecase{err: context.DeadlineExceeded}
		rr := serve(newAssessmentRouter(usecase), http.MethodPost, "/assessments/run-1/reset", "")
		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}
