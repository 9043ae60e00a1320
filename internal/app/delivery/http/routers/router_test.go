package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"outcomes-service/internal/app/config"
	"outcomes-service/internal/app/delivery/http/controllers"
	"outcomes-service/internal/app/delivery/http/middlewares"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/dto/requests"
	"outcomes-service/internal/pkg/dto/responses"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockInstrumentUsecase struct {
	mock.Mock
}

func (m *MockInstrumentUsecase) ListJoints(ctx context.Context) ([]responses.Joint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.Joint), args.Error(1)
}

func (m *MockInstrumentUsecase) ListInstruments(ctx context.Context, jointKey string) ([]responses.InstrumentSummary, error) {
	args := m.Called(ctx, jointKey)
	return args.Get(0).([]responses.InstrumentSummary), args.Error(1)
}

func (m *MockInstrumentUsecase) FindInstrument(ctx context.Context, jointKey, instrumentID string) (*responses.InstrumentDetail, error) {
	args := m.Called(ctx, jointKey, instrumentID)
	return args.Get(0).(*responses.InstrumentDetail), args.Error(1)
}

type MockAssessmentUsecase struct {
	mock.Mock
}

func (m *MockAssessmentUsecase) assessment(args mock.Arguments) (*responses.Assessment, error) {
	result, _ := args.Get(0).(*responses.Assessment)
	return result, args.Error(1)
}

func (m *MockAssessmentUsecase) CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, request))
}

func (m *MockAssessmentUsecase) FindAssessmentByRunID(ctx context.Context, runID string) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID))
}

func (m *MockAssessmentUsecase) UpdatePatient(ctx context.Context, runID string, request *requests.UpdatePatient) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID, request))
}

func (m *MockAssessmentUsecase) SelectJoint(ctx context.Context, runID string, request *requests.SelectJoint) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID, request))
}

func (m *MockAssessmentUsecase) SelectInstrument(ctx context.Context, runID string, request *requests.SelectInstrument) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID, request))
}

func (m *MockAssessmentUsecase) AnswerQuestion(ctx context.Context, runID string, request *requests.AnswerQuestion) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID, request))
}

func (m *MockAssessmentUsecase) PreviousQuestion(ctx context.Context, runID string) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID))
}

func (m *MockAssessmentUsecase) NextQuestion(ctx context.Context, runID string) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID))
}

func (m *MockAssessmentUsecase) ResetAssessment(ctx context.Context, runID string) (*responses.Assessment, error) {
	return m.assessment(m.Called(ctx, runID))
}

func (m *MockAssessmentUsecase) DeleteAssessmentByRunID(ctx context.Context, runID string) error {
	return m.Called(ctx, runID).Error(0)
}

func (m *MockAssessmentUsecase) EvictIdle(ctx context.Context, cutoff time.Time) int {
	return m.Called(ctx, cutoff).Int(0)
}

const testAPIKey = "test-api-key-12345"

func newTestRouter(t *testing.T, apiKeyHash string, instrumentUsecase *MockInstrumentUsecase, assessmentUsecase *MockAssessmentUsecase) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                  "v1",
			EndpointPrefix:           "api",
			MaxRequests:              100,
			APIKeyHash:               apiKeyHash,
			APIKeyRateLimit:          100,
			AnswerRateLimit:          2,
			AnswerBlockTimeInSeconds: 30,
		},
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		logger,
		middlewares.NewMiddlewares(logger, internalConfig),
		&controllers.InstrumentController{Log: logger, InstrumentUsecase: instrumentUsecase},
		&controllers.AssessmentController{Log: logger, AssessmentUsecase: assessmentUsecase},
	)
	return router
}

func hashAPIKey(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCatalogRoutesArePublic(t *testing.T) {
	instrumentUsecase := new(MockInstrumentUsecase)
	instrumentUsecase.On("ListJoints", mock.Anything).Return([]responses.Joint{{Key: "coluna", Name: "Coluna"}}, nil)
	instrumentUsecase.On("ListInstruments", mock.Anything, "coluna").Return([]responses.InstrumentSummary{}, nil)
	instrumentUsecase.On("FindInstrument", mock.Anything, "coluna", "ndi").Return(&responses.InstrumentDetail{}, nil)

	router := newTestRouter(t, hashAPIKey(t), instrumentUsecase, new(MockAssessmentUsecase))

	for _, target := range []string{
		"/api/v1/joints",
		"/api/v1/joints/coluna/instruments",
		"/api/v1/joints/coluna/instruments/ndi",
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, rr.Code, target)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), target)
	}
	instrumentUsecase.AssertExpectations(t)
}

func TestAssessmentRoutesRequireAPIKey(t *testing.T) {
	assessmentUsecase := new(MockAssessmentUsecase)
	assessmentUsecase.On("FindAssessmentByRunID", mock.Anything, "run-1").Return(&responses.Assessment{RunID: "run-1"}, nil)

	router := newTestRouter(t, hashAPIKey(t), new(MockInstrumentUsecase), assessmentUsecase)

	t.Run("missing key", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/assessments/run-1", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/run-1", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "nope")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/run-1", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	assessmentUsecase.AssertNumberOfCalls(t, "FindAssessmentByRunID", 1)
}

func TestAssessmentRoutesOpenWithoutHash(t *testing.T) {
	assessmentUsecase := new(MockAssessmentUsecase)
	assessmentUsecase.On("CreateAssessment", mock.Anything, mock.AnythingOfType("*requests.CreateAssessment")).
		Return(&responses.Assessment{RunID: "run-1"}, nil)

	router := newTestRouter(t, "", new(MockInstrumentUsecase), assessmentUsecase)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/assessments", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assessmentUsecase.AssertExpectations(t)
}

func TestAnswerRouteIsThrottled(t *testing.T) {
	assessmentUsecase := new(MockAssessmentUsecase)
	assessmentUsecase.On("AnswerQuestion", mock.Anything, "run-1", mock.AnythingOfType("*requests.AnswerQuestion")).
		Return(&responses.Assessment{RunID: "run-1"}, nil)

	router := newTestRouter(t, "", new(MockInstrumentUsecase), assessmentUsecase)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/run-1/answers", strings.NewReader(`{"question_id":1,"value":1}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assessmentUsecase.AssertNumberOfCalls(t, "AnswerQuestion", 2)
}
