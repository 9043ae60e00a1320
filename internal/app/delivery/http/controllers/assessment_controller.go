package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/dto/requests"
	"outcomes-service/internal/pkg/dto/responses"
	"outcomes-service/internal/pkg/exceptions"
	"outcomes-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
}

var (
	assessmentControllerInstance *AssessmentController
	onceAssessmentController     sync.Once
)

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase) *AssessmentController {
	onceAssessmentController.Do(func() {
		instance := &AssessmentController{
			Log:               logger,
			AssessmentUsecase: assessmentUsecase,
		}
		assessmentControllerInstance = instance
	})
	return assessmentControllerInstance
}

func (ctrl *AssessmentController) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "CreateAssessment")
	if !ok {
		return
	}

	request := new(requests.CreateAssessment)
	if !ctrl.decodeBody(w, r, requestID, "CreateAssessment", request, true) {
		return
	}
	if request.Patient != nil && !ctrl.validate(w, requestID, "CreateAssessment", request.Patient) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.CreateAssessment(ctx, request)
	ctrl.respond(w, requestID, "CreateAssessment", constvars.StatusCreated, constvars.CreateAssessmentSuccessMessage, response, err)
}

func (ctrl *AssessmentController) FindAssessmentByRunID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "FindAssessmentByRunID")
	if !ok {
		return
	}
	runID, ok := ctrl.runID(w, r, requestID, "FindAssessmentByRunID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAssessmentByRunID(ctx, runID)
	ctrl.respond(w, requestID, "FindAssessmentByRunID", constvars.StatusOK, constvars.GetAssessmentSuccessMessage, response, err)
}

func (ctrl *AssessmentController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "UpdatePatient")
	if !ok {
		return
	}
	runID, ok := ctrl.runID(w, r, requestID, "UpdatePatient")
	if !ok {
		return
	}

	request := new(requests.UpdatePatient)
	if !ctrl.decodeBody(w, r, requestID, "UpdatePatient", request, false) {
		return
	}
	if !ctrl.validate(w, requestID, "UpdatePatient", &request.Patient) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.UpdatePatient(ctx, runID, request)
	ctrl.respond(w, requestID, "UpdatePatient", constvars.StatusOK, constvars.UpdatePatientSuccessMessage, response, err)
}

func (ctrl *AssessmentController) SelectJoint(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "SelectJoint")
	if !ok {
		return
	}
	runID, ok := ctrl.runID(w, r, requestID, "SelectJoint")
	if !ok {
		return
	}

	request := new(requests.SelectJoint)
	if !ctrl.decodeBody(w, r, requestID, "SelectJoint", request, false) {
		return
	}
	if !ctrl.validate(w, requestID, "SelectJoint", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SelectJoint(ctx, runID, request)
	ctrl.respond(w, requestID, "SelectJoint", constvars.StatusOK, constvars.SelectJointSuccessMessage, response, err)
}

func (ctrl *AssessmentController) SelectInstrument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "SelectInstrument")
	if !ok {
		return
	}
	runID, ok := ctrl.runID(w, r, requestID, "SelectInstrument")
	if !ok {
		return
	}

	request := new(requests.SelectInstrument)
	if !ctrl.decodeBody(w, r, requestID, "SelectInstrument", request, false) {
		return
	}
	if !ctrl.validate(w, requestID, "SelectInstrument", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SelectInstrument(ctx, runID, request)
	ctrl.respond(w, requestID, "SelectInstrument", constvars.StatusOK, constvars.SelectInstrumentSuccessMessage, response, err)
}

func (ctrl *AssessmentController) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AnswerQuestion")
	if !ok {
		return
	}
	runID, ok := ctrl.runID(w, r, requestID, "AnswerQuestion")
	if !ok {
		return
	}

	request := new(requests.AnswerQuestion)
	if !ctrl.decodeBody(w, r, requestID, "AnswerQuestion", request, false) {
		return
	}
	if !ctrl.validate(w, requestID, "AnswerQuestion", request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.AnswerQuestion(ctx, runID, request)
	message := constvars.AnswerSuccessMessage
	if err == nil && response.Result != nil {
		message = constvars.AssessmentCompletedSuccessMessage
	}
	ctrl.respond(w, requestID, "AnswerQuestion", constvars.StatusOK, message, response, err)
}

func (ctrl *AssessmentController) PreviousQuestion(w http.ResponseWriter, r *http.Request) {
	ctrl.navigate(w, r, "PreviousQuestion", ctrl.AssessmentUsecase.PreviousQuestion, constvars.NavigateSuccessMessage)
}

func (ctrl *AssessmentController) NextQuestion(w http.ResponseWriter, r *http.Request) {
	ctrl.navigate(w, r, "NextQuestion", ctrl.AssessmentUsecase.NextQuestion, constvars.NavigateSuccessMessage)
}

func (ctrl *AssessmentController) ResetAssessment(w http.ResponseWriter, r *http.Request) {
	ctrl.navigate(w, r, "ResetAssessment", ctrl.AssessmentUsecase.ResetAssessment, constvars.ResetAssessmentSuccessMessage)
}

func (ctrl *AssessmentController) DeleteAssessmentByRunID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DeleteAssessmentByRunID")
	if !ok {
		return
	}
	runID, ok := ctrl.runID(w, r, requestID, "DeleteAssessmentByRunID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	err := ctrl.AssessmentUsecase.DeleteAssessmentByRunID(ctx, runID)
	ctrl.respond(w, requestID, "DeleteAssessmentByRunID", constvars.StatusOK, constvars.DeleteAssessmentSuccessMessage, nil, err)
}

type runTransition func(ctx context.Context, runID string) (*responses.Assessment, error)

func (ctrl *AssessmentController) navigate(w http.ResponseWriter, r *http.Request, method string, transition runTransition, message string) {
	requestID, ok := ctrl.requestID(w, r, method)
	if !ok {
		return
	}
	runID, ok := ctrl.runID(w, r, requestID, method)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	response, err := transition(ctx, runID)
	ctrl.respond(w, requestID, method, constvars.StatusOK, message, response, err)
}

func (ctrl *AssessmentController) requestID(w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AssessmentController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	ctrl.Log.Info("AssessmentController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func (ctrl *AssessmentController) runID(w http.ResponseWriter, r *http.Request, requestID, method string) (string, bool) {
	runID := chi.URLParam(r, constvars.URLParamRunID)
	if runID == "" {
		ctrl.Log.Error("AssessmentController."+method+" run id missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamRunID))
		return "", false
	}
	return runID, true
}

// decodeBody reads a JSON body into payload. An empty body is accepted only
// when optional is set.
func (ctrl *AssessmentController) decodeBody(w http.ResponseWriter, r *http.Request, requestID, method string, payload interface{}, optional bool) bool {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(payload)
	if errors.Is(err, io.EOF) && optional {
		return true
	}
	if err != nil {
		ctrl.Log.Error("AssessmentController."+method+" error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return true
}

func (ctrl *AssessmentController) validate(w http.ResponseWriter, requestID, method string, payload interface{}) bool {
	if err := utils.ValidateStruct(payload); err != nil {
		ctrl.Log.Error("AssessmentController."+method+" validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func (ctrl *AssessmentController) respond(w http.ResponseWriter, requestID, method string, statusCode int, message string, response interface{}, err error) {
	if err != nil {
		ctrl.Log.Error("AssessmentController."+method+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, statusCode, message, response)
}
