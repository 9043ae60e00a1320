package controllers

import (
	"context"
	"net/http"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"outcomes-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InstrumentController struct {
	Log               *zap.Logger
	InstrumentUsecase contracts.InstrumentUsecase
}

var (
	instrumentControllerInstance *InstrumentController
	onceInstrumentController     sync.Once
)

func NewInstrumentController(logger *zap.Logger, instrumentUsecase contracts.InstrumentUsecase) *InstrumentController {
	onceInstrumentController.Do(func() {
		instance := &InstrumentController{
			Log:               logger,
			InstrumentUsecase: instrumentUsecase,
		}
		instrumentControllerInstance = instance
	})
	return instrumentControllerInstance
}

func (ctrl *InstrumentController) ListJoints(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("InstrumentController.ListJoints requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("InstrumentController.ListJoints called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.InstrumentUsecase.ListJoints(ctx)
	if err != nil {
		ctrl.Log.Error("InstrumentController.ListJoints error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetJointsSuccessMessage, result)
}

func (ctrl *InstrumentController) ListInstruments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("InstrumentController.ListInstruments requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	jointKey := chi.URLParam(r, constvars.URLParamJointKey)
	ctrl.Log.Info("InstrumentController.ListInstruments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJointKey, jointKey),
	)
	if jointKey == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamJointKey))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.InstrumentUsecase.ListInstruments(ctx, jointKey)
	if err != nil {
		ctrl.Log.Error("InstrumentController.ListInstruments error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInstrumentsSuccessMessage, result)
}

func (ctrl *InstrumentController) FindInstrument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("InstrumentController.FindInstrument requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	jointKey := chi.URLParam(r, constvars.URLParamJointKey)
	instrumentID := chi.URLParam(r, constvars.URLParamInstrumentID)
	ctrl.Log.Info("InstrumentController.FindInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJointKey, jointKey),
		zap.String(constvars.LoggingInstrumentIDKey, instrumentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.HandlerTimeoutInSeconds*time.Second)
	defer cancel()

	result, err := ctrl.InstrumentUsecase.FindInstrument(ctx, jointKey, instrumentID)
	if err != nil {
		ctrl.Log.Error("InstrumentController.FindInstrument error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInstrumentSuccessMessage, result)
}
