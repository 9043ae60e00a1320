package instruments

import (
	"context"
	"errors"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/dto/responses"
	"outcomes-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type instrumentUsecase struct {
	Catalog *Catalog
	Log     *zap.Logger
}

var (
	instrumentUsecaseInstance contracts.InstrumentUsecase
	onceInstrumentUsecase     sync.Once
)

func NewInstrumentUsecase(catalog *Catalog, logger *zap.Logger) contracts.InstrumentUsecase {
	onceInstrumentUsecase.Do(func() {
		instrumentUsecaseInstance = newInstrumentUsecase(catalog, logger)
	})
	return instrumentUsecaseInstance
}

func newInstrumentUsecase(catalog *Catalog, logger *zap.Logger) *instrumentUsecase {
	return &instrumentUsecase{
		Catalog: catalog,
		Log:     logger,
	}
}

func (uc *instrumentUsecase) ListJoints(ctx context.Context) ([]responses.Joint, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instrumentUsecase.ListJoints called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	joints := uc.Catalog.ListJoints()
	response := make([]responses.Joint, 0, len(joints))
	for _, joint := range joints {
		response = append(response, joint.ConvertIntoResponse())
	}

	uc.Log.Info("instrumentUsecase.ListJoints succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingJointCountKey, len(response)),
	)
	return response, nil
}

func (uc *instrumentUsecase) ListInstruments(ctx context.Context, jointKey string) ([]responses.InstrumentSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instrumentUsecase.ListInstruments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJointKey, jointKey),
	)

	list, err := uc.Catalog.GetInstruments(jointKey)
	if err != nil {
		uc.Log.Error("instrumentUsecase.ListInstruments error fetching joint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingJointKey, jointKey),
			zap.Error(err),
		)
		return nil, exceptions.ErrJointNotFound(err, jointKey)
	}

	response := make([]responses.InstrumentSummary, 0, len(list))
	for _, instrument := range list {
		response = append(response, instrument.ConvertIntoSummary())
	}

	uc.Log.Info("instrumentUsecase.ListInstruments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingInstrumentCountKey, len(response)),
	)
	return response, nil
}

func (uc *instrumentUsecase) FindInstrument(ctx context.Context, jointKey, instrumentID string) (*responses.InstrumentDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("instrumentUsecase.FindInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJointKey, jointKey),
		zap.String(constvars.LoggingInstrumentIDKey, instrumentID),
	)

	instrument, err := FindInCatalog(uc.Catalog, jointKey, instrumentID)
	if err != nil {
		uc.Log.Error("instrumentUsecase.FindInstrument error fetching instrument",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingJointKey, jointKey),
			zap.String(constvars.LoggingInstrumentIDKey, instrumentID),
			zap.Error(err),
		)
		return nil, err
	}

	response := instrument.ConvertIntoDetail(jointKey)

	uc.Log.Info("instrumentUsecase.FindInstrument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentIDKey, instrumentID),
	)
	return &response, nil
}

// FindInCatalog looks an instrument up and maps a miss to the joint or
// instrument not found error, whichever applies.
func FindInCatalog(catalog *Catalog, jointKey, instrumentID string) (*Instrument, error) {
	if _, err := catalog.GetJoint(jointKey); err != nil {
		return nil, exceptions.ErrJointNotFound(err, jointKey)
	}
	instrument, err := catalog.GetInstrument(jointKey, instrumentID)
	if errors.Is(err, ErrNotFound) {
		return nil, exceptions.ErrInstrumentNotFound(err, jointKey, instrumentID)
	} else if err != nil {
		return nil, err
	}
	return instrument, nil
}
