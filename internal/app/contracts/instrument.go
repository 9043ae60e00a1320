package contracts

import (
	"context"
	"outcomes-service/internal/pkg/dto/responses"
)

type InstrumentUsecase interface {
	ListJoints(ctx context.Context) ([]responses.Joint, error)
	ListInstruments(ctx context.Context, jointKey string) ([]responses.InstrumentSummary, error)
	FindInstrument(ctx context.Context, jointKey, instrumentID string) (*responses.InstrumentDetail, error)
}
