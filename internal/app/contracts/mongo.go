package contracts

import (
	"context"
	"outcomes-service/internal/app/models"
)

type OutcomeRecordRepository interface {
	Insert(ctx context.Context, record *models.OutcomeRecord) error
}
