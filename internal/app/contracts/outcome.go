package contracts

import (
	"context"
	"outcomes-service/internal/app/models"
	"time"
)

// OutcomePublisher hands a completed record to external persistence. Publish
// returns immediately; delivery happens in the background at most once.
type OutcomePublisher interface {
	Publish(ctx context.Context, record models.OutcomeRecord)
}

// OutcomeSink writes one record to one external system.
type OutcomeSink interface {
	Name() string
	Write(ctx context.Context, record *models.OutcomeRecord) error
}

// EmissionGuard claims a record ID so the same record is never emitted twice.
type EmissionGuard interface {
	Claim(ctx context.Context, recordID string, ttl time.Duration) (bool, error)
}
