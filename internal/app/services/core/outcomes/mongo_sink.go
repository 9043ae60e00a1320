package outcomes

import (
	"context"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/pkg/constvars"
)

// mongoSink is write only. Downstream reporting owns the collection.
type mongoSink struct {
	repo contracts.OutcomeRecordRepository
}

func NewMongoSink(repo contracts.OutcomeRecordRepository) contracts.OutcomeSink {
	return &mongoSink{repo: repo}
}

func (s *mongoSink) Name() string {
	return constvars.SinkMongo
}

func (s *mongoSink) Write(ctx context.Context, record *models.OutcomeRecord) error {
	return s.repo.Insert(ctx, record)
}
