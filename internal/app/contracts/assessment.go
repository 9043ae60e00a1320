package contracts

import (
	"context"
	"outcomes-service/internal/pkg/dto/requests"
	"outcomes-service/internal/pkg/dto/responses"
	"time"
)

type AssessmentUsecase interface {
	CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error)
	FindAssessmentByRunID(ctx context.Context, runID string) (*responses.Assessment, error)
	UpdatePatient(ctx context.Context, runID string, request *requests.UpdatePatient) (*responses.Assessment, error)
	SelectJoint(ctx context.Context, runID string, request *requests.SelectJoint) (*responses.Assessment, error)
	SelectInstrument(ctx context.Context, runID string, request *requests.SelectInstrument) (*responses.Assessment, error)
	AnswerQuestion(ctx context.Context, runID string, request *requests.AnswerQuestion) (*responses.Assessment, error)
	PreviousQuestion(ctx context.Context, runID string) (*responses.Assessment, error)
	NextQuestion(ctx context.Context, runID string) (*responses.Assessment, error)
	ResetAssessment(ctx context.Context, runID string) (*responses.Assessment, error)
	DeleteAssessmentByRunID(ctx context.Context, runID string) error
	// EvictIdle drops every run untouched since before cutoff and reports how
	// many were removed.
	EvictIdle(ctx context.Context, cutoff time.Time) int
}
