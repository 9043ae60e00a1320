package assessments

import (
	"context"
	"outcomes-service/internal/app/services/core/instruments"
	"outcomes-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestJanitorRunOnceEvictsIdleRuns(t *testing.T) {
	uc := newAssessmentUsecase(instruments.DefaultCatalog(), nil, zap.NewNop())
	current := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return current }

	_, err := uc.CreateAssessment(context.Background(), &requests.CreateAssessment{})
	require.NoError(t, err)

	janitor := NewJanitor(zap.NewNop(), uc, time.Hour, time.Minute)
	janitor.now = func() time.Time { return current.Add(30 * time.Minute) }
	assert.Zero(t, janitor.runOnce(context.Background()))

	janitor.now = func() time.Time { return current.Add(61 * time.Minute) }
	assert.Equal(t, 1, janitor.runOnce(context.Background()))
}

func TestJanitorDisabledWithoutIdleTimeout(t *testing.T) {
	uc := newAssessmentUsecase(instruments.DefaultCatalog(), nil, zap.NewNop())
	_, err := uc.CreateAssessment(context.Background(), &requests.CreateAssessment{})
	require.NoError(t, err)

	janitor := NewJanitor(zap.NewNop(), uc, 0, time.Minute)
	janitor.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	assert.Zero(t, janitor.runOnce(context.Background()))
}

func TestJanitorStartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	uc := newAssessmentUsecase(instruments.DefaultCatalog(), nil, zap.NewNop())
	janitor := NewJanitor(zap.NewNop(), uc, time.Millisecond, 5*time.Millisecond)

	_, err := uc.CreateAssessment(context.Background(), &requests.CreateAssessment{})
	require.NoError(t, err)

	stop := janitor.Start(context.Background())
	require.Eventually(t, func() bool {
		uc.mu.RLock()
		defer uc.mu.RUnlock()
		return len(uc.runs) == 0
	}, time.Second, 5*time.Millisecond)
	stop()
	stop()
}

func TestJanitorStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	uc := newAssessmentUsecase(instruments.DefaultCatalog(), nil, zap.NewNop())
	janitor := NewJanitor(zap.NewNop(), uc, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	stop := janitor.Start(ctx)
	cancel()
	stop()
}
