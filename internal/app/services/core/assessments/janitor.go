package assessments

import (
	"context"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Janitor periodically evicts runs that have been idle for longer than
// idleTimeout. Evicted runs are gone for good; nothing is persisted.
type Janitor struct {
	log         *zap.Logger
	usecase     contracts.AssessmentUsecase
	idleTimeout time.Duration
	interval    time.Duration
	now         func() time.Time
	stop        chan struct{}
	stopOnce    sync.Once
}

func NewJanitor(log *zap.Logger, usecase contracts.AssessmentUsecase, idleTimeout, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		log:         log,
		usecase:     usecase,
		idleTimeout: idleTimeout,
		interval:    interval,
		now:         time.Now,
		stop:        make(chan struct{}),
	}
}

// Start begins the ticker loop. The returned stop function halts it and waits
// for the loop to exit.
func (j *Janitor) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(j.interval)
	stopped := make(chan struct{})

	j.log.Info("assessment janitor started",
		zap.Duration("idle_timeout", j.idleTimeout),
		zap.Duration("interval", j.interval),
	)

	go func() {
		defer close(stopped)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-j.stop:
				return
			case <-ticker.C:
				j.runOnce(ctx)
			}
		}
	}()

	return func() {
		j.stopOnce.Do(func() {
			close(j.stop)
		})
		<-stopped
	}
}

func (j *Janitor) runOnce(ctx context.Context) int {
	if j.idleTimeout <= 0 {
		return 0
	}
	cutoff := j.now().Add(-j.idleTimeout)
	evicted := j.usecase.EvictIdle(ctx, cutoff)
	j.log.Debug("assessment janitor tick",
		zap.Time("cutoff", cutoff),
		zap.Int(constvars.LoggingEvictedCountKey, evicted),
	)
	return evicted
}
