package outcomes

import (
	"context"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type DispatcherConfig struct {
	// Timeout bounds one record across every sink, including throttling.
	Timeout   time.Duration
	GuardTTL  time.Duration
	RateLimit rate.Limit
	Burst     int
}

// Dispatcher delivers completed records to every configured sink in the
// background. Each record is attempted once; failures are logged and dropped.
type Dispatcher struct {
	log      *zap.Logger
	cfg      DispatcherConfig
	sinks    []contracts.OutcomeSink
	guard    contracts.EmissionGuard
	limiter  *rate.Limiter
	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

// NewDispatcher builds a dispatcher for sinks. guard may be nil, in which case
// records are written without a cross-process dedupe claim.
func NewDispatcher(cfg DispatcherConfig, guard contracts.EmissionGuard, log *zap.Logger, sinks ...contracts.OutcomeSink) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = rate.Inf
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &Dispatcher{
		log:     log,
		cfg:     cfg,
		sinks:   sinks,
		guard:   guard,
		limiter: rate.NewLimiter(cfg.RateLimit, cfg.Burst),
	}
}

// Publish returns immediately. The caller's context only contributes its
// request ID; delivery runs under its own deadline.
func (d *Dispatcher) Publish(ctx context.Context, record models.OutcomeRecord) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("Dispatcher.Publish called after close, record dropped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, record.ID),
		)
		return
	}
	if len(d.sinks) == 0 {
		return
	}

	d.inflight.Add(1)
	go d.dispatch(requestID, record)
}

// Close stops accepting records and waits for in-flight deliveries until ctx
// is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) dispatch(requestID string, record models.OutcomeRecord) {
	defer d.inflight.Done()

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	d.log.Info("Dispatcher.dispatch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, record.ID),
		zap.Int(constvars.LoggingSinkCountKey, len(d.sinks)),
	)

	if err := d.limiter.Wait(ctx); err != nil {
		d.log.Error("Dispatcher.dispatch throttled past deadline, record dropped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, record.ID),
			zap.Error(err),
		)
		return
	}

	if d.guard != nil {
		claimed, err := d.guard.Claim(ctx, record.ID, d.cfg.GuardTTL)
		if err != nil {
			d.log.Error("Dispatcher.dispatch error calling guard.Claim, record dropped",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecordIDKey, record.ID),
				zap.Error(err),
			)
			return
		}
		if !claimed {
			d.log.Warn("Dispatcher.dispatch record already emitted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecordIDKey, record.ID),
			)
			return
		}
	}

	for _, sink := range d.sinks {
		start := time.Now()
		err := sink.Write(ctx, &record)
		if err != nil {
			d.log.Error("Dispatcher.dispatch sink write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRecordIDKey, record.ID),
				zap.String(constvars.LoggingSinkKey, sink.Name()),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.Error(err),
			)
			continue
		}
		d.log.Info("Dispatcher.dispatch sink write succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, record.ID),
			zap.String(constvars.LoggingSinkKey, sink.Name()),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
	}
}
