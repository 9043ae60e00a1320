package outcomes

import (
	"context"
	"errors"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/pkg/constvars"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type recordingSink struct {
	name  string
	err   error
	block chan struct{}

	mu        sync.Mutex
	records   []models.OutcomeRecord
	requestID []string
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Write(ctx context.Context, record *models.OutcomeRecord) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	s.requestID = append(s.requestID, requestID)
	return s.err
}

func (s *recordingSink) written() []models.OutcomeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.OutcomeRecord(nil), s.records...)
}

type stubGuard struct {
	mu      sync.Mutex
	claimed map[string]bool
	err     error
}

func (g *stubGuard) Claim(ctx context.Context, recordID string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return false, g.err
	}
	if g.claimed[recordID] {
		return false, nil
	}
	g.claimed[recordID] = true
	return true, nil
}

func closeDispatcher(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
}

func TestDispatcherWritesEverySink(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	first := &recordingSink{name: "first"}
	second := &recordingSink{name: "second"}
	d := NewDispatcher(DispatcherConfig{Timeout: time.Second}, nil, zap.NewNop(), first, second)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	d.Publish(ctx, models.OutcomeRecord{ID: "rec-1", Instrument: "NDI"})
	closeDispatcher(t, d)

	require.Len(t, first.written(), 1)
	require.Len(t, second.written(), 1)
	assert.Equal(t, "NDI", first.written()[0].Instrument)
	assert.Equal(t, []string{"req-1"}, first.requestID)
}

func TestDispatcherPublishDoesNotBlock(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &recordingSink{name: "slow", block: make(chan struct{})}
	d := NewDispatcher(DispatcherConfig{Timeout: time.Second}, nil, zap.NewNop(), sink)

	returned := make(chan struct{})
	go func() {
		d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow sink")
	}

	close(sink.block)
	closeDispatcher(t, d)
	assert.Len(t, sink.written(), 1)
}

func TestDispatcherSinkFailureDoesNotStopOthers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	failing := &recordingSink{name: "failing", err: errors.New("boom")}
	healthy := &recordingSink{name: "healthy"}
	d := NewDispatcher(DispatcherConfig{Timeout: time.Second}, nil, zap.NewNop(), failing, healthy)

	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})
	closeDispatcher(t, d)

	assert.Len(t, failing.written(), 1, "a failed write is never retried")
	assert.Len(t, healthy.written(), 1)
}

func TestDispatcherGuardSuppressesDuplicates(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &recordingSink{name: "sink"}
	guard := &stubGuard{claimed: map[string]bool{}}
	d := NewDispatcher(DispatcherConfig{Timeout: time.Second, GuardTTL: time.Hour}, guard, zap.NewNop(), sink)

	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})
	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})
	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-2"})
	closeDispatcher(t, d)

	assert.Len(t, sink.written(), 2)
}

func TestDispatcherGuardErrorDropsRecord(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &recordingSink{name: "sink"}
	guard := &stubGuard{err: errors.New("redis down")}
	d := NewDispatcher(DispatcherConfig{Timeout: time.Second}, guard, zap.NewNop(), sink)

	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})
	closeDispatcher(t, d)

	assert.Empty(t, sink.written())
}

func TestDispatcherThrottledRecordsPastDeadlineAreDropped(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &recordingSink{name: "sink"}
	d := NewDispatcher(DispatcherConfig{
		Timeout:   50 * time.Millisecond,
		RateLimit: rate.Every(time.Hour),
		Burst:     1,
	}, nil, zap.NewNop(), sink)

	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})
	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-2"})
	closeDispatcher(t, d)

	assert.Len(t, sink.written(), 1)
}

func TestDispatcherDropsAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &recordingSink{name: "sink"}
	d := NewDispatcher(DispatcherConfig{}, nil, zap.NewNop(), sink)
	closeDispatcher(t, d)

	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})
	assert.Empty(t, sink.written())
}

func TestDispatcherCloseHonoursContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sink := &recordingSink{name: "stuck", block: make(chan struct{})}
	d := NewDispatcher(DispatcherConfig{Timeout: time.Second}, nil, zap.NewNop(), sink)
	d.Publish(context.Background(), models.OutcomeRecord{ID: "rec-1"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)

	close(sink.block)
	closeDispatcher(t, d)
}
