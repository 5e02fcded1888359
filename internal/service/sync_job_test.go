package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/models"
)

// stubSyncService — простой стаб SyncService, не требует mockgen.
type stubSyncService struct {
	pulls  atomic.Int64
	drains atomic.Int64
}

func (s *stubSyncService) TryPush(context.Context, models.StoreEntry) (models.PushStatus, error) {
	return models.PushSynced, nil
}

func (s *stubSyncService) PushDelete(context.Context, string) (models.PushStatus, error) {
	return models.PushSynced, nil
}

func (s *stubSyncService) Pull(context.Context) error {
	s.pulls.Add(1)
	return nil
}

func (s *stubSyncService) DrainQueue(context.Context) error {
	s.drains.Add(1)
	return nil
}

func TestSyncJob_FirstCycleRunsImmediately(t *testing.T) {
	stub := &stubSyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(stub, newFakeQueue(), clock, time.Minute, true, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	select {
	case <-job.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("job never became ready")
	}

	assert.Equal(t, int64(1), stub.pulls.Load())
	assert.Equal(t, int64(1), stub.drains.Load())
}

func TestSyncJob_TickerDrivesCycles(t *testing.T) {
	stub := &stubSyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(stub, newFakeQueue(), clock, time.Minute, true, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()
	<-job.Ready()

	// дожидаемся, пока цикл повиснет на тикере
	clock.BlockUntil(1)
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool {
		return stub.pulls.Load() >= 2
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSyncJob_TriggerCoalesces(t *testing.T) {
	stub := &stubSyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(stub, newFakeQueue(), clock, time.Hour, true, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()
	<-job.Ready()
	clock.BlockUntil(1)

	before := stub.pulls.Load()
	job.TriggerSync()
	job.TriggerSync()
	job.TriggerSync()

	require.Eventually(t, func() bool {
		return stub.pulls.Load() > before
	}, 5*time.Second, 10*time.Millisecond)

	// burst of triggers must not produce a cycle per trigger
	assert.LessOrEqual(t, stub.pulls.Load(), before+2)
}

func TestSyncJob_StopHaltsLoop(t *testing.T) {
	stub := &stubSyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(stub, newFakeQueue(), clock, time.Minute, true, logger.Nop())

	job.Start(context.Background())
	<-job.Ready()
	job.Stop()

	after := stub.pulls.Load()
	job.TriggerSync()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, stub.pulls.Load())

	// Stop повторно — no-op
	job.Stop()
}

func TestSyncJob_DisabledDoesNothing(t *testing.T) {
	stub := &stubSyncService{}
	clock := clockwork.NewFakeClock()
	job := NewSyncJob(stub, newFakeQueue(), clock, time.Minute, false, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()
	<-job.Ready()

	assert.Zero(t, stub.pulls.Load())

	status := job.Status(context.Background())
	assert.False(t, status.Enabled)
}

func TestSyncJob_StatusReportsQueueDepth(t *testing.T) {
	stub := &stubSyncService{}
	queue := newFakeQueue()
	require.NoError(t, queue.Enqueue(context.Background(), models.QueueEntry{Title: "Pending", Op: models.QueueOpPut}))

	job := NewSyncJob(stub, queue, clockwork.NewFakeClock(), time.Minute, true, logger.Nop())

	status := job.Status(context.Background())
	assert.Equal(t, 1, status.QueueDepth)
	assert.True(t, status.Enabled)
	assert.False(t, status.IsSyncing)
}
