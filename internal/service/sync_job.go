package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/store"
	"github.com/MKhiriev/go-wiki-sync/models"
)

type syncJob struct {
	syncService SyncService
	queue       store.QueueRepository
	clock       clockwork.Clock
	interval    time.Duration
	enabled     bool
	logger      *logger.Logger

	trigger chan struct{}
	ready   chan struct{}

	mu         sync.Mutex
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	lastPullAt time.Time
	isSyncing  bool
	readyOnce  sync.Once
}

// NewSyncJob creates a syncJob that runs one sync cycle (pull, then queue
// drain) every interval. The job is idle until Start is called. If interval
// is zero or negative it defaults to 30 seconds.
func NewSyncJob(syncService SyncService, queue store.QueueRepository, clock clockwork.Clock, interval time.Duration, enabled bool, log *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &syncJob{
		syncService: syncService,
		queue:       queue,
		clock:       clock,
		interval:    interval,
		enabled:     enabled,
		logger:      log,
		trigger:     make(chan struct{}, 1),
		ready:       make(chan struct{}),
	}
}

// Start implements SyncJob. It stops any previously running loop, runs an
// immediate first cycle, then keeps cycling on the ticker. Triggers that
// arrive while a cycle is in flight collapse into a single follow-up
// cycle. The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.runCycle(jobCtx)
		j.readyOnce.Do(func() { close(j.ready) })

		t := j.clock.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				j.runCycle(jobCtx)
			case <-j.trigger:
				j.runCycle(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// TriggerSync implements SyncJob.
func (j *syncJob) TriggerSync() {
	select {
	case j.trigger <- struct{}{}:
	default:
		// a cycle request is already pending
	}
}

// Ready implements SyncJob.
func (j *syncJob) Ready() <-chan struct{} {
	return j.ready
}

// Status implements SyncJob.
func (j *syncJob) Status(ctx context.Context) models.SyncStatus {
	j.mu.Lock()
	lastPullAt, isSyncing := j.lastPullAt, j.isSyncing
	j.mu.Unlock()

	depth, err := j.queue.QueueDepth(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "syncJob.Status").Msg("error reading queue depth")
	}

	return models.SyncStatus{
		LastPullAt: lastPullAt,
		QueueDepth: depth,
		IsSyncing:  isSyncing,
		Enabled:    j.enabled,
	}
}

func (j *syncJob) runCycle(ctx context.Context) {
	if !j.enabled {
		return
	}

	j.mu.Lock()
	j.isSyncing = true
	j.mu.Unlock()
	defer func() {
		j.mu.Lock()
		j.isSyncing = false
		j.mu.Unlock()
	}()

	if err := j.syncService.Pull(ctx); err != nil {
		j.logger.Err(err).Str("func", "syncJob.runCycle").Msg("pull failed")
	} else {
		j.mu.Lock()
		j.lastPullAt = j.clock.Now()
		j.mu.Unlock()
	}

	if err := j.syncService.DrainQueue(ctx); err != nil {
		j.logger.Err(err).Str("func", "syncJob.runCycle").Msg("queue drain failed")
	}
}
