package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
)

// snapshotDebouncer coalesces bursts of system-record changes into a
// single snapshot export. Each Trigger call restarts the window; the
// export function runs once the window elapses with no further triggers.
type snapshotDebouncer struct {
	clock  clockwork.Clock
	window time.Duration
	export func(ctx context.Context) error
	logger *logger.Logger

	mu    sync.Mutex
	timer clockwork.Timer
}

func newSnapshotDebouncer(clock clockwork.Clock, window time.Duration, export func(ctx context.Context) error, log *logger.Logger) *snapshotDebouncer {
	if window <= 0 {
		window = 5 * time.Second
	}

	return &snapshotDebouncer{
		clock:  clock,
		window: window,
		export: export,
		logger: log,
	}
}

// Trigger arms or rearms the single debounce slot.
func (d *snapshotDebouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.window, d.fire)
}

// Cancel drops any pending export.
func (d *snapshotDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *snapshotDebouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	d.mu.Unlock()

	if err := d.export(context.Background()); err != nil {
		d.logger.Err(err).Str("func", "snapshotDebouncer.fire").Msg("snapshot export failed")
	}
}
