package store

import (
	"context"

	"github.com/MKhiriev/go-wiki-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TiddlerRepository is the local durable store for one wiki collection,
// keyed by tiddler title. Writers are serialized by the underlying SQLite
// connection; a reader never observes a half-written tiddler.
type TiddlerRepository interface {
	// PutTiddler persists entry, replacing any previous value for the title.
	PutTiddler(ctx context.Context, entry models.StoreEntry) error
	// GetTiddler loads a tiddler by title. Returns ErrTiddlerNotFound when
	// the title is absent and ErrCorruptPayload when the stored JSON does
	// not parse.
	GetTiddler(ctx context.Context, title string) (models.StoreEntry, error)
	// DeleteTiddler removes a title. Deleting an absent title is a no-op.
	DeleteTiddler(ctx context.Context, title string) error
	// GetAllStates returns the sync-relevant projection of every stored
	// tiddler, system tiddlers included.
	GetAllStates(ctx context.Context) ([]models.TiddlerState, error)
	// ListModifiedSince returns non-system titles whose modified timestamp
	// is strictly greater than cursor. An empty cursor matches everything.
	ListModifiedSince(ctx context.Context, cursor string) ([]string, error)
	// ListTitles returns all non-system titles currently in the store.
	ListTitles(ctx context.Context) ([]string, error)
	// SetSyncedVersion records the remote version of a title after a
	// successful push without touching the payload or provenance.
	SetSyncedVersion(ctx context.Context, title, version string) error
}

// QueueRepository is the durable offline push queue, keyed uniquely per
// title. Enqueueing an already-queued title replaces its snapshot, which
// coalesces rapid edits into a single pending upload; the retry counter
// of the existing entry survives the replacement.
type QueueRepository interface {
	Enqueue(ctx context.Context, entry models.QueueEntry) error
	ListQueue(ctx context.Context) ([]models.QueueEntry, error)
	RemoveFromQueue(ctx context.Context, title string) error
	// BumpRetry increments the retry counter of a queued title and records
	// the latest failure text.
	BumpRetry(ctx context.Context, title, lastError string) error
	QueueDepth(ctx context.Context) (int, error)
}

// MetadataRepository holds per-collection bookkeeping: the cached copy of
// the last-seen remote index and the snapshot-export baseline timestamp.
type MetadataRepository interface {
	SaveCachedIndex(ctx context.Context, idx models.RemoteIndex) error
	// CachedIndex returns the last cached remote index, or ErrNoCachedIndex.
	CachedIndex(ctx context.Context) (models.RemoteIndex, error)
	// RecordSnapshotExport stores ts as the moment the last full wiki
	// snapshot was exported. Used as the change-listing baseline when the
	// editor supplies no cursor.
	RecordSnapshotExport(ctx context.Context, ts string) error
	// LastSnapshotExport returns the recorded baseline, or "" if a snapshot
	// was never exported.
	LastSnapshotExport(ctx context.Context) (string, error)
}
