package service

import (
	"context"

	"github.com/MKhiriev/go-wiki-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EditorService is the API surface the wiki editor talks to. Every save
// and delete lands in the local store first; synchronization with the
// remote happens after, and its outcome never fails the local operation.
type EditorService interface {
	// SaveTiddler parses payload as a tiddler, persists it locally and
	// attempts a foreground push. The returned status reports what the
	// push did; a nil error means the local save succeeded.
	SaveTiddler(ctx context.Context, payload []byte) (models.PushStatus, error)
	// LoadTiddler returns a stored tiddler by title.
	LoadTiddler(ctx context.Context, title string) (models.Tiddler, error)
	// DeleteTiddler removes a title locally and propagates the deletion
	// to the remote store.
	DeleteTiddler(ctx context.Context, title string) error
	// ListChangesSince reports which non-system titles changed after the
	// cursor, and which of the editor's live titles no longer exist. An
	// empty cursor falls back to the last snapshot-export baseline.
	ListChangesSince(ctx context.Context, cursor string, liveTitles []string) (models.Changes, error)
	// ExportSnapshot writes a full snapshot of the collection and records
	// the export baseline.
	ExportSnapshot(ctx context.Context) error
	// Status returns the collection's current sync status.
	Status(ctx context.Context) models.SyncStatus
}

// SyncService moves individual tiddlers between the local store and the
// shared remote store.
type SyncService interface {
	// TryPush uploads a locally saved entry. Conflicts resolve by
	// last-writer-wins on the modified timestamp with a deterministic
	// digest tiebreak; an unreachable remote parks the entry in the
	// offline queue instead of failing.
	TryPush(ctx context.Context, entry models.StoreEntry) (models.PushStatus, error)
	// PushDelete propagates a local deletion to the remote store.
	PushDelete(ctx context.Context, title string) (models.PushStatus, error)
	// Pull reconciles the local store with the remote index: fetches
	// records that are new or newer remotely and removes records deleted
	// remotely.
	Pull(ctx context.Context) error
	// DrainQueue replays pending offline operations oldest first.
	DrainQueue(ctx context.Context) error
}

// SyncJob runs the background sync loop for one collection: a periodic
// pull plus a queue drain, with manual triggers coalesced into the same
// single-flight cycle.
type SyncJob interface {
	Start(ctx context.Context)
	Stop()
	// TriggerSync requests an immediate sync cycle. Non-blocking; calls
	// arriving while a cycle runs coalesce into one follow-up cycle.
	TriggerSync()
	// Ready is closed after the first sync cycle completes.
	Ready() <-chan struct{}
	Status(ctx context.Context) models.SyncStatus
}
