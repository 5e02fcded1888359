package models

import "time"

// Provenance records which side wrote a tiddler's current local value.
// It exists solely to prevent sync loops: a value written by the pull
// pipeline must never trigger a push of itself.
type Provenance string

const (
	// ProvenanceLocal marks a value last written by the editor surface.
	ProvenanceLocal Provenance = "local"
	// ProvenanceRemote marks a value last written by the pull pipeline.
	ProvenanceRemote Provenance = "remote"
	// ProvenanceBootstrap marks a value imported from a wiki snapshot
	// before the first sync ever ran for this collection.
	ProvenanceBootstrap Provenance = "bootstrap"
)

// StoreEntry is a tiddler as held by the local store: the payload plus the
// provenance tag and the remote version recorded at the last successful
// sync of this title. SyncedVersion is empty for titles that have never
// been pushed or pulled.
type StoreEntry struct {
	Tiddler       Tiddler
	Provenance    Provenance
	SyncedVersion string
}

// TiddlerState is the sync-relevant projection of a store entry, used by
// the pull pipeline to diff local state against the remote index without
// loading payloads.
type TiddlerState struct {
	Title         string
	Modified      string
	Provenance    Provenance
	SyncedVersion string
}

// IndexEntry describes one title in the remote index.
type IndexEntry struct {
	Modified      string `json:"modified"`
	RemoteKey     string `json:"remote_key"`
	RemoteVersion string `json:"remote_version"`
}

// RemoteIndex is the authoritative per-collection enumeration of which
// tiddlers exist remotely. VersionTag is the index-level concurrency token
// (the object's entity tag); it travels out of band of the JSON body.
type RemoteIndex struct {
	Entries  map[string]IndexEntry `json:"entries"`
	WriterID string                `json:"writer_id,omitempty"`

	VersionTag string `json:"-"`
}

// QueueOp distinguishes queued upload kinds.
type QueueOp string

const (
	QueueOpPut    QueueOp = "put"
	QueueOpDelete QueueOp = "delete"
)

// QueueEntry is one pending offline operation, keyed uniquely per title.
// Re-enqueuing a title replaces the snapshot, coalescing rapid edits.
type QueueEntry struct {
	Title      string
	Op         QueueOp
	Snapshot   []byte
	EnqueuedAt time.Time
	RetryCount int
	LastError  string
}

// Changes is the result of a change listing: titles modified in the store
// since the cursor, and titles the editor still holds that were removed
// from the store.
type Changes struct {
	Modified []string `json:"modifications"`
	Deleted  []string `json:"deletions"`
}

// PushStatus reports the outcome of a foreground push attempt.
type PushStatus string

const (
	// PushSynced means the record and the index entry are on the remote.
	PushSynced PushStatus = "synced"
	// PushQueued means the remote was unreachable and the record went to
	// the offline queue. The local save itself already succeeded.
	PushQueued PushStatus = "queued"
	// PushSkipped means the remote copy won the conflict; the local store
	// was refreshed from the remote instead of uploading.
	PushSkipped PushStatus = "skipped"
	// PushNoop means remote and local content are identical.
	PushNoop PushStatus = "noop"
	// PushDisabled means remote sync is switched off for this collection.
	PushDisabled PushStatus = "disabled"
)

// SyncStatus is the coordinator's observable state for one collection.
type SyncStatus struct {
	LastPullAt time.Time `json:"last_pull_at"`
	QueueDepth int       `json:"queue_depth"`
	IsSyncing  bool      `json:"is_syncing"`
	Enabled    bool      `json:"enabled"`
}
