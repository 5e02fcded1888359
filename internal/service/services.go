package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/config"
	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/remote"
	"github.com/MKhiriev/go-wiki-sync/internal/store"
)

// Services bundles every service of one synced collection.
type Services struct {
	Editor EditorService
	Sync   SyncService
	Job    SyncJob
	// Objects is the collection's remote object store, exposed for the
	// version-history debug surface.
	Objects remote.ObjectStore
}

// Versions lists the remote version history of one record, newest first.
func (s *Services) Versions(ctx context.Context, title string) ([]string, error) {
	return s.Objects.Versions(ctx, remote.RecordKey(title))
}

// NewServices wires the full service stack of a collection on top of its
// storages and object store. A missing writer identity gets a random one;
// onRemoteChange, when non-nil, is called for every title the pull
// pipeline touches locally.
func NewServices(
	storages *store.Storages,
	objects remote.ObjectStore,
	cfg config.CollectionConfig,
	clock clockwork.Clock,
	onRemoteChange func(title string),
	log *logger.Logger,
) *Services {
	writerID := cfg.WriterID
	if writerID == "" {
		writerID = uuid.NewString()
	}

	index := remote.NewIndexClient(objects, clock, cfg.Sync.BackoffMin, cfg.Sync.BackoffMax, writerID, log)

	syncSvc := NewSyncService(
		storages, objects, index, clock,
		cfg.Sync.MaxRetries, cfg.Sync.RetryCeiling,
		cfg.Remote.Enabled, onRemoteChange, log,
	)

	job := NewSyncJob(syncSvc, storages.Queue, clock, cfg.Sync.PullInterval, cfg.Remote.Enabled, log)

	editor := NewEditorService(
		storages, syncSvc, job, clock,
		cfg.Sync.PushTimeout, cfg.Sync.DebounceWindow,
		cfg.Storage.DB.Path+".snapshot.json",
		log,
	)

	return &Services{
		Editor:  editor,
		Sync:    syncSvc,
		Job:     job,
		Objects: objects,
	}
}
