// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/store"
	"github.com/MKhiriev/go-wiki-sync/models"
)

type editorService struct {
	storages     *store.Storages
	syncService  SyncService
	job          SyncJob
	debouncer    *snapshotDebouncer
	clock        clockwork.Clock
	pushTimeout  time.Duration
	snapshotPath string
	logger       *logger.Logger
}

// NewEditorService builds the editor-facing service for one collection.
// snapshotPath is where debounced full-collection snapshots are written.
func NewEditorService(
	storages *store.Storages,
	syncService SyncService,
	job SyncJob,
	clock clockwork.Clock,
	pushTimeout, debounceWindow time.Duration,
	snapshotPath string,
	log *logger.Logger,
) EditorService {
	if pushTimeout <= 0 {
		pushTimeout = 20 * time.Second
	}

	svc := &editorService{
		storages:     storages,
		syncService:  syncService,
		job:          job,
		clock:        clock,
		pushTimeout:  pushTimeout,
		snapshotPath: snapshotPath,
		logger:       log,
	}
	svc.debouncer = newSnapshotDebouncer(clock, debounceWindow, svc.ExportSnapshot, log)

	return svc
}

// SaveTiddler implements EditorService. The local write always happens
// first and is never rolled back; whatever the push does afterwards only
// shows up in the returned status.
func (s *editorService) SaveTiddler(ctx context.Context, payload []byte) (models.PushStatus, error) {
	tiddler, err := models.ParseTiddler(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if tiddler.Modified == "" {
		tiddler.Modified = models.TWTimestamp(s.clock.Now())
	}

	entry := models.StoreEntry{
		Tiddler:    tiddler,
		Provenance: models.ProvenanceLocal,
	}
	// keep the last synced version so the push can detect conflicts
	if prev, loadErr := s.storages.Tiddlers.GetTiddler(ctx, tiddler.Title); loadErr == nil {
		entry.SyncedVersion = prev.SyncedVersion
	} else if !errors.Is(loadErr, store.ErrTiddlerNotFound) && !errors.Is(loadErr, store.ErrCorruptPayload) {
		return "", fmt.Errorf("load previous value of %q: %w", tiddler.Title, loadErr)
	}

	if err = s.storages.Tiddlers.PutTiddler(ctx, entry); err != nil {
		return "", fmt.Errorf("save %q: %w", tiddler.Title, err)
	}

	if tiddler.IsSystem() {
		// system records stay local; a changed one means the wiki shell
		// changed, so schedule a snapshot export
		s.debouncer.Trigger()
		return models.PushDisabled, nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.pushTimeout)
	defer cancel()

	return s.syncService.TryPush(pushCtx, entry)
}

// LoadTiddler implements EditorService.
func (s *editorService) LoadTiddler(ctx context.Context, title string) (models.Tiddler, error) {
	entry, err := s.storages.Tiddlers.GetTiddler(ctx, title)
	if err != nil {
		return models.Tiddler{}, err
	}
	return entry.Tiddler, nil
}

// DeleteTiddler implements EditorService.
func (s *editorService) DeleteTiddler(ctx context.Context, title string) error {
	if err := s.storages.Tiddlers.DeleteTiddler(ctx, title); err != nil {
		return fmt.Errorf("delete %q: %w", title, err)
	}

	if models.IsSystemTitle(title) {
		s.debouncer.Trigger()
		return nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.pushTimeout)
	defer cancel()

	if _, err := s.syncService.PushDelete(pushCtx, title); err != nil {
		return fmt.Errorf("propagate delete of %q: %w", title, err)
	}
	return nil
}

// ListChangesSince implements EditorService. The editor periodically asks
// "what changed since my last look" with the cursor it saw last; a fresh
// editor with no cursor falls back to the moment the snapshot it booted
// from was exported.
func (s *editorService) ListChangesSince(ctx context.Context, cursor string, liveTitles []string) (models.Changes, error) {
	since := models.NormalizeCursor(cursor)
	if since == "" {
		baseline, err := s.storages.Metadata.LastSnapshotExport(ctx)
		if err != nil {
			return models.Changes{}, fmt.Errorf("load snapshot baseline: %w", err)
		}
		since = baseline
	}

	modified, err := s.storages.Tiddlers.ListModifiedSince(ctx, since)
	if err != nil {
		return models.Changes{}, fmt.Errorf("list modified titles: %w", err)
	}

	stored, err := s.storages.Tiddlers.ListTitles(ctx)
	if err != nil {
		return models.Changes{}, fmt.Errorf("list stored titles: %w", err)
	}
	storedSet := make(map[string]struct{}, len(stored))
	for _, title := range stored {
		storedSet[title] = struct{}{}
	}

	deleted := make([]string, 0)
	for _, title := range liveTitles {
		if models.IsSystemTitle(title) {
			continue
		}
		if _, ok := storedSet[title]; !ok {
			deleted = append(deleted, title)
		}
	}

	return models.Changes{Modified: modified, Deleted: deleted}, nil
}

// ExportSnapshot implements EditorService. The snapshot is a JSON array of
// every stored tiddler, system records included, written atomically via a
// temp file. The recorded export moment becomes the change-listing
// baseline for editors that boot from this snapshot.
func (s *editorService) ExportSnapshot(ctx context.Context) error {
	states, err := s.storages.Tiddlers.GetAllStates(ctx)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	tiddlers := make([]models.Tiddler, 0, len(states))
	for _, st := range states {
		entry, loadErr := s.storages.Tiddlers.GetTiddler(ctx, st.Title)
		if loadErr != nil {
			if errors.Is(loadErr, store.ErrCorruptPayload) || errors.Is(loadErr, store.ErrTiddlerNotFound) {
				s.logger.Warn().Str("func", "editorService.ExportSnapshot").Str("title", st.Title).
					Msg("skipping unreadable record in snapshot")
				continue
			}
			return fmt.Errorf("export snapshot: load %q: %w", st.Title, loadErr)
		}
		tiddlers = append(tiddlers, entry.Tiddler)
	}

	body, err := json.Marshal(tiddlers)
	if err != nil {
		return fmt.Errorf("export snapshot: encode: %w", err)
	}

	exportedAt := models.TWTimestamp(s.clock.Now())
	tmp := s.snapshotPath + ".tmp"
	if err = os.WriteFile(tmp, body, 0o600); err != nil {
		return fmt.Errorf("export snapshot: write: %w", err)
	}
	if err = os.Rename(tmp, s.snapshotPath); err != nil {
		return fmt.Errorf("export snapshot: replace: %w", err)
	}

	if err = s.storages.Metadata.RecordSnapshotExport(ctx, exportedAt); err != nil {
		return fmt.Errorf("export snapshot: record baseline: %w", err)
	}

	s.logger.Info().Str("func", "editorService.ExportSnapshot").
		Int("tiddlers", len(tiddlers)).Str("path", s.snapshotPath).Msg("snapshot exported")
	return nil
}

// Status implements EditorService.
func (s *editorService) Status(ctx context.Context) models.SyncStatus {
	return s.job.Status(ctx)
}
