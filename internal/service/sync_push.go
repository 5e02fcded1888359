// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/remote"
	"github.com/MKhiriev/go-wiki-sync/internal/store"
	"github.com/MKhiriev/go-wiki-sync/models"
)

type syncService struct {
	storages    *store.Storages
	objects     remote.ObjectStore
	index       *remote.IndexClient
	clock       clockwork.Clock
	maxRetries  int
	retryCeil   int
	enabled     bool
	onRemoteSet func(title string)
	logger      *logger.Logger
}

// NewSyncService wires the push and pull pipelines for one collection.
// onRemoteSet, when non-nil, is invoked for every title the pull pipeline
// writes or removes locally; the editor surface uses it to refresh views.
func NewSyncService(
	storages *store.Storages,
	objects remote.ObjectStore,
	index *remote.IndexClient,
	clock clockwork.Clock,
	maxRetries, retryCeiling int,
	enabled bool,
	onRemoteSet func(title string),
	log *logger.Logger,
) SyncService {
	return &syncService{
		storages:    storages,
		objects:     objects,
		index:       index,
		clock:       clock,
		maxRetries:  maxRetries,
		retryCeil:   retryCeiling,
		enabled:     enabled,
		onRemoteSet: onRemoteSet,
		logger:      log,
	}
}

// TryPush implements SyncService. The sequence is: conflict check against
// the remote index, conditional record upload, then an atomic index
// update. The record write is gated on the version the index named, so a
// concurrent writer that lands between the index download and the upload
// surfaces as a version mismatch instead of being overwritten; the check
// then re-runs against a fresh index. Any retryable failure along the way
// parks the entry in the offline queue; the caller's local save is never
// rolled back.
func (s *syncService) TryPush(ctx context.Context, entry models.StoreEntry) (models.PushStatus, error) {
	if !s.enabled {
		return models.PushDisabled, nil
	}

	title := entry.Tiddler.Title

	body, err := json.Marshal(entry.Tiddler)
	if err != nil {
		return "", fmt.Errorf("encode tiddler %q: %w", title, err)
	}

	var recordVersion string
	for attempt := 0; ; attempt++ {
		if attempt > s.maxRetries {
			return s.parkPut(ctx, entry,
				fmt.Errorf("%w: record write retries exhausted for %q", remote.ErrConcurrentModification, title))
		}

		idx, err := s.index.Download(ctx)
		if err != nil {
			return s.parkPut(ctx, entry, err)
		}

		cur, known := idx.Entries[title]
		if known && cur.RemoteVersion != entry.SyncedVersion {
			outcome, err := s.resolveConflict(ctx, entry, cur)
			if err != nil {
				return s.parkPut(ctx, entry, err)
			}
			if outcome != models.PushSynced {
				// remote copy won, or content turned out identical
				return outcome, nil
			}
		}

		if known {
			recordVersion, err = s.objects.Replace(ctx, cur.RemoteKey, body, cur.RemoteVersion)
		} else {
			recordVersion, err = s.objects.Create(ctx, remote.RecordKey(title), body)
		}
		if err == nil {
			break
		}
		if errors.Is(err, remote.ErrVersionMismatch) || errors.Is(err, remote.ErrObjectExists) {
			// a concurrent writer touched the record after our download
			continue
		}
		return s.parkPut(ctx, entry, err)
	}

	modified := entry.Tiddler.Modified
	lost := false
	newIdx, err := s.index.UpdateAtomic(ctx, func(entries map[string]models.IndexEntry) {
		// re-check under the fresh index: a concurrent writer may have
		// landed a newer value while we were uploading
		if cur, ok := entries[title]; ok && cur.RemoteVersion != entry.SyncedVersion && models.NewerThan(cur.Modified, modified) {
			lost = true
			return
		}
		lost = false
		entries[title] = models.IndexEntry{
			Modified:      modified,
			RemoteKey:     remote.RecordKey(title),
			RemoteVersion: recordVersion,
		}
	}, s.maxRetries)
	if err != nil {
		return s.parkPut(ctx, entry, err)
	}
	if lost {
		s.logger.Info().Str("func", "syncService.TryPush").Str("title", title).
			Msg("concurrent writer holds a newer value, local copy will refresh on next pull")
		return models.PushSkipped, nil
	}

	if err = s.storages.Tiddlers.SetSyncedVersion(ctx, title, recordVersion); err != nil &&
		!errors.Is(err, store.ErrTiddlerNotFound) {
		return "", fmt.Errorf("record synced version for %q: %w", title, err)
	}
	if err = s.storages.Queue.RemoveFromQueue(ctx, title); err != nil {
		s.logger.Err(err).Str("func", "syncService.TryPush").Str("title", title).
			Msg("error removing pushed title from queue")
	}
	if err = s.storages.Metadata.SaveCachedIndex(ctx, newIdx); err != nil {
		s.logger.Err(err).Str("func", "syncService.TryPush").Msg("error caching index")
	}

	return models.PushSynced, nil
}

// resolveConflict decides a push conflict by last-writer-wins on the
// modified timestamp. Equal timestamps fall back to comparing content
// digests lexicographically, so both sides decide the same winner without
// talking to each other.
func (s *syncService) resolveConflict(ctx context.Context, entry models.StoreEntry, cur models.IndexEntry) (models.PushStatus, error) {
	title := entry.Tiddler.Title

	switch {
	case models.NewerThan(entry.Tiddler.Modified, cur.Modified):
		return models.PushSynced, nil // local wins, proceed with the upload
	case models.NewerThan(cur.Modified, entry.Tiddler.Modified):
		err := s.adoptRemote(ctx, title, cur)
		if errors.Is(err, ErrCorruptRemoteRecord) {
			// an unreadable remote record never beats a good local copy;
			// the upload replaces it
			s.logger.Warn().Str("func", "syncService.resolveConflict").Str("title", title).
				Str("key", cur.RemoteKey).Msg("remote record is corrupt, keeping local copy")
			return models.PushSynced, nil
		}
		if err != nil {
			return "", err
		}
		return models.PushSkipped, nil
	}

	// equal timestamps: fetch the remote record and tiebreak on digest
	remoteTiddler, err := s.fetchRecord(ctx, cur)
	if errors.Is(err, ErrCorruptRemoteRecord) {
		s.logger.Warn().Str("func", "syncService.resolveConflict").Str("title", title).
			Str("key", cur.RemoteKey).Msg("remote record is corrupt, keeping local copy")
		return models.PushSynced, nil
	}
	if err != nil {
		return "", err
	}

	localDigest, remoteDigest := entry.Tiddler.Digest(), remoteTiddler.Digest()
	if localDigest == remoteDigest {
		if err = s.storages.Tiddlers.SetSyncedVersion(ctx, title, cur.RemoteVersion); err != nil {
			return "", fmt.Errorf("adopt remote version for %q: %w", title, err)
		}
		return models.PushNoop, nil
	}
	if remoteDigest > localDigest {
		if err = s.saveRemote(ctx, remoteTiddler, cur.RemoteVersion); err != nil {
			return "", err
		}
		return models.PushSkipped, nil
	}

	return models.PushSynced, nil
}

// PushDelete implements SyncService.
func (s *syncService) PushDelete(ctx context.Context, title string) (models.PushStatus, error) {
	if !s.enabled {
		return models.PushDisabled, nil
	}

	if err := s.objects.Delete(ctx, remote.RecordKey(title)); err != nil {
		return s.parkDelete(ctx, title, err)
	}

	newIdx, err := s.index.UpdateAtomic(ctx, func(entries map[string]models.IndexEntry) {
		delete(entries, title)
	}, s.maxRetries)
	if err != nil {
		return s.parkDelete(ctx, title, err)
	}

	if err = s.storages.Queue.RemoveFromQueue(ctx, title); err != nil {
		s.logger.Err(err).Str("func", "syncService.PushDelete").Str("title", title).
			Msg("error removing deleted title from queue")
	}
	if err = s.storages.Metadata.SaveCachedIndex(ctx, newIdx); err != nil {
		s.logger.Err(err).Str("func", "syncService.PushDelete").Msg("error caching index")
	}

	return models.PushSynced, nil
}

// parkPut enqueues a failed put when the failure is retryable, passing the
// original error through otherwise.
func (s *syncService) parkPut(ctx context.Context, entry models.StoreEntry, cause error) (models.PushStatus, error) {
	if !retryable(cause) {
		return "", cause
	}

	snapshot, err := json.Marshal(entry.Tiddler)
	if err != nil {
		return "", fmt.Errorf("encode queue snapshot for %q: %w", entry.Tiddler.Title, err)
	}

	if err = s.storages.Queue.Enqueue(ctx, models.QueueEntry{
		Title:      entry.Tiddler.Title,
		Op:         models.QueueOpPut,
		Snapshot:   snapshot,
		EnqueuedAt: s.clock.Now(),
		LastError:  cause.Error(),
	}); err != nil {
		return "", fmt.Errorf("enqueue %q after push failure: %w", entry.Tiddler.Title, err)
	}

	s.logger.Info().Str("func", "syncService.parkPut").Str("title", entry.Tiddler.Title).
		Str("cause", cause.Error()).Msg("push parked in offline queue")
	return models.PushQueued, nil
}

func (s *syncService) parkDelete(ctx context.Context, title string, cause error) (models.PushStatus, error) {
	if !retryable(cause) {
		return "", cause
	}

	if err := s.storages.Queue.Enqueue(ctx, models.QueueEntry{
		Title:      title,
		Op:         models.QueueOpDelete,
		EnqueuedAt: s.clock.Now(),
		LastError:  cause.Error(),
	}); err != nil {
		return "", fmt.Errorf("enqueue delete of %q after push failure: %w", title, err)
	}

	s.logger.Info().Str("func", "syncService.parkDelete").Str("title", title).
		Str("cause", cause.Error()).Msg("delete parked in offline queue")
	return models.PushQueued, nil
}

// retryable reports whether a push failure should land in the offline
// queue rather than propagate. Context cancellation also queues: the
// editor may be shutting down mid-push and the edit must survive.
func retryable(err error) bool {
	return errors.Is(err, remote.ErrRemoteUnavailable) ||
		errors.Is(err, remote.ErrConcurrentModification) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// fetchRecord downloads and parses the record object behind an index entry.
func (s *syncService) fetchRecord(ctx context.Context, cur models.IndexEntry) (models.Tiddler, error) {
	body, _, err := s.objects.Get(ctx, cur.RemoteKey)
	if err != nil {
		return models.Tiddler{}, fmt.Errorf("fetch record %s: %w", cur.RemoteKey, err)
	}

	tiddler, err := models.ParseTiddler(body)
	if err != nil {
		return models.Tiddler{}, fmt.Errorf("%w: %s: %w", ErrCorruptRemoteRecord, cur.RemoteKey, err)
	}

	return tiddler, nil
}

// adoptRemote fetches the record behind cur and overwrites the local copy.
func (s *syncService) adoptRemote(ctx context.Context, title string, cur models.IndexEntry) error {
	tiddler, err := s.fetchRecord(ctx, cur)
	if err != nil {
		return err
	}
	return s.saveRemote(ctx, tiddler, cur.RemoteVersion)
}

// saveRemote writes a remotely sourced tiddler into the local store with
// remote provenance, so the write itself never triggers another push.
func (s *syncService) saveRemote(ctx context.Context, tiddler models.Tiddler, version string) error {
	err := s.storages.Tiddlers.PutTiddler(ctx, models.StoreEntry{
		Tiddler:       tiddler,
		Provenance:    models.ProvenanceRemote,
		SyncedVersion: version,
	})
	if err != nil {
		return fmt.Errorf("save remote copy of %q: %w", tiddler.Title, err)
	}

	if s.onRemoteSet != nil {
		s.onRemoteSet(tiddler.Title)
	}
	return nil
}

// DrainQueue implements SyncService. Entries past the retry ceiling stay
// queued but are skipped, so one permanently failing title cannot consume
// the drain forever; they remain visible through the queue depth.
func (s *syncService) DrainQueue(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	pending, err := s.storages.Queue.ListQueue(ctx)
	if err != nil {
		return fmt.Errorf("list offline queue: %w", err)
	}

	for _, qe := range pending {
		if qe.RetryCount >= s.retryCeil {
			s.logger.Warn().Str("func", "syncService.DrainQueue").Str("title", qe.Title).
				Int("retries", qe.RetryCount).Msg("queue entry past retry ceiling, left for manual attention")
			continue
		}

		if err = ctx.Err(); err != nil {
			return err
		}

		status, pushErr := s.replayQueued(ctx, qe)
		if pushErr != nil || status == models.PushQueued {
			msg := "push still failing"
			if pushErr != nil {
				msg = pushErr.Error()
			}
			if bumpErr := s.storages.Queue.BumpRetry(ctx, qe.Title, msg); bumpErr != nil &&
				!errors.Is(bumpErr, store.ErrQueueEntryNotFound) {
				s.logger.Err(bumpErr).Str("func", "syncService.DrainQueue").Str("title", qe.Title).
					Msg("error bumping retry counter")
			}
		}
	}

	return nil
}

// replayQueued retries one queued operation. Puts prefer the live store
// copy over the queued snapshot: later edits supersede what was queued.
func (s *syncService) replayQueued(ctx context.Context, qe models.QueueEntry) (models.PushStatus, error) {
	if qe.Op == models.QueueOpDelete {
		return s.PushDelete(ctx, qe.Title)
	}

	entry, err := s.storages.Tiddlers.GetTiddler(ctx, qe.Title)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrTiddlerNotFound):
		// deleted locally after it was queued: queued snapshot is the
		// last known value, push it so other devices see the final edit
		tiddler, parseErr := models.ParseTiddler(qe.Snapshot)
		if parseErr != nil {
			return "", fmt.Errorf("parse queued snapshot for %q: %w", qe.Title, parseErr)
		}
		entry = models.StoreEntry{Tiddler: tiddler, Provenance: models.ProvenanceLocal}
	default:
		return "", fmt.Errorf("load queued title %q: %w", qe.Title, err)
	}

	return s.TryPush(ctx, entry)
}
