// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wiki-sync/models"
)

// Pull implements SyncService. One pull cycle downloads the remote index,
// diffs it against the local store, fetches every record that is new or
// newer remotely, and removes local records whose remote counterpart was
// deleted. A corrupt record object is skipped and reported, it never
// overwrites a good local value.
func (s *syncService) Pull(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	idx, err := s.index.Download(ctx)
	if err != nil {
		return fmt.Errorf("pull: %w", err)
	}

	// the cached copy of the index from the previous cycle tells us
	// whether anything changed remotely at all
	if cached, cacheErr := s.storages.Metadata.CachedIndex(ctx); cacheErr == nil &&
		idx.VersionTag != "" && cached.VersionTag == idx.VersionTag {
		s.logger.Debug().Str("func", "syncService.Pull").Str("version", idx.VersionTag).
			Msg("remote index unchanged since last cycle")
		return nil
	}

	states, err := s.storages.Tiddlers.GetAllStates(ctx)
	if err != nil {
		return fmt.Errorf("pull: local states: %w", err)
	}

	local := make(map[string]models.TiddlerState, len(states))
	for _, st := range states {
		local[st.Title] = st
	}

	var corrupt int
	for title, cur := range idx.Entries {
		st, exists := local[title]
		if !s.needsFetch(exists, st, cur) {
			continue
		}

		if err = s.fetchAndResolve(ctx, title, st, cur, exists); err != nil {
			if errors.Is(err, ErrCorruptRemoteRecord) {
				corrupt++
				s.logger.Warn().Str("func", "syncService.Pull").Str("title", title).
					Str("key", cur.RemoteKey).Msg("skipping corrupt remote record")
				continue
			}
			return err
		}
	}

	for _, st := range states {
		if _, stillRemote := idx.Entries[st.Title]; stillRemote {
			continue
		}
		if !s.removable(st) {
			continue
		}

		if err = s.storages.Tiddlers.DeleteTiddler(ctx, st.Title); err != nil {
			return fmt.Errorf("pull: delete %q: %w", st.Title, err)
		}
		s.logger.Debug().Str("func", "syncService.Pull").Str("title", st.Title).
			Msg("removed locally, deleted on remote")
		if s.onRemoteSet != nil {
			s.onRemoteSet(st.Title)
		}
	}

	if err = s.storages.Metadata.SaveCachedIndex(ctx, idx); err != nil {
		s.logger.Err(err).Str("func", "syncService.Pull").Msg("error caching index")
	}

	if corrupt > 0 {
		return fmt.Errorf("%w: %d record(s) skipped", ErrCorruptRemoteRecord, corrupt)
	}
	return nil
}

// needsFetch decides whether an index entry warrants downloading the
// record. A title with no pending local edit follows the remote version
// unconditionally; a title with a pending edit is only overwritten when
// the remote value is newer, or ties on the timestamp (the digest tiebreak
// then happens after the fetch).
func (s *syncService) needsFetch(exists bool, st models.TiddlerState, cur models.IndexEntry) bool {
	if !exists {
		return true
	}
	if cur.RemoteVersion == st.SyncedVersion {
		return false
	}

	if st.Provenance != models.ProvenanceLocal {
		return true
	}

	return !models.NewerThan(st.Modified, cur.Modified)
}

// fetchAndResolve downloads one record and stores it, honoring the
// digest tiebreak when a pending local edit carries the same timestamp.
func (s *syncService) fetchAndResolve(ctx context.Context, title string, st models.TiddlerState, cur models.IndexEntry, exists bool) error {
	tiddler, err := s.fetchRecord(ctx, cur)
	if err != nil {
		return err
	}

	tie := exists &&
		st.Provenance == models.ProvenanceLocal &&
		st.SyncedVersion != cur.RemoteVersion &&
		!models.NewerThan(cur.Modified, st.Modified) &&
		!models.NewerThan(st.Modified, cur.Modified)
	if tie {
		entry, loadErr := s.storages.Tiddlers.GetTiddler(ctx, title)
		if loadErr != nil {
			return fmt.Errorf("pull: load %q for tiebreak: %w", title, loadErr)
		}
		if entry.Tiddler.Digest() >= tiddler.Digest() {
			// local copy wins or is identical; the push pipeline settles it
			return nil
		}
	}

	return s.saveRemote(ctx, tiddler, cur.RemoteVersion)
}

// removable reports whether a locally stored title whose index entry
// disappeared should be deleted locally. A never-synced record is a new
// local creation awaiting its first push; an unsynced bootstrap import has
// simply not reached the remote yet. Neither may be destroyed by a pull.
func (s *syncService) removable(st models.TiddlerState) bool {
	return st.Provenance != models.ProvenanceLocal && st.SyncedVersion != ""
}
