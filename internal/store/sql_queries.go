// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wiki-sync/models"
)

const (
	upsertTiddler = `
		INSERT INTO tiddlers (
			title,
			tiddler_data,
			provenance,
			synced_version,
			modified
		) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			tiddler_data = excluded.tiddler_data,
			provenance = excluded.provenance,
			synced_version = excluded.synced_version,
			modified = excluded.modified;`

	getSingleTiddler = `
		SELECT
			tiddler_data,
			provenance,
			synced_version
		FROM tiddlers
		WHERE title = ?;`

	deleteSingleTiddler = `DELETE FROM tiddlers WHERE title = ?;`

	getAllTiddlerStates = `
		SELECT
			title,
			modified,
			provenance,
			synced_version
		FROM tiddlers;`

	setTiddlerSyncedVersion = `
		UPDATE tiddlers
		SET synced_version = ?, provenance = ?
		WHERE title = ?;`

	upsertQueueEntry = `
		INSERT INTO sync_queue (title, op, snapshot, enqueued_at, retry_count, last_error)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (title) DO UPDATE SET
			op          = excluded.op,
			snapshot    = excluded.snapshot,
			enqueued_at = excluded.enqueued_at,
			last_error  = excluded.last_error;`

	listQueueEntries = `
		SELECT title, op, snapshot, enqueued_at, retry_count, last_error
		FROM sync_queue
		ORDER BY enqueued_at;`

	deleteQueueEntry = `DELETE FROM sync_queue WHERE title = ?;`

	bumpQueueRetry = `
		UPDATE sync_queue
		SET retry_count = retry_count + 1, last_error = ?
		WHERE title = ?;`

	countQueueEntries = `SELECT COUNT(*) FROM sync_queue;`

	upsertMetadataValue = `REPLACE INTO wiki_metadata (key, value) VALUES (?, ?);`

	getMetadataValue = `SELECT value FROM wiki_metadata WHERE key = ?;`

	upsertCachedIndex = `
		REPLACE INTO remote_index_cache (id, payload, version_tag)
		VALUES (1, ?, ?);`

	getCachedIndex = `SELECT payload, version_tag FROM remote_index_cache WHERE id = 1;`
)

// systemTitleLike is the LIKE pattern excluding TiddlyWiki system tiddlers
// from change listings. They are stored but never synced back to the editor.
const systemTitleLike = models.SystemTitlePrefix + "%"

// buildListModifiedSinceQuery builds the change-listing query: non-system
// titles whose modified timestamp is strictly greater than cursor. With an
// empty cursor every non-system title matches (fresh database, no snapshot
// baseline recorded yet).
func buildListModifiedSinceQuery(cursor string) (string, []any, error) {
	builder := sq.Select("title").
		From("tiddlers").
		Where(sq.NotLike{"title": systemTitleLike})

	if cursor != "" {
		builder = builder.Where(sq.Gt{"modified": cursor})
	}

	return builder.OrderBy("title").ToSql()
}

// buildListTitlesQuery builds the query returning every non-system title,
// used for deletion detection by set difference against the editor's live
// title set.
func buildListTitlesQuery() (string, []any, error) {
	return sq.Select("title").
		From("tiddlers").
		Where(sq.NotLike{"title": systemTitleLike}).
		OrderBy("title").
		ToSql()
}
