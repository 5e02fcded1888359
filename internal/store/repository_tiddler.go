package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/models"
)

type tiddlerRepository struct {
	*DB
	logger *logger.Logger
}

func NewTiddlerRepository(db *DB, logger *logger.Logger) TiddlerRepository {
	return &tiddlerRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *tiddlerRepository) PutTiddler(ctx context.Context, entry models.StoreEntry) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(entry.Tiddler)
	if err != nil {
		return fmt.Errorf("failed to encode tiddler %q: %w", entry.Tiddler.Title, err)
	}

	_, err = r.DB.ExecContext(ctx, upsertTiddler,
		entry.Tiddler.Title,
		string(payload),
		string(entry.Provenance),
		entry.SyncedVersion,
		entry.Tiddler.Modified,
	)
	if err != nil {
		log.Err(err).
			Str("func", "tiddlerRepository.PutTiddler").
			Str("title", entry.Tiddler.Title).
			Msg("failed to execute upsert for tiddler")
		return fmt.Errorf("%w: save tiddler %q: %w", ErrExecutingStatement, entry.Tiddler.Title, err)
	}

	return nil
}

func (r *tiddlerRepository) GetTiddler(ctx context.Context, title string) (models.StoreEntry, error) {
	log := logger.FromContext(ctx)

	var (
		payload       string
		provenance    string
		syncedVersion string
	)
	row := r.DB.QueryRowContext(ctx, getSingleTiddler, title)
	if err := row.Scan(&payload, &provenance, &syncedVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoreEntry{}, ErrTiddlerNotFound
		}
		log.Err(err).
			Str("func", "tiddlerRepository.GetTiddler").
			Str("title", title).
			Msg("failed to scan tiddler row")
		return models.StoreEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var tiddler models.Tiddler
	if err := json.Unmarshal([]byte(payload), &tiddler); err != nil {
		log.Err(err).
			Str("func", "tiddlerRepository.GetTiddler").
			Str("title", title).
			Msg("stored tiddler payload does not parse")
		return models.StoreEntry{}, fmt.Errorf("%w: title %q: %w", ErrCorruptPayload, title, err)
	}

	return models.StoreEntry{
		Tiddler:       tiddler,
		Provenance:    models.Provenance(provenance),
		SyncedVersion: syncedVersion,
	}, nil
}

func (r *tiddlerRepository) DeleteTiddler(ctx context.Context, title string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteSingleTiddler, title)
	if err != nil {
		log.Err(err).
			Str("func", "tiddlerRepository.DeleteTiddler").
			Str("title", title).
			Msg("failed to execute delete for tiddler")
		return fmt.Errorf("%w: delete tiddler %q: %w", ErrExecutingStatement, title, err)
	}

	return nil
}

func (r *tiddlerRepository) GetAllStates(ctx context.Context) ([]models.TiddlerState, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllTiddlerStates)
	if err != nil {
		log.Err(err).
			Str("func", "tiddlerRepository.GetAllStates").
			Msg("failed to execute query for getting all states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.TiddlerState

	for rows.Next() {
		var item models.TiddlerState
		var provenance string

		if scanErr := rows.Scan(&item.Title, &item.Modified, &provenance, &item.SyncedVersion); scanErr != nil {
			log.Err(scanErr).
				Str("func", "tiddlerRepository.GetAllStates").
				Msg("failed to scan tiddler state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		item.Provenance = models.Provenance(provenance)

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "tiddlerRepository.GetAllStates").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating tiddler state rows: %w", rowsErr)
	}

	return items, nil
}

func (r *tiddlerRepository) ListModifiedSince(ctx context.Context, cursor string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListModifiedSinceQuery(cursor)
	if err != nil {
		log.Err(err).
			Str("func", "tiddlerRepository.ListModifiedSince").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTitles(ctx, "tiddlerRepository.ListModifiedSince", query, args...)
}

func (r *tiddlerRepository) ListTitles(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTitlesQuery()
	if err != nil {
		log.Err(err).
			Str("func", "tiddlerRepository.ListTitles").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTitles(ctx, "tiddlerRepository.ListTitles", query, args...)
}

func (r *tiddlerRepository) SetSyncedVersion(ctx context.Context, title, version string) error {
	log := logger.FromContext(ctx)

	// a successfully pushed tiddler keeps provenance local; only the pull
	// pipeline writes provenance remote
	res, err := r.DB.ExecContext(ctx, setTiddlerSyncedVersion, version, string(models.ProvenanceLocal), title)
	if err != nil {
		log.Err(err).
			Str("func", "tiddlerRepository.SetSyncedVersion").
			Str("title", title).
			Msg("failed to execute update for synced version")
		return fmt.Errorf("%w: set synced version for %q: %w", ErrExecutingStatement, title, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrTiddlerNotFound
	}

	return nil
}

func (r *tiddlerRepository) queryTitles(ctx context.Context, caller, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for titles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if scanErr := rows.Scan(&title); scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan title row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		titles = append(titles, title)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating title rows: %w", rowsErr)
	}

	return titles, nil
}
