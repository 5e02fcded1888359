package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/models"
)

type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *queueRepository) Enqueue(ctx context.Context, entry models.QueueEntry) error {
	log := logger.FromContext(ctx)

	var snapshot sql.NullString
	if entry.Snapshot != nil {
		snapshot = sql.NullString{String: string(entry.Snapshot), Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, upsertQueueEntry,
		entry.Title,
		string(entry.Op),
		snapshot,
		entry.EnqueuedAt,
		entry.RetryCount,
		entry.LastError,
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("title", entry.Title).
			Msg("failed to enqueue offline operation")
		return fmt.Errorf("%w: enqueue %q: %w", ErrExecutingStatement, entry.Title, err)
	}

	return nil
}

func (r *queueRepository) ListQueue(ctx context.Context) ([]models.QueueEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listQueueEntries)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ListQueue").
			Msg("failed to execute query for queue entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.QueueEntry

	for rows.Next() {
		var item models.QueueEntry
		var op string
		var snapshot sql.NullString

		scanErr := rows.Scan(&item.Title, &op, &snapshot, &item.EnqueuedAt, &item.RetryCount, &item.LastError)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "queueRepository.ListQueue").
				Msg("failed to scan queue entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		item.Op = models.QueueOp(op)
		if snapshot.Valid {
			item.Snapshot = []byte(snapshot.String)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "queueRepository.ListQueue").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating queue rows: %w", rowsErr)
	}

	return items, nil
}

func (r *queueRepository) RemoveFromQueue(ctx context.Context, title string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteQueueEntry, title)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.RemoveFromQueue").
			Str("title", title).
			Msg("failed to remove queue entry")
		return fmt.Errorf("%w: remove queue entry %q: %w", ErrExecutingStatement, title, err)
	}

	return nil
}

func (r *queueRepository) BumpRetry(ctx context.Context, title, lastError string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, bumpQueueRetry, lastError, title)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.BumpRetry").
			Str("title", title).
			Msg("failed to bump retry counter")
		return fmt.Errorf("%w: bump retry for %q: %w", ErrExecutingStatement, title, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (r *queueRepository) QueueDepth(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var depth int
	if err := r.DB.QueryRowContext(ctx, countQueueEntries).Scan(&depth); err != nil {
		log.Err(err).
			Str("func", "queueRepository.QueueDepth").
			Msg("failed to count queue entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return depth, nil
}
