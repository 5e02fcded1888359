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

const metadataKeyLastSnapshotExport = "last_snapshot_export"

type metadataRepository struct {
	*DB
	logger *logger.Logger
}

func NewMetadataRepository(db *DB, logger *logger.Logger) MetadataRepository {
	return &metadataRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *metadataRepository) SaveCachedIndex(ctx context.Context, idx models.RemoteIndex) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to encode remote index: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, upsertCachedIndex, string(payload), idx.VersionTag)
	if err != nil {
		log.Err(err).
			Str("func", "metadataRepository.SaveCachedIndex").
			Msg("failed to save cached remote index")
		return fmt.Errorf("%w: save cached index: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *metadataRepository) CachedIndex(ctx context.Context) (models.RemoteIndex, error) {
	log := logger.FromContext(ctx)

	var (
		payload    string
		versionTag string
	)
	row := r.DB.QueryRowContext(ctx, getCachedIndex)
	if err := row.Scan(&payload, &versionTag); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RemoteIndex{}, ErrNoCachedIndex
		}
		log.Err(err).
			Str("func", "metadataRepository.CachedIndex").
			Msg("failed to scan cached index row")
		return models.RemoteIndex{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var idx models.RemoteIndex
	if err := json.Unmarshal([]byte(payload), &idx); err != nil {
		log.Err(err).
			Str("func", "metadataRepository.CachedIndex").
			Msg("cached index payload does not parse")
		return models.RemoteIndex{}, fmt.Errorf("%w: cached index: %w", ErrCorruptPayload, err)
	}
	idx.VersionTag = versionTag

	return idx, nil
}

func (r *metadataRepository) RecordSnapshotExport(ctx context.Context, ts string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertMetadataValue, metadataKeyLastSnapshotExport, ts)
	if err != nil {
		log.Err(err).
			Str("func", "metadataRepository.RecordSnapshotExport").
			Msg("failed to record snapshot export timestamp")
		return fmt.Errorf("%w: record snapshot export: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *metadataRepository) LastSnapshotExport(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	row := r.DB.QueryRowContext(ctx, getMetadataValue, metadataKeyLastSnapshotExport)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		log.Err(err).
			Str("func", "metadataRepository.LastSnapshotExport").
			Msg("failed to scan metadata row")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}
