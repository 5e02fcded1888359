package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wiki-sync/internal/config"
	"github.com/MKhiriev/go-wiki-sync/internal/logger"
)

// Storages groups all per-collection repositories into a single value that
// can be passed around the service layer. One Storages instance owns one
// SQLite database file; collections never share a handle.
type Storages struct {
	// Tiddlers is the durable tiddler table for this collection.
	Tiddlers TiddlerRepository
	// Queue is the durable offline push queue.
	Queue QueueRepository
	// Metadata holds the cached remote index and snapshot baseline.
	Metadata MetadataRepository

	db *DB
}

// NewStorages initialises the storage layer for one collection using the
// supplied configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("path", cfg.DB.Path).Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Tiddlers: NewTiddlerRepository(db, logger),
		Queue:    NewQueueRepository(db, logger),
		Metadata: NewMetadataRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.DB.Close()
}
