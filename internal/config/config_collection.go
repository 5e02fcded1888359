package config

import (
	"path"
	"path/filepath"
)

// CollectionConfig is the per-wiki view of the merged configuration. Each
// synced collection gets its own database file and its own remote key
// namespace; everything else is shared.
type CollectionConfig struct {
	// Name is the collection identifier, used in file and key names.
	Name string
	// Storage contains the collection's local database settings.
	Storage Storage
	// Remote contains the object store settings scoped to this collection.
	Remote Remote
	// Sync contains the shared sync loop settings.
	Sync Sync
	// WriterID identifies this device in the collection's remote index.
	WriterID string
}

// ForCollection derives the configuration for one named collection. An
// explicitly configured database path is honored only for the "default"
// collection; every other collection lives under App.DataDir.
func (cfg *StructuredConfig) ForCollection(name string) CollectionConfig {
	dbPath := filepath.Join(cfg.App.DataDir, name+".db")
	if name == "default" && cfg.Storage.DB.Path != "" {
		dbPath = cfg.Storage.DB.Path
	}

	remote := cfg.Remote
	remote.Prefix = path.Join(remote.Prefix, name)

	return CollectionConfig{
		Name:     name,
		Storage:  Storage{DB: StorageDB{Path: dbPath}},
		Remote:   remote,
		Sync:     cfg.Sync,
		WriterID: cfg.App.WriterID,
	}
}
