// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles and owns the per-collection runtime: each synced
// wiki collection gets its own storage, object store namespace, and sync
// loop, created lazily on first use and torn down together on shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/config"
	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/remote"
	"github.com/MKhiriev/go-wiki-sync/internal/service"
	"github.com/MKhiriev/go-wiki-sync/internal/store"
)

// DefaultCollection is the collection served when the deployment hosts a
// single wiki.
const DefaultCollection = "default"

// ErrInvalidCollectionName rejects collection names that could escape the
// data directory or the remote key namespace.
var ErrInvalidCollectionName = errors.New("invalid collection name")

var collectionNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Collection is one synced wiki: its storages plus its service stack.
type Collection struct {
	Name     string
	Storages *store.Storages
	Services *service.Services
}

// Manager hands out collections by name, opening each one at most once.
type Manager struct {
	cfg    *config.StructuredConfig
	clock  clockwork.Clock
	logger *logger.Logger

	mu          sync.Mutex
	collections map[string]*Collection
	baseCtx     context.Context
	cancel      context.CancelFunc
}

func NewManager(cfg *config.StructuredConfig, clock clockwork.Clock, log *logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		cfg:         cfg,
		clock:       clock,
		logger:      log,
		collections: make(map[string]*Collection),
		baseCtx:     ctx,
		cancel:      cancel,
	}
}

// Collection returns the named collection, opening it on first request.
// Opening starts the collection's background sync loop.
func (m *Manager) Collection(name string) (*Collection, error) {
	if !collectionNameRe.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCollectionName, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if col, ok := m.collections[name]; ok {
		return col, nil
	}

	col, err := m.open(name)
	if err != nil {
		return nil, err
	}
	m.collections[name] = col

	return col, nil
}

func (m *Manager) open(name string) (*Collection, error) {
	colCfg := m.cfg.ForCollection(name)

	storages, err := store.NewStorages(colCfg.Storage, m.logger)
	if err != nil {
		return nil, fmt.Errorf("open collection %q: %w", name, err)
	}

	var objects remote.ObjectStore
	if colCfg.Remote.Enabled {
		objects = remote.NewHTTPObjectStore(remote.HTTPStoreConfig{
			BaseURL: colCfg.Remote.Endpoint,
			Prefix:  colCfg.Remote.Prefix,
			Token:   colCfg.Remote.Token,
			Timeout: colCfg.Remote.Timeout,
		})
	} else {
		objects = remote.NewMemObjectStore()
	}

	services := service.NewServices(storages, objects, colCfg, m.clock, nil, m.logger)
	services.Job.Start(m.baseCtx)

	m.logger.Info().Str("collection", name).Bool("remote", colCfg.Remote.Enabled).
		Msg("collection opened")

	return &Collection{
		Name:     name,
		Storages: storages,
		Services: services,
	}, nil
}

// CloseAll stops every sync loop and closes every database handle. The
// manager is unusable afterwards.
func (m *Manager) CloseAll() {
	m.cancel()

	m.mu.Lock()
	defer m.mu.Unlock()

	for name, col := range m.collections {
		col.Services.Job.Stop()
		if err := col.Storages.Close(); err != nil {
			m.logger.Err(err).Str("collection", name).Msg("error closing collection storage")
		}
		delete(m.collections, name)
	}
}
