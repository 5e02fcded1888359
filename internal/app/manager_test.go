package app

import (
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wiki-sync/internal/config"
	"github.com/MKhiriev/go-wiki-sync/internal/logger"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	cfg := &config.StructuredConfig{}
	cfg.App.DataDir = t.TempDir()

	m := NewManager(cfg, clockwork.NewRealClock(), logger.Nop())
	t.Cleanup(m.CloseAll)

	return m
}

func TestManager_OpensCollectionOnce(t *testing.T) {
	m := newTestManager(t)

	first, err := m.Collection("notes")
	require.NoError(t, err)
	require.NotNil(t, first.Storages)
	require.NotNil(t, first.Services)
	assert.Equal(t, "notes", first.Name)

	second, err := m.Collection("notes")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestManager_IndependentDatabasesPerCollection(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Collection("work")
	require.NoError(t, err)
	_, err = m.Collection("personal")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(m.cfg.App.DataDir, "work.db"))
	assert.FileExists(t, filepath.Join(m.cfg.App.DataDir, "personal.db"))
}

func TestManager_RejectsInvalidNames(t *testing.T) {
	m := newTestManager(t)

	for _, name := range []string{"", "../etc", ".hidden", "has space", "a/b"} {
		_, err := m.Collection(name)
		assert.ErrorIs(t, err, ErrInvalidCollectionName, "name %q", name)
	}
}

func TestManager_CloseAllIsReentrant(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Collection("notes")
	require.NoError(t, err)

	m.CloseAll()
	m.CloseAll()
}
