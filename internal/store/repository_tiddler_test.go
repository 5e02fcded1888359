package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/models"
)

// newMockDB — хелпер для создания репозитория поверх sqlmock
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func TestTiddlerRepository_PutTiddler(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTiddlerRepository(db, logger.Nop())

	entry := models.StoreEntry{
		Tiddler: models.Tiddler{
			Title:    "Note",
			Modified: "20260106225428206",
			Fields:   map[string]string{"text": "hello"},
		},
		Provenance:    models.ProvenanceLocal,
		SyncedVersion: "v3",
	}

	mock.ExpectExec(regexp.QuoteMeta(upsertTiddler)).
		WithArgs("Note", sqlmock.AnyArg(), "local", "v3", "20260106225428206").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PutTiddler(context.Background(), entry)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTiddlerRepository_GetTiddler(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTiddlerRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"tiddler_data", "provenance", "synced_version"}).
		AddRow(`{"title":"Note","text":"hello","modified":"20260101000000000"}`, "remote", "v7")

	mock.ExpectQuery(regexp.QuoteMeta(getSingleTiddler)).
		WithArgs("Note").
		WillReturnRows(rows)

	entry, err := repo.GetTiddler(context.Background(), "Note")
	require.NoError(t, err)

	assert.Equal(t, "Note", entry.Tiddler.Title)
	assert.Equal(t, "hello", entry.Tiddler.Fields["text"])
	assert.Equal(t, models.ProvenanceRemote, entry.Provenance)
	assert.Equal(t, "v7", entry.SyncedVersion)
}

func TestTiddlerRepository_GetTiddler_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTiddlerRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(getSingleTiddler)).
		WithArgs("Missing").
		WillReturnRows(sqlmock.NewRows([]string{"tiddler_data", "provenance", "synced_version"}))

	_, err := repo.GetTiddler(context.Background(), "Missing")
	require.ErrorIs(t, err, ErrTiddlerNotFound)
}

func TestTiddlerRepository_GetTiddler_CorruptPayload(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTiddlerRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"tiddler_data", "provenance", "synced_version"}).
		AddRow(`{{{not json`, "local", "")

	mock.ExpectQuery(regexp.QuoteMeta(getSingleTiddler)).
		WithArgs("Broken").
		WillReturnRows(rows)

	_, err := repo.GetTiddler(context.Background(), "Broken")
	require.ErrorIs(t, err, ErrCorruptPayload)
}

func TestTiddlerRepository_GetAllStates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTiddlerRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"title", "modified", "provenance", "synced_version"}).
		AddRow("A", "20260101000000000", "remote", "v1").
		AddRow("B", "20260102000000000", "local", "")

	mock.ExpectQuery(regexp.QuoteMeta(getAllTiddlerStates)).WillReturnRows(rows)

	states, err := repo.GetAllStates(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)

	assert.Equal(t, models.ProvenanceRemote, states[0].Provenance)
	assert.Equal(t, "v1", states[0].SyncedVersion)
	assert.Equal(t, "B", states[1].Title)
}

func TestTiddlerRepository_SetSyncedVersion_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTiddlerRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(setTiddlerSyncedVersion)).
		WithArgs("v2", "local", "Missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetSyncedVersion(context.Background(), "Missing", "v2")
	require.ErrorIs(t, err, ErrTiddlerNotFound)
}
