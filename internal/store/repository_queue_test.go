package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/models"
)

func TestQueueRepository_Enqueue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	now := time.Now()
	entry := models.QueueEntry{
		Title:      "Note",
		Op:         models.QueueOpPut,
		Snapshot:   []byte(`{"title":"Note"}`),
		EnqueuedAt: now,
	}

	// upsert — повторная постановка в очередь заменяет снапшот,
	// счётчик ретраев при этом сохраняется
	mock.ExpectExec(regexp.QuoteMeta(upsertQueueEntry)).
		WithArgs("Note", "put", `{"title":"Note"}`, now, 0, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Enqueue(context.Background(), entry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueRepository_ListQueue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	enqueuedAt := time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"title", "op", "snapshot", "enqueued_at", "retry_count", "last_error"}).
		AddRow("Note", "put", `{"title":"Note"}`, enqueuedAt, 2, "remote unavailable").
		AddRow("Gone", "delete", nil, enqueuedAt, 0, "")

	mock.ExpectQuery(regexp.QuoteMeta(listQueueEntries)).WillReturnRows(rows)

	items, err := repo.ListQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.QueueOpPut, items[0].Op)
	assert.Equal(t, 2, items[0].RetryCount)
	assert.Equal(t, "remote unavailable", items[0].LastError)

	assert.Equal(t, models.QueueOpDelete, items[1].Op)
	assert.Nil(t, items[1].Snapshot)
}

func TestQueueRepository_BumpRetry_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(bumpQueueRetry)).
		WithArgs("boom", "Missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.BumpRetry(context.Background(), "Missing", "boom")
	require.ErrorIs(t, err, ErrQueueEntryNotFound)
}

func TestQueueRepository_QueueDepth(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQueueRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(countQueueEntries)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	depth, err := repo.QueueDepth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, depth)
}
