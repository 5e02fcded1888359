package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/remote"
	"github.com/MKhiriev/go-wiki-sync/internal/store"
	"github.com/MKhiriev/go-wiki-sync/models"
)

// Простые in-memory фейки хранилища: сценарные тесты гоняют настоящие
// пайплайны против них, без sqlmock (избегаем хрупких SQL-ожиданий).

type fakeTiddlers struct {
	mu      sync.Mutex
	entries map[string]models.StoreEntry
}

func newFakeTiddlers() *fakeTiddlers {
	return &fakeTiddlers{entries: map[string]models.StoreEntry{}}
}

func (f *fakeTiddlers) PutTiddler(_ context.Context, entry models.StoreEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[entry.Tiddler.Title] = entry
	return nil
}

func (f *fakeTiddlers) GetTiddler(_ context.Context, title string) (models.StoreEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[title]
	if !ok {
		return models.StoreEntry{}, store.ErrTiddlerNotFound
	}
	return entry, nil
}

func (f *fakeTiddlers) DeleteTiddler(_ context.Context, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, title)
	return nil
}

func (f *fakeTiddlers) GetAllStates(_ context.Context) ([]models.TiddlerState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	states := make([]models.TiddlerState, 0, len(f.entries))
	for _, e := range f.entries {
		states = append(states, models.TiddlerState{
			Title:         e.Tiddler.Title,
			Modified:      e.Tiddler.Modified,
			Provenance:    e.Provenance,
			SyncedVersion: e.SyncedVersion,
		})
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Title < states[j].Title })
	return states, nil
}

func (f *fakeTiddlers) ListModifiedSince(_ context.Context, cursor string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var titles []string
	for title, e := range f.entries {
		if models.IsSystemTitle(title) {
			continue
		}
		if cursor == "" || e.Tiddler.Modified > cursor {
			titles = append(titles, title)
		}
	}
	sort.Strings(titles)
	return titles, nil
}

func (f *fakeTiddlers) ListTitles(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var titles []string
	for title := range f.entries {
		if !models.IsSystemTitle(title) {
			titles = append(titles, title)
		}
	}
	sort.Strings(titles)
	return titles, nil
}

func (f *fakeTiddlers) SetSyncedVersion(_ context.Context, title, version string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[title]
	if !ok {
		return store.ErrTiddlerNotFound
	}
	entry.SyncedVersion = version
	f.entries[title] = entry
	return nil
}

type fakeQueue struct {
	mu      sync.Mutex
	entries map[string]models.QueueEntry
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{entries: map[string]models.QueueEntry{}}
}

func (f *fakeQueue) Enqueue(_ context.Context, entry models.QueueEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if prev, ok := f.entries[entry.Title]; ok {
		entry.RetryCount = prev.RetryCount
	}
	f.entries[entry.Title] = entry
	return nil
}

func (f *fakeQueue) ListQueue(_ context.Context) ([]models.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.QueueEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnqueuedAt.Before(out[j].EnqueuedAt) })
	return out, nil
}

func (f *fakeQueue) RemoveFromQueue(_ context.Context, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, title)
	return nil
}

func (f *fakeQueue) BumpRetry(_ context.Context, title, lastError string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[title]
	if !ok {
		return store.ErrQueueEntryNotFound
	}
	entry.RetryCount++
	entry.LastError = lastError
	f.entries[title] = entry
	return nil
}

func (f *fakeQueue) QueueDepth(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries), nil
}

type fakeMetadata struct {
	mu       sync.Mutex
	index    *models.RemoteIndex
	baseline string
}

func (f *fakeMetadata) SaveCachedIndex(_ context.Context, idx models.RemoteIndex) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.index = &idx
	return nil
}

func (f *fakeMetadata) CachedIndex(_ context.Context) (models.RemoteIndex, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.index == nil {
		return models.RemoteIndex{}, store.ErrNoCachedIndex
	}
	return *f.index, nil
}

func (f *fakeMetadata) RecordSnapshotExport(_ context.Context, ts string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.baseline = ts
	return nil
}

func (f *fakeMetadata) LastSnapshotExport(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.baseline, nil
}

// offlineStore всегда недоступен
type offlineStore struct{}

func (offlineStore) Get(context.Context, string) ([]byte, string, error) {
	return nil, "", remote.ErrRemoteUnavailable
}
func (offlineStore) Create(context.Context, string, []byte) (string, error) {
	return "", remote.ErrRemoteUnavailable
}
func (offlineStore) Replace(context.Context, string, []byte, string) (string, error) {
	return "", remote.ErrRemoteUnavailable
}
func (offlineStore) Put(context.Context, string, []byte) (string, error) {
	return "", remote.ErrRemoteUnavailable
}
func (offlineStore) Delete(context.Context, string) error { return remote.ErrRemoteUnavailable }
func (offlineStore) Versions(context.Context, string) ([]string, error) {
	return nil, remote.ErrRemoteUnavailable
}

type syncHarness struct {
	tiddlers *fakeTiddlers
	queue    *fakeQueue
	metadata *fakeMetadata
	objects  remote.ObjectStore
	index    *remote.IndexClient
	sync     SyncService
}

func newSyncHarness(objects remote.ObjectStore) *syncHarness {
	h := &syncHarness{
		tiddlers: newFakeTiddlers(),
		queue:    newFakeQueue(),
		metadata: &fakeMetadata{},
		objects:  objects,
	}

	storages := &store.Storages{
		Tiddlers: h.tiddlers,
		Queue:    h.queue,
		Metadata: h.metadata,
	}
	clock := clockwork.NewRealClock()
	h.index = remote.NewIndexClient(objects, clock, time.Millisecond, 5*time.Millisecond, "test-writer", logger.Nop())
	h.sync = NewSyncService(storages, objects, h.index, clock, 3, 3, true, nil, logger.Nop())

	return h
}

// seedRemote uploads a tiddler to the object store and registers it in the
// remote index, returning the record version.
func seedRemote(t *testing.T, objects remote.ObjectStore, index *remote.IndexClient, tiddler models.Tiddler) string {
	t.Helper()

	body, err := json.Marshal(tiddler)
	require.NoError(t, err)
	version, err := objects.Put(context.Background(), remote.RecordKey(tiddler.Title), body)
	require.NoError(t, err)

	_, err = index.UpdateAtomic(context.Background(), func(entries map[string]models.IndexEntry) {
		entries[tiddler.Title] = models.IndexEntry{
			Modified:      tiddler.Modified,
			RemoteKey:     remote.RecordKey(tiddler.Title),
			RemoteVersion: version,
		}
	}, 3)
	require.NoError(t, err)

	return version
}

func mustMarshal(t *testing.T, tiddler models.Tiddler) []byte {
	t.Helper()
	body, err := json.Marshal(tiddler)
	require.NoError(t, err)
	return body
}

func makeTiddler(title, modified, text string) models.Tiddler {
	return models.Tiddler{
		Title:    title,
		Modified: modified,
		Fields:   map[string]string{"text": text},
	}
}
