package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── MemObjectStore ──────────────────────────────────────────────────────────

func TestMemObjectStore_ConditionalWrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemObjectStore()

	v1, err := store.Create(ctx, "k", []byte("one"))
	require.NoError(t, err)
	require.NotEmpty(t, v1)

	// повторный create по занятому ключу должен проиграть
	_, err = store.Create(ctx, "k", []byte("two"))
	assert.ErrorIs(t, err, ErrObjectExists)

	v2, err := store.Replace(ctx, "k", []byte("two"), v1)
	require.NoError(t, err)
	assert.NotEqual(t, v1, v2)

	// replace gated on a stale version loses
	_, err = store.Replace(ctx, "k", []byte("three"), v1)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	body, version, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), body)
	assert.Equal(t, v2, version)
}

func TestMemObjectStore_GetMissing(t *testing.T) {
	_, _, err := NewMemObjectStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemObjectStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemObjectStore()

	_, err := store.Create(ctx, "k", []byte("one"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, _, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemObjectStore_VersionsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemObjectStore()

	v1, err := store.Create(ctx, "k", []byte("one"))
	require.NoError(t, err)
	v2, err := store.Replace(ctx, "k", []byte("two"), v1)
	require.NoError(t, err)
	v3, err := store.Put(ctx, "k", []byte("three"))
	require.NoError(t, err)

	versions, err := store.Versions(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{v3, v2, v1}, versions)
}

// ── httpObjectStore ─────────────────────────────────────────────────────────

// fakeObjectServer is a minimal ETag-speaking object endpoint used to pin
// down the client's header and status-code mapping.
type fakeObjectServer struct {
	bodies map[string][]byte
	etags  map[string]string
	seq    int
}

func newFakeObjectServer() *fakeObjectServer {
	return &fakeObjectServer{bodies: map[string][]byte{}, etags: map[string]string{}}
}

func (f *fakeObjectServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path
		switch r.Method {
		case http.MethodGet:
			body, ok := f.bodies[key]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if r.URL.Query().Get("versions") == "1" {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode([]string{f.etags[key]})
				return
			}
			w.Header().Set("ETag", f.etags[key])
			_, _ = w.Write(body)
		case http.MethodPut:
			_, exists := f.bodies[key]
			if r.Header.Get("If-None-Match") == "*" && exists {
				w.WriteHeader(http.StatusPreconditionFailed)
				return
			}
			if ifMatch := r.Header.Get("If-Match"); ifMatch != "" && ifMatch != f.etags[key] {
				w.WriteHeader(http.StatusPreconditionFailed)
				return
			}
			f.seq++
			body, _ := io.ReadAll(r.Body)
			f.bodies[key] = body
			f.etags[key] = fmt.Sprintf("srv-v%d", f.seq)
			w.Header().Set("ETag", f.etags[key])
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			if _, ok := f.bodies[key]; !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			delete(f.bodies, key)
			delete(f.etags, key)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func TestHTTPObjectStore_CreateReplaceGet(t *testing.T) {
	srv := httptest.NewServer(newFakeObjectServer().handler())
	defer srv.Close()

	ctx := context.Background()
	store := NewHTTPObjectStore(HTTPStoreConfig{BaseURL: srv.URL, Prefix: "wiki"})

	v1, err := store.Create(ctx, "index.json", []byte(`{"entries":{}}`))
	require.NoError(t, err)
	require.NotEmpty(t, v1)

	_, err = store.Create(ctx, "index.json", []byte(`{}`))
	assert.ErrorIs(t, err, ErrObjectExists)

	v2, err := store.Replace(ctx, "index.json", []byte(`{"entries":{"a":{}}}`), v1)
	require.NoError(t, err)
	assert.NotEqual(t, v1, v2)

	_, err = store.Replace(ctx, "index.json", []byte(`{}`), v1)
	assert.ErrorIs(t, err, ErrVersionMismatch)

	body, version, err := store.Get(ctx, "index.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"entries":{"a":{}}}`), body)
	assert.Equal(t, v2, version)
}

func TestHTTPObjectStore_GetMissing(t *testing.T) {
	srv := httptest.NewServer(newFakeObjectServer().handler())
	defer srv.Close()

	store := NewHTTPObjectStore(HTTPStoreConfig{BaseURL: srv.URL})

	_, _, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestHTTPObjectStore_DeleteMissingIsNoop(t *testing.T) {
	srv := httptest.NewServer(newFakeObjectServer().handler())
	defer srv.Close()

	store := NewHTTPObjectStore(HTTPStoreConfig{BaseURL: srv.URL})

	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestHTTPObjectStore_ServerErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	store := NewHTTPObjectStore(HTTPStoreConfig{BaseURL: srv.URL})

	_, _, err := store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}
