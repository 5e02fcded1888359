package remote

import (
	"context"
	"fmt"
	"sync"
)

// MemObjectStore is an in-memory ObjectStore with the same conditional
// semantics as the HTTP implementation. It backs collections that run with
// remote sync disabled and doubles as the store used by tests.
type MemObjectStore struct {
	mu      sync.Mutex
	objects map[string]*memObject
	nextVer int64
}

type memObject struct {
	body    []byte
	version string
	history []string
}

func NewMemObjectStore() *MemObjectStore {
	return &MemObjectStore{objects: make(map[string]*memObject)}
}

func (s *MemObjectStore) Get(_ context.Context, key string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	body := make([]byte, len(obj.body))
	copy(body, obj.body)
	return body, obj.version, nil
}

func (s *MemObjectStore) Create(_ context.Context, key string, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; ok {
		return "", fmt.Errorf("%w: %s", ErrObjectExists, key)
	}

	return s.write(key, body), nil
}

func (s *MemObjectStore) Replace(_ context.Context, key string, body []byte, ifVersion string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[key]
	if !ok || obj.version != ifVersion {
		return "", fmt.Errorf("%w: %s", ErrVersionMismatch, key)
	}

	return s.write(key, body), nil
}

func (s *MemObjectStore) Put(_ context.Context, key string, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(key, body), nil
}

func (s *MemObjectStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, key)
	return nil
}

func (s *MemObjectStore) Versions(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	versions := make([]string, len(obj.history))
	for i, v := range obj.history {
		versions[len(obj.history)-1-i] = v
	}
	return versions, nil
}

// write stores body under key with a fresh version tag. Caller holds the lock.
func (s *MemObjectStore) write(key string, body []byte) string {
	s.nextVer++
	version := fmt.Sprintf("v%d", s.nextVer)

	stored := make([]byte, len(body))
	copy(stored, body)

	obj, ok := s.objects[key]
	if !ok {
		obj = &memObject{}
		s.objects[key] = obj
	}
	obj.body = stored
	obj.version = version
	obj.history = append(obj.history, version)

	return version
}
