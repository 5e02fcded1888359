package remote

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/models"
)

// IndexKey is the remote key of the per-collection index document.
const IndexKey = "index.json"

// RecordKey derives the remote object key for a tiddler title. Titles are
// arbitrary user strings, so the key is the hex SHA-256 of the title
// rather than the title itself.
func RecordKey(title string) string {
	sum := sha256.Sum256([]byte(title))
	return "t/" + hex.EncodeToString(sum[:])
}

// IndexClient downloads and atomically updates the remote index document.
// The index is shared across processes and devices; its consistency is
// protected entirely by the object store's conditional-write protocol,
// never by an in-process lock.
type IndexClient struct {
	objects    ObjectStore
	clock      clockwork.Clock
	backoffMin time.Duration
	backoffMax time.Duration
	writerID   string
	logger     *logger.Logger
}

func NewIndexClient(objects ObjectStore, clock clockwork.Clock, backoffMin, backoffMax time.Duration, writerID string, log *logger.Logger) *IndexClient {
	if backoffMin <= 0 {
		backoffMin = 250 * time.Millisecond
	}
	if backoffMax < backoffMin {
		backoffMax = 10 * time.Second
	}

	return &IndexClient{
		objects:    objects,
		clock:      clock,
		backoffMin: backoffMin,
		backoffMax: backoffMax,
		writerID:   writerID,
		logger:     log,
	}
}

// Download fetches the current remote index. A missing index object is not
// an error: it means no writer has synced this collection yet, and the
// returned index is empty with a zero version tag so that the next
// UpdateAtomic goes through the create-if-absent path.
func (c *IndexClient) Download(ctx context.Context) (models.RemoteIndex, error) {
	body, version, err := c.objects.Get(ctx, IndexKey)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return models.RemoteIndex{Entries: map[string]models.IndexEntry{}}, nil
		}
		return models.RemoteIndex{}, fmt.Errorf("download index: %w", err)
	}

	var idx models.RemoteIndex
	if err = json.Unmarshal(body, &idx); err != nil {
		return models.RemoteIndex{}, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
	}
	if idx.Entries == nil {
		idx.Entries = map[string]models.IndexEntry{}
	}
	idx.VersionTag = version

	return idx, nil
}

// UpdateAtomic applies mutate to a freshly downloaded copy of the index
// entries and writes the result back gated on the version tag observed at
// download time. When the conditional write loses against a concurrent
// writer the whole cycle is retried from a fresh download with capped
// exponential backoff and jitter, up to maxRetries additional attempts.
// Exhausting the retries fails with ErrConcurrentModification; the losing
// writer's mutation is never silently dropped into a stale index.
func (c *IndexClient) UpdateAtomic(ctx context.Context, mutate func(entries map[string]models.IndexEntry), maxRetries int) (models.RemoteIndex, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.backoff(ctx, attempt-1); err != nil {
				return models.RemoteIndex{}, err
			}
		}

		idx, err := c.Download(ctx)
		if err != nil {
			return models.RemoteIndex{}, err
		}

		mutate(idx.Entries)
		idx.WriterID = c.writerID

		body, err := json.Marshal(idx)
		if err != nil {
			return models.RemoteIndex{}, fmt.Errorf("encode index: %w", err)
		}

		var newTag string
		if idx.VersionTag == "" {
			// first writer for this collection: create-if-absent so two
			// first-time writers cannot clobber each other
			newTag, err = c.objects.Create(ctx, IndexKey, body)
		} else {
			newTag, err = c.objects.Replace(ctx, IndexKey, body, idx.VersionTag)
		}

		switch {
		case err == nil:
			idx.VersionTag = newTag
			return idx, nil
		case errors.Is(err, ErrObjectExists), errors.Is(err, ErrVersionMismatch):
			log.Debug().
				Str("func", "IndexClient.UpdateAtomic").
				Int("attempt", attempt).
				Msg("index write lost the race, retrying from fresh download")
			continue
		default:
			return models.RemoteIndex{}, fmt.Errorf("write index: %w", err)
		}
	}

	return models.RemoteIndex{}, fmt.Errorf("%w: retries exhausted", ErrConcurrentModification)
}

// backoff sleeps for backoffMin×2^attempt capped at backoffMax, plus up to
// half of that as jitter. The sleep is cut short by ctx cancellation.
func (c *IndexClient) backoff(ctx context.Context, attempt int) error {
	delay := c.backoffMin << attempt
	if delay > c.backoffMax || delay <= 0 {
		delay = c.backoffMax
	}
	delay += time.Duration(rand.Int63n(int64(delay/2 + 1)))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.clock.After(delay):
		return nil
	}
}
