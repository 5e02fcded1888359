package remote

import "errors"

// Sentinel errors of the remote tier. Callers match with [errors.Is].
var (
	// ErrRemoteUnavailable covers network failures and timeouts talking to
	// the remote object store. Always retryable: pushes are queued, pulls
	// are skipped until the next cycle.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrConcurrentModification is returned when a conditional index write
	// lost the race against another writer and retries were exhausted.
	ErrConcurrentModification = errors.New("remote index concurrent modification")

	// ErrVersionMismatch is the per-attempt signal that a conditional
	// replace was gated on a stale version tag. UpdateAtomic retries on it;
	// it escapes to callers only through ErrConcurrentModification.
	ErrVersionMismatch = errors.New("object version mismatch")

	// ErrObjectExists is returned by a conditional create when the key is
	// already present.
	ErrObjectExists = errors.New("object already exists")

	// ErrObjectNotFound is returned when the requested key is absent.
	ErrObjectNotFound = errors.New("object not found")

	// ErrCorruptIndex is returned when the downloaded index document fails
	// to parse.
	ErrCorruptIndex = errors.New("remote index payload is corrupt")
)
