package remote

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_mock.go -package=mock

// ObjectStore is the wire contract of the shared remote object store:
// plain blobs addressed by key within a per-collection namespace, with
// conditional writes for optimistic concurrency. Implementations map their
// transport's failure modes onto the sentinel errors of this package.
type ObjectStore interface {
	// Get returns the object body and its current version tag.
	// Fails with ErrObjectNotFound or ErrRemoteUnavailable.
	Get(ctx context.Context, key string) (body []byte, version string, err error)

	// Create writes the object only if the key does not exist yet and
	// returns the new version tag. Fails with ErrObjectExists when another
	// writer created it first.
	Create(ctx context.Context, key string, body []byte) (version string, err error)

	// Replace overwrites the object only if its version still equals
	// ifVersion and returns the new tag. Fails with ErrVersionMismatch
	// when the object changed since it was read.
	Replace(ctx context.Context, key string, body []byte, ifVersion string) (version string, err error)

	// Put overwrites the object unconditionally and returns the new tag.
	// Record payloads use this: the index, not the record object, is the
	// authority on which version is current.
	Put(ctx context.Context, key string, body []byte) (version string, err error)

	// Delete removes the object. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Versions returns the object's known version tags, newest first.
	Versions(ctx context.Context, key string) ([]string, error)
}
