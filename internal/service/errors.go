package service

import "errors"

var (
	// ErrSyncDisabled is returned by sync operations when remote
	// synchronization is switched off for the collection.
	ErrSyncDisabled = errors.New("remote sync is disabled")

	// ErrInvalidPayload indicates the submitted tiddler payload could not
	// be parsed: not a flat string object, or missing a title.
	ErrInvalidPayload = errors.New("invalid tiddler payload")

	// ErrCorruptRemoteRecord indicates that a fetched record object did
	// not parse as a tiddler. The record is skipped, never written to the
	// local store.
	ErrCorruptRemoteRecord = errors.New("corrupt remote record")
)
