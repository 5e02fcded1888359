package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTiddlerNotFound is returned when a query targets a tiddler title
	// that does not exist in the local store. Absence is a normal, expected
	// outcome for load operations, not a failure of the store.
	ErrTiddlerNotFound = errors.New("tiddler was not found")

	// ErrCorruptPayload is returned when a stored tiddler payload fails to
	// parse as JSON. The offending record is skipped and flagged by sync
	// cycles rather than aborting them.
	ErrCorruptPayload = errors.New("tiddler payload is corrupt")

	// ErrNoCachedIndex is returned when no remote index snapshot has been
	// cached yet for this collection.
	ErrNoCachedIndex = errors.New("no cached remote index")

	// ErrQueueEntryNotFound is returned when an offline queue operation
	// targets a title that is not queued.
	ErrQueueEntryNotFound = errors.New("queue entry was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
