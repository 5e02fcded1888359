package models

import (
	"fmt"
	"strings"
	"time"
)

// TiddlyWiki timestamps are UTC strings of the form YYYYMMDDHHMMSSmmm.
// The format is lexicographically monotonic, so plain string comparison
// orders timestamps correctly.
const twTimestampLayout = "20060102150405"

// TWTimestamp formats ts in TiddlyWiki timestamp form with millisecond
// resolution.
func TWTimestamp(ts time.Time) string {
	ts = ts.UTC()
	return ts.Format(twTimestampLayout) + fmt.Sprintf("%03d", ts.Nanosecond()/int(time.Millisecond))
}

// NormalizeCursor converts a change cursor supplied by the editor surface
// into TiddlyWiki timestamp form. The editor sends ISO-8601 timestamps
// (e.g. "2026-01-06T22:54:28.206Z"); cursors already in TiddlyWiki form
// pass through unchanged. An unparseable cursor is returned as-is, the
// same fallback the original bridge applied.
func NormalizeCursor(cursor string) string {
	if cursor == "" {
		return ""
	}
	if !strings.ContainsAny(cursor, "-:TZ+") {
		return cursor
	}
	ts, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return cursor
	}
	return TWTimestamp(ts)
}

// NewerThan reports whether timestamp a is strictly newer than b. An empty
// timestamp is older than anything.
func NewerThan(a, b string) bool {
	if a == "" {
		return false
	}
	return b == "" || a > b
}
