package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SystemTitlePrefix marks TiddlyWiki system tiddlers. They are stored
// locally but never reported by change listings and never synchronized
// to the remote store.
const SystemTitlePrefix = "$:/"

// Tiddler is a single titled unit of wiki content. TiddlyWiki serializes a
// tiddler as a flat JSON object of string fields; Title and Modified are
// lifted out because synchronization keys on them, everything else is kept
// verbatim in Fields so unknown fields survive a store round trip.
type Tiddler struct {
	Title    string
	Modified string
	Fields   map[string]string
}

// IsSystem reports whether the tiddler is a system tiddler ($:/ title).
func (t Tiddler) IsSystem() bool {
	return IsSystemTitle(t.Title)
}

// IsSystemTitle reports whether title denotes a system tiddler.
func IsSystemTitle(title string) bool {
	return strings.HasPrefix(title, SystemTitlePrefix)
}

// Digest returns a deterministic content digest of the tiddler: a hex
// SHA-256 over the sorted field set including title and modified. Two
// tiddlers with identical content always produce identical digests,
// which makes the digest usable as a conflict tiebreak.
func (t Tiddler) Digest() string {
	keys := make([]string, 0, len(t.Fields)+2)
	for k := range t.Fields {
		keys = append(keys, k)
	}
	keys = append(keys, "title", "modified")
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		var v string
		switch k {
		case "title":
			v = t.Title
		case "modified":
			v = t.Modified
		default:
			v = t.Fields[k]
		}
		fmt.Fprintf(h, "%s\x00%s\x00", k, v)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// MarshalJSON renders the tiddler back into TiddlyWiki's flat object form.
func (t Tiddler) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(t.Fields)+2)
	for k, v := range t.Fields {
		flat[k] = v
	}
	flat["title"] = t.Title
	if t.Modified != "" {
		flat["modified"] = t.Modified
	}
	return json.Marshal(flat)
}

// UnmarshalJSON parses TiddlyWiki's flat object form. Non-string values
// (the draft.of edge cases aside, TiddlyWiki emits strings only) are
// rejected so corrupt payloads are caught at the parse boundary.
func (t *Tiddler) UnmarshalJSON(data []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("tiddler payload is not a flat string object: %w", err)
	}

	t.Title = flat["title"]
	t.Modified = flat["modified"]
	delete(flat, "title")
	delete(flat, "modified")
	t.Fields = flat

	return nil
}

// ParseTiddler decodes a raw tiddler payload and validates that it carries
// a title.
func ParseTiddler(payload []byte) (Tiddler, error) {
	var t Tiddler
	if err := json.Unmarshal(payload, &t); err != nil {
		return Tiddler{}, err
	}
	if t.Title == "" {
		return Tiddler{}, fmt.Errorf("tiddler payload has no title")
	}
	return t, nil
}
