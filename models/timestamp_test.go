package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTWTimestamp(t *testing.T) {
	ts := time.Date(2026, 1, 6, 22, 54, 28, 206*int(time.Millisecond), time.UTC)
	assert.Equal(t, "20260106225428206", TWTimestamp(ts))
}

func TestTWTimestamp_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2026, 1, 7, 1, 54, 28, 0, loc)

	assert.Equal(t, "20260106225428000", TWTimestamp(ts))
}

func TestNormalizeCursor(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
		want   string
	}{
		{name: "пустой курсор", cursor: "", want: ""},
		{name: "ISO-8601", cursor: "2026-01-06T22:54:28.206Z", want: "20260106225428206"},
		{name: "already normalized", cursor: "20260106225428206", want: "20260106225428206"},
		{name: "unparseable passes through", cursor: "yesterday-ish", want: "yesterday-ish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCursor(tt.cursor))
		})
	}
}

func TestNewerThan(t *testing.T) {
	assert.True(t, NewerThan("20260106225428206", "20260106225428205"))
	assert.False(t, NewerThan("20260106225428205", "20260106225428206"))
	assert.False(t, NewerThan("20260106225428206", "20260106225428206"))

	// пустой timestamp старше любого
	assert.True(t, NewerThan("20260106225428206", ""))
	assert.False(t, NewerThan("", "20260106225428206"))
	assert.False(t, NewerThan("", ""))
}
