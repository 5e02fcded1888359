// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListModifiedSinceQuery_WithCursor(t *testing.T) {
	query, args, err := buildListModifiedSinceQuery("20260106120000000")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	assert.Equal(t, "$:/%", args[0])
	assert.Equal(t, "20260106120000000", args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select title")
	require.Contains(t, q, "from tiddlers")
	require.Contains(t, q, "not like")
	require.Contains(t, q, "modified >")

	// placeholder format should be ? (sqlite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildListModifiedSinceQuery_EmptyCursorMatchesEverything(t *testing.T) {
	query, args, err := buildListModifiedSinceQuery("")
	require.NoError(t, err)

	// без курсора — только исключение системных тиддлеров
	require.Len(t, args, 1)
	assert.Equal(t, "$:/%", args[0])
	assert.NotContains(t, strings.ToLower(query), "modified")
}

func Test_buildListTitlesQuery(t *testing.T) {
	query, args, err := buildListTitlesQuery()
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "$:/%", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select title")
	require.Contains(t, q, "from tiddlers")
	require.Contains(t, q, "not like")
	require.Contains(t, q, "order by title")
}
