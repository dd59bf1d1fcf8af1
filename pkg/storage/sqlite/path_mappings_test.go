package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathMappingStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)
	libID, err := store.UpsertLibrary(ctx, serverID, "1", "Movies", "movie")
	require.NoError(t, err)

	id, err := store.InsertPathMapping(ctx, serverID, libID, "/data/movies", "/mnt/media/movies")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	nestedID, err := store.InsertPathMapping(ctx, serverID, libID, "/data/movies/anime", "/mnt/media/anime")
	require.NoError(t, err)
	assert.Equal(t, int64(2), nestedID)

	mappings, err := store.GetPathMappings(ctx, serverID, libID)
	require.NoError(t, err)
	require.Len(t, mappings, 2)
	// longest plex_path (most specific) sorts first
	assert.Equal(t, "/data/movies/anime", mappings[0].PlexPath)

	ok, err := store.DeletePathMapping(ctx, nestedID)
	require.NoError(t, err)
	assert.True(t, ok)

	mappings, err = store.GetPathMappings(ctx, serverID, libID)
	require.NoError(t, err)
	assert.Len(t, mappings, 1)

	ok, err = store.DeletePathMapping(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
