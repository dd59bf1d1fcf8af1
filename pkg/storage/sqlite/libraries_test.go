package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)

	libID, err := store.UpsertLibrary(ctx, serverID, "1", "Movies", "movie")
	require.NoError(t, err)
	assert.Equal(t, int64(1), libID)

	lib, err := store.GetLibrary(ctx, libID)
	require.NoError(t, err)
	assert.Equal(t, "Movies", lib.Title)
	assert.Equal(t, "movie", lib.Kind)
	assert.True(t, lib.SyncEnabled)

	_, err = store.SetLibrarySyncEnabled(ctx, libID, false)
	require.NoError(t, err)

	lib, err = store.GetLibrary(ctx, libID)
	require.NoError(t, err)
	assert.False(t, lib.SyncEnabled)

	// re-discovery preserves sync_enabled=false instead of resetting it
	again, err := store.UpsertLibrary(ctx, serverID, "1", "Movies (renamed)", "movie")
	require.NoError(t, err)
	assert.Equal(t, libID, again)

	lib, err = store.GetLibrary(ctx, libID)
	require.NoError(t, err)
	assert.Equal(t, "Movies (renamed)", lib.Title)
	assert.False(t, lib.SyncEnabled)

	err = store.SetLibraryLastFull(ctx, libID, 1000)
	require.NoError(t, err)
	err = store.SetLibraryLastIncremental(ctx, libID, 2000)
	require.NoError(t, err)

	lib, err = store.GetLibrary(ctx, libID)
	require.NoError(t, err)
	require.NotNil(t, lib.LastFullSyncEpoch)
	require.NotNil(t, lib.LastIncrementalSyncEpoch)
	assert.Equal(t, int64(1000), *lib.LastFullSyncEpoch)
	assert.Equal(t, int64(2000), *lib.LastIncrementalSyncEpoch)

	otherServerID, err := store.AddServer(ctx, "plex-remote", "http://remote:32400", "token2")
	require.NoError(t, err)
	_, err = store.UpsertLibrary(ctx, otherServerID, "1", "TV Shows", "show")
	require.NoError(t, err)

	all, err := store.ListLibraries(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := store.ListLibraries(ctx, &serverID)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)
	assert.Equal(t, "Movies (renamed)", scoped[0].Title)
}
