package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingestd/catalogsync/pkg/storage"
)

func TestSyncRunStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)
	libID, err := store.UpsertLibrary(ctx, serverID, "1", "Movies", "movie")
	require.NoError(t, err)

	runID, err := store.StartSyncRun(ctx, serverID, libID, "full", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	err = store.FinishSyncRun(ctx, runID, 2000, storage.SyncStats{
		Scanned:       10,
		Mapped:        10,
		InsertedItems: 8,
		UpdatedItems:  2,
		InsertedFiles: 8,
		Linked:        8,
	})
	require.NoError(t, err)

	runs, err := store.ListSyncRuns(ctx, libID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int32(10), runs[0].Scanned)
	assert.Equal(t, int32(8), runs[0].InsertedItems)
	require.NotNil(t, runs[0].FinishedAtEpoch)
	assert.Equal(t, int64(2000), *runs[0].FinishedAtEpoch)
}

func TestSystemConfigStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	_, ok, err := store.GetSystemConfig(ctx, "schema_baseline")
	require.NoError(t, err)
	assert.False(t, ok)

	err = store.SetSystemConfig(ctx, "schema_baseline", "1")
	require.NoError(t, err)

	value, ok, err := store.GetSystemConfig(ctx, "schema_baseline")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	err = store.SetSystemConfig(ctx, "schema_baseline", "2")
	require.NoError(t, err)

	value, ok, err = store.GetSystemConfig(ctx, "schema_baseline")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}
