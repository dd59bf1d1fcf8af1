package sqlite

import (
	"context"
	"testing"

	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSqlite(t *testing.T) storage.Storage {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	return store
}

func TestInit(t *testing.T) {
	store := initSqlite(t)
	assert.NotNil(t, store)
}

func TestMigrationVersion(t *testing.T) {
	store, err := New(":memory:")
	require.NoError(t, err)

	sq, ok := store.(*SQLite)
	require.True(t, ok)

	version, dirty, err := sq.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	err := store.WithTx(ctx, func(ctx context.Context, tx storage.Storage) error {
		_, err := tx.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
		return err
	})
	require.NoError(t, err)

	servers, err := store.ListServers(ctx)
	require.NoError(t, err)
	assert.Len(t, servers, 1)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	err := store.WithTx(ctx, func(ctx context.Context, tx storage.Storage) error {
		if _, err := tx.AddServer(ctx, "plex-main", "http://localhost:32400", "token"); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	servers, err := store.ListServers(ctx)
	require.NoError(t, err)
	assert.Empty(t, servers)
}
