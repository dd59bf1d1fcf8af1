package sqlite

import (
	"context"
	"testing"

	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	servers, err := store.ListServers(ctx)
	require.NoError(t, err)
	assert.Empty(t, servers)

	id, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "secret-token")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	server, err := store.GetServer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "plex-main", server.Name)
	assert.Equal(t, "http://localhost:32400", server.BaseURL)
	assert.False(t, server.IsDefault)

	byName, err := store.GetServerByName(ctx, "plex-main")
	require.NoError(t, err)
	assert.Equal(t, server.ID, byName.ID)

	_, err = store.GetServer(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.SetDefaultServer(ctx, id)
	require.NoError(t, err)

	server, err = store.GetServer(ctx, id)
	require.NoError(t, err)
	assert.True(t, server.IsDefault)

	// re-adding the same name updates base_url/token rather than duplicating
	again, err := store.AddServer(ctx, "plex-main", "http://localhost:9999", "new-token")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	updated, err := store.GetServer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", updated.BaseURL)

	err = store.DeleteServer(ctx, id)
	require.NoError(t, err)

	servers, err = store.ListServers(ctx)
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestAddServer_Validation(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	_, err := store.AddServer(ctx, "", "http://localhost:32400", "token")
	assert.ErrorIs(t, err, storage.ErrValidation)

	_, err = store.AddServer(ctx, "bad-url-server", "not-a-url", "token")
	assert.ErrorIs(t, err, storage.ErrValidation)
}
