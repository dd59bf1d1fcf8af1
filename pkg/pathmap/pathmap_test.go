package pathmap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite"
)

func newTestMapper(t *testing.T, caseInsensitive bool) (*PathMapper, int64, int64) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)
	libraryID, err := store.UpsertLibrary(ctx, serverID, "1", "Movies", "movie")
	require.NoError(t, err)

	return New(store, caseInsensitive), serverID, libraryID
}

func TestResolve_SinglePrefix(t *testing.T) {
	ctx := context.Background()
	mapper, serverID, libraryID := newTestMapper(t, false)

	_, err := mapper.InsertMapping(ctx, serverID, libraryID, "/mnt/media/movies", "D:/Movies")
	require.NoError(t, err)

	got, err := mapper.Resolve(ctx, serverID, libraryID, "/mnt/media/movies/Alien (1979)/Alien.mkv")
	require.NoError(t, err)
	assert.Equal(t, "D:/Movies/Alien (1979)/Alien.mkv", got)
}

func TestResolve_LongestPrefixWins(t *testing.T) {
	ctx := context.Background()
	mapper, serverID, libraryID := newTestMapper(t, false)

	_, err := mapper.InsertMapping(ctx, serverID, libraryID, "/mnt/media", "D:/Media")
	require.NoError(t, err)
	_, err = mapper.InsertMapping(ctx, serverID, libraryID, "/mnt/media/movies", "D:/Movies")
	require.NoError(t, err)

	got, err := mapper.Resolve(ctx, serverID, libraryID, "/mnt/media/movies/a.mkv")
	require.NoError(t, err)
	assert.Equal(t, "D:/Movies/a.mkv", got)
}

func TestResolve_NoMatch(t *testing.T) {
	ctx := context.Background()
	mapper, serverID, libraryID := newTestMapper(t, false)

	_, err := mapper.InsertMapping(ctx, serverID, libraryID, "/mnt/media/movies", "D:/Movies")
	require.NoError(t, err)

	_, err = mapper.Resolve(ctx, serverID, libraryID, "/mnt/other/file.mkv")
	assert.ErrorIs(t, err, ErrNoMapping)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	mapper, serverID, libraryID := newTestMapper(t, true)

	_, err := mapper.InsertMapping(ctx, serverID, libraryID, "/mnt/Media/Movies", "D:/Movies")
	require.NoError(t, err)

	got, err := mapper.Resolve(ctx, serverID, libraryID, "/mnt/media/movies/a.mkv")
	require.NoError(t, err)
	assert.Equal(t, "D:/Movies/a.mkv", got)
}

func TestInvalidate_ForcesReload(t *testing.T) {
	ctx := context.Background()
	mapper, serverID, libraryID := newTestMapper(t, false)

	_, err := mapper.Resolve(ctx, serverID, libraryID, "/mnt/media/movies/a.mkv")
	assert.ErrorIs(t, err, ErrNoMapping)

	id, err := mapper.InsertMapping(ctx, serverID, libraryID, "/mnt/media/movies", "D:/Movies")
	require.NoError(t, err)

	got, err := mapper.Resolve(ctx, serverID, libraryID, "/mnt/media/movies/a.mkv")
	require.NoError(t, err)
	assert.Equal(t, "D:/Movies/a.mkv", got)

	ok, err := mapper.DeleteMapping(ctx, serverID, libraryID, id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = mapper.Resolve(ctx, serverID, libraryID, "/mnt/media/movies/a.mkv")
	assert.ErrorIs(t, err, ErrNoMapping)
}
