package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
)

func TestShowAndSeasonStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)
	libID, err := store.UpsertLibrary(ctx, serverID, "2", "TV Shows", "show")
	require.NoError(t, err)

	year := int32(2015)
	showID, err := store.GetOrCreateShow(ctx, serverID, libID, "123", "Example Show", &year, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), showID)

	// re-discovery returns the same id and refreshes fields
	again, err := store.GetOrCreateShow(ctx, serverID, libID, "123", "Example Show (2015)", &year, nil)
	require.NoError(t, err)
	assert.Equal(t, showID, again)

	seasonID, err := store.GetOrCreateSeason(ctx, showID, 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seasonID)

	sameSeason, err := store.GetOrCreateSeason(ctx, showID, 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, seasonID, sameSeason)
}

func TestContentItemAndMediaFileStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)
	libID, err := store.UpsertLibrary(ctx, serverID, "1", "Movies", "movie")
	require.NoError(t, err)

	duration := int64(7_200_000)
	itemID, itemInserted, err := store.UpsertContentItem(ctx, model.ContentItems{
		ServerID:          int32(serverID),
		LibraryID:         int32(libID),
		ExternalRatingKey: "456",
		Kind:              "movie",
		Title:             "Example Movie",
		DurationMs:        &duration,
		IsKidsFriendly:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), itemID)
	assert.True(t, itemInserted)

	fileID, fileInserted, err := store.UpsertMediaFile(ctx, model.MediaFiles{
		ServerID:      int32(serverID),
		LibraryID:     int32(libID),
		ContentItemID: int32(itemID),
		FilePath:      "/data/movies/Example Movie/Example Movie.mkv",
		Size:          4_000_000_000,
		FirstSeenAt:   1000,
		LastSeenAt:    1000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), fileID)
	assert.True(t, fileInserted)

	_, itemUpdated, err := store.UpsertContentItem(ctx, model.ContentItems{
		ServerID:          int32(serverID),
		LibraryID:         int32(libID),
		ExternalRatingKey: "456",
		Kind:              "movie",
		Title:             "Example Movie (Director's Cut)",
		DurationMs:        &duration,
		IsKidsFriendly:    false,
	})
	require.NoError(t, err)
	assert.False(t, itemUpdated)

	_, fileUpdated, err := store.UpsertMediaFile(ctx, model.MediaFiles{
		ServerID:      int32(serverID),
		LibraryID:     int32(libID),
		ContentItemID: int32(itemID),
		FilePath:      "/data/movies/Example Movie/Example Movie.mkv",
		Size:          4_000_000_000,
		FirstSeenAt:   1000,
		LastSeenAt:    2000,
	})
	require.NoError(t, err)
	assert.False(t, fileUpdated)

	err = store.LinkContentItemFile(ctx, itemID, fileID, "primary")
	require.NoError(t, err)

	// linking the same pair again is a no-op, not an error
	err = store.LinkContentItemFile(ctx, itemID, fileID, "primary")
	require.NoError(t, err)

	err = store.UpsertEditorial(ctx, model.ContentEditorial{
		ContentItemID:     int32(itemID),
		OriginalTitle:     "Example Movie",
		SourcePayloadJSON: `{"title":"Example Movie"}`,
	})
	require.NoError(t, err)

	err = store.UpsertTag(ctx, model.ContentTags{
		ContentItemID: int32(itemID),
		Namespace:     "genre",
		Key:           "action",
		Value:         "true",
	})
	require.NoError(t, err)

	err = store.UpsertGUID(ctx, model.Guids{
		Provider:      "imdb",
		ExternalID:    "tt1234567",
		ContentItemID: func() *int32 { id := int32(itemID); return &id }(),
	})
	require.NoError(t, err)
}
