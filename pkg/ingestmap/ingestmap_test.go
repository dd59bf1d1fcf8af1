package ingestmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32p(v int32) *int32 { return &v }
func int64p(v int64) *int64 { return &v }

func TestInferKind(t *testing.T) {
	assert.Equal(t, KindMovie, InferKind(RemoteItem{Type: "movie"}))
	assert.Equal(t, KindEpisode, InferKind(RemoteItem{Type: "episode"}))
	assert.Equal(t, KindShow, InferKind(RemoteItem{Type: "show"}))
	assert.Equal(t, KindSeason, InferKind(RemoteItem{Type: "season"}))

	assert.Equal(t, KindEpisode, InferKind(RemoteItem{ParentRatingKey: "100", Index: int32p(5)}))
	assert.Equal(t, KindMovie, InferKind(RemoteItem{Title: "Alien"}))
}

func TestParseGuids(t *testing.T) {
	guids := ParseGuids([]RemoteGuid{
		{ID: "imdb://tt0078748"},
		{ID: "tmdb://348"},
		{ID: "tvdb://121361"},
		{ID: "plex://movie/5d776825"},
		{ID: "bogus"},
		{ID: "tmdb://duplicate-should-be-ignored"},
	})

	require.Len(t, guids, 4)
	byProvider := map[string]string{}
	for _, g := range guids {
		byProvider[g.Provider] = g.ExternalID
	}
	assert.Equal(t, "tt0078748", byProvider["imdb"])
	assert.Equal(t, "348", byProvider["tmdb"])
	assert.Equal(t, "121361", byProvider["tvdb"])
	assert.Equal(t, "movie/5d776825", byProvider["plex"])
}

func TestPrimaryGuid_PreferencesTVDBOverOthers(t *testing.T) {
	guids := []Guid{
		{Provider: "plex", ExternalID: "movie/abc"},
		{Provider: "imdb", ExternalID: "tt123"},
		{Provider: "tmdb", ExternalID: "456"},
		{Provider: "tvdb", ExternalID: "789"},
	}
	primary := PrimaryGuid(guids)
	require.NotNil(t, primary)
	assert.Equal(t, "tvdb", primary.Provider)
}

func TestPrimaryGuid_FallsBackToNative(t *testing.T) {
	guids := []Guid{{Provider: "plex", ExternalID: "movie/abc"}}
	primary := PrimaryGuid(guids)
	require.NotNil(t, primary)
	assert.Equal(t, "plex", primary.Provider)
}

func TestPrimaryGuid_Empty(t *testing.T) {
	assert.Nil(t, PrimaryGuid(nil))
}

func TestNormalizeRating(t *testing.T) {
	cases := []struct {
		in   string
		want Rating
	}{
		{"TV-PG", Rating{System: "TV", Code: "TV-PG"}},
		{"TV-14", Rating{System: "TV", Code: "TV-14"}},
		{"PG-13", Rating{System: "MPAA", Code: "PG-13"}},
		{"R", Rating{System: "MPAA", Code: "R"}},
		{"Not Rated", Rating{System: "MPAA", Code: "NR"}},
		{"Unrated", Rating{System: "MPAA", Code: "NR"}},
	}
	for _, c := range cases {
		got := NormalizeRating(c.in)
		require.NotNil(t, got, c.in)
		assert.Equal(t, c.want, *got, c.in)
	}
	assert.Nil(t, NormalizeRating(""))
}

func TestIsKidsFriendly(t *testing.T) {
	assert.True(t, isKidsFriendly("G"))
	assert.True(t, isKidsFriendly("TV-Y7"))
	assert.False(t, isKidsFriendly("PG-13"))
	assert.False(t, isKidsFriendly("TV-MA"))
}

func TestExtractFiles_DropsMissingFilePath(t *testing.T) {
	item := RemoteItem{
		Media: []RemoteMedia{
			{
				Container:  "mkv",
				VideoCodec: "h264",
				Part: []RemotePart{
					{File: "", Size: int64p(100)},
					{File: "/mnt/media/movies/a.mkv", Size: int64p(12345)},
				},
			},
		},
	}
	files := extractFiles(item, int64p(1000))
	require.Len(t, files, 1)
	assert.Equal(t, "/mnt/media/movies/a.mkv", files[0].FilePath)
	assert.Equal(t, int64(12345), files[0].Size)
	require.NotNil(t, files[0].Container)
	assert.Equal(t, "mkv", *files[0].Container)
}

func TestMap_EpisodeScenario(t *testing.T) {
	item := RemoteItem{
		Type:             "episode",
		ParentRatingKey:  "2000",
		GrandparentTitle: "Firefly",
		Title:            "Out of Gas",
		Index:            int32p(5),
		ParentIndex:      int32p(2),
		Duration:         int64p(2520000),
		ContentRating:    "TV-14",
		Media: []RemoteMedia{
			{Part: []RemotePart{{File: "/mnt/media/tv/Firefly/S02E05.mkv", Size: int64p(999)}}},
		},
	}

	mapped := Map(item)

	assert.Equal(t, KindEpisode, mapped.Kind)
	require.NotNil(t, mapped.SeasonNumber)
	assert.Equal(t, int32(2), *mapped.SeasonNumber)
	require.NotNil(t, mapped.EpisodeNumber)
	assert.Equal(t, int32(5), *mapped.EpisodeNumber)
	require.NotNil(t, mapped.Rating)
	assert.Equal(t, Rating{System: "TV", Code: "TV-14"}, *mapped.Rating)
	assert.False(t, mapped.IsKidsFriendly)
	require.Len(t, mapped.Files, 1)
	assert.Equal(t, "/mnt/media/tv/Firefly/S02E05.mkv", mapped.Files[0].FilePath)

	var hasRatingSystem, hasRatingCode bool
	for _, tag := range mapped.Tags {
		if tag.Namespace == "rating" && tag.Key == "system" {
			hasRatingSystem = true
			assert.Equal(t, "TV", tag.Value)
		}
		if tag.Namespace == "rating" && tag.Key == "code" {
			hasRatingCode = true
			assert.Equal(t, "TV-14", tag.Value)
		}
	}
	assert.True(t, hasRatingSystem)
	assert.True(t, hasRatingCode)
}

func TestMap_TimestampFallsBackToAddedAt(t *testing.T) {
	item := RemoteItem{Title: "x", AddedAt: int64p(555)}
	mapped := Map(item)
	require.NotNil(t, mapped.MetadataUpdatedAt)
	assert.Equal(t, int64(555), *mapped.MetadataUpdatedAt)
}

func TestMap_NoTimestamp(t *testing.T) {
	mapped := Map(RemoteItem{Title: "x"})
	assert.Nil(t, mapped.MetadataUpdatedAt)
}

func TestCanonicalGenre_FuzzyMatchesNearSpellings(t *testing.T) {
	assert.Equal(t, "Comedy", canonicalGenre("comedy"))
	assert.Equal(t, "Drama", canonicalGenre("Dramaa"))
}

func TestCanonicalGenre_FallsBackToTitleCaseWhenUnrecognized(t *testing.T) {
	assert.Equal(t, "Telenovela", canonicalGenre("telenovela"))
}
