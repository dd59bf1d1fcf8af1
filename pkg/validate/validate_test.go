package validate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ingestio "github.com/ingestd/catalogsync/pkg/io"
	"github.com/ingestd/catalogsync/pkg/pathmap"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite"
)

type fakeProber struct {
	result ProbeResult
	err    error
}

func (f *fakeProber) Probe(ctx context.Context, path string) (ProbeResult, error) {
	return f.result, f.err
}

func newTestSetup(t *testing.T) (*pathmap.PathMapper, int64, int64, string) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)
	libraryID, err := store.UpsertLibrary(ctx, serverID, "1", "Movies", "movie")
	require.NoError(t, err)

	dir := t.TempDir()
	mapper := pathmap.New(store, false)
	_, err = mapper.InsertMapping(ctx, serverID, libraryID, "/mnt/media/movies", dir)
	require.NoError(t, err)

	return mapper, serverID, libraryID, dir
}

func TestValidateOne_Success(t *testing.T) {
	mapper, serverID, libraryID, dir := newTestSetup(t)
	localFile := filepath.Join(dir, "Alien.mkv")
	require.NoError(t, os.WriteFile(localFile, []byte("fake-movie-bytes"), 0o644))

	v := New(mapper, &ingestio.MediaFileSystem{}, "ffprobe", 0, WithProber(&fakeProber{
		result: ProbeResult{DurationMs: 5_400_000, VideoCodec: "h264", AudioCodec: "aac", Width: 1920, Height: 1080},
	}))

	result := v.ValidateOne(context.Background(), Input{ServerID: serverID, LibraryID: libraryID, RemotePath: "/mnt/media/movies/Alien.mkv"})
	assert.True(t, result.Valid)
	assert.Equal(t, localFile, result.LocalPath)
	assert.Equal(t, int64(5_400_000), result.DurationMs)
}

func TestValidateOne_PathMappingFailed(t *testing.T) {
	mapper, serverID, libraryID, _ := newTestSetup(t)
	v := New(mapper, &ingestio.MediaFileSystem{}, "ffprobe", 0, WithProber(&fakeProber{}))

	result := v.ValidateOne(context.Background(), Input{ServerID: serverID, LibraryID: libraryID, RemotePath: "/unmapped/movie.mkv"})
	assert.False(t, result.Valid)
	assert.Equal(t, FailurePathMapping, result.Kind)
}

func TestValidateOne_FileNotFound(t *testing.T) {
	mapper, serverID, libraryID, _ := newTestSetup(t)
	v := New(mapper, &ingestio.MediaFileSystem{}, "ffprobe", 0, WithProber(&fakeProber{}))

	result := v.ValidateOne(context.Background(), Input{ServerID: serverID, LibraryID: libraryID, RemotePath: "/mnt/media/movies/missing.mkv"})
	assert.False(t, result.Valid)
	assert.Equal(t, FailureFileNotFound, result.Kind)
}

func TestValidateOne_InvalidCodec(t *testing.T) {
	mapper, serverID, libraryID, dir := newTestSetup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mkv"), []byte("data"), 0o644))

	v := New(mapper, &ingestio.MediaFileSystem{}, "ffprobe", 0, WithProber(&fakeProber{
		result: ProbeResult{DurationMs: 1000, VideoCodec: "wmv3"},
	}))

	result := v.ValidateOne(context.Background(), Input{ServerID: serverID, LibraryID: libraryID, RemotePath: "/mnt/media/movies/a.mkv"})
	assert.False(t, result.Valid)
	assert.Equal(t, FailureInvalidCodec, result.Kind)
}

func TestValidateOne_InvalidDuration(t *testing.T) {
	mapper, serverID, libraryID, dir := newTestSetup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mkv"), []byte("data"), 0o644))

	v := New(mapper, &ingestio.MediaFileSystem{}, "ffprobe", 0, WithProber(&fakeProber{
		result: ProbeResult{DurationMs: 0, VideoCodec: "h264", AudioCodec: "aac"},
	}))

	result := v.ValidateOne(context.Background(), Input{ServerID: serverID, LibraryID: libraryID, RemotePath: "/mnt/media/movies/a.mkv"})
	assert.False(t, result.Valid)
	assert.Equal(t, FailureInvalidMetadata, result.Kind)
}

func TestValidateBatch_PreservesOrderAndBoundsConcurrency(t *testing.T) {
	mapper, serverID, libraryID, dir := newTestSetup(t)
	names := []string{"a.mkv", "b.mkv", "c.mkv"}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("data"), 0o644))
	}

	v := New(mapper, &ingestio.MediaFileSystem{}, "ffprobe", 0,
		WithMaxConcurrency(2),
		WithProber(&fakeProber{result: ProbeResult{DurationMs: 1000, VideoCodec: "h264", AudioCodec: "aac"}}),
	)

	inputs := make([]Input, len(names))
	for i, n := range names {
		inputs[i] = Input{ServerID: serverID, LibraryID: libraryID, RemotePath: "/mnt/media/movies/" + n}
	}

	results, err := v.ValidateBatch(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.True(t, r.Valid, names[i])
		assert.Equal(t, filepath.Join(dir, names[i]), r.LocalPath)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Valid: true},
		{Valid: false, Kind: FailureFileNotFound},
		{Valid: false, Kind: FailureFileNotFound},
		{Valid: false, Kind: FailureInvalidCodec},
	}
	summary := Summarize(results)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 2, summary.Counts[FailureFileNotFound])
	assert.Equal(t, 1, summary.Counts[FailureInvalidCodec])
}
