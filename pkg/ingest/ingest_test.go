package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingestd/catalogsync/pkg/ingesterr"
	"github.com/ingestd/catalogsync/pkg/ingestmap"
	ingestio "github.com/ingestd/catalogsync/pkg/io"
	"github.com/ingestd/catalogsync/pkg/mediaserver"
	"github.com/ingestd/catalogsync/pkg/pagination"
	"github.com/ingestd/catalogsync/pkg/pathmap"
	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite"
	"github.com/ingestd/catalogsync/pkg/validate"
)

// fakeClient is a scripted ExternalClient: one page of items, no pagination.
type fakeClient struct {
	libraries []mediaserver.Library
	items     []ingestmap.RemoteItem
}

func (f *fakeClient) GetLibraries(ctx context.Context) ([]mediaserver.Library, error) {
	return f.libraries, nil
}

func (f *fakeClient) IterItems(ctx context.Context, libraryKey, kind string, page pagination.Params, sinceEpoch *int64) (mediaserver.ItemsPage, error) {
	if page.Page > 1 {
		return mediaserver.ItemsPage{Items: nil, Meta: page.BuildMeta(len(f.items))}, nil
	}
	return mediaserver.ItemsPage{Items: f.items, Meta: page.BuildMeta(len(f.items))}, nil
}

func (f *fakeClient) GetItemDetails(ctx context.Context, ratingKey string) (ingestmap.RemoteItem, error) {
	return ingestmap.RemoteItem{}, nil
}

func (f *fakeClient) GetShowChildren(ctx context.Context, showKey string) ([]ingestmap.RemoteItem, error) {
	return nil, nil
}

func (f *fakeClient) GetSeasonChildren(ctx context.Context, seasonKey string) ([]ingestmap.RemoteItem, error) {
	return nil, nil
}

func (f *fakeClient) TestConnection(ctx context.Context) bool { return true }

type fakeProber struct{}

func (fakeProber) Probe(ctx context.Context, path string) (validate.ProbeResult, error) {
	return validate.ProbeResult{DurationMs: 5_400_000, VideoCodec: "h264", AudioCodec: "aac", Width: 1920, Height: 1080}, nil
}

func newTestOrchestrator(t *testing.T, items []ingestmap.RemoteItem) (*Orchestrator, storage.Storage, int64) {
	t.Helper()
	return newTestOrchestratorWithFiles(t, items, true)
}

func newTestOrchestratorWithFiles(t *testing.T, items []ingestmap.RemoteItem, createFiles bool) (*Orchestrator, storage.Storage, int64) {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)

	serverID, err := store.AddServer(ctx, "plex-main", "http://localhost:32400", "token")
	require.NoError(t, err)

	dir := t.TempDir()
	mapper := pathmap.New(store, false)
	_, err = mapper.InsertMapping(ctx, serverID, 1, "/mnt/media/movies", dir)
	require.NoError(t, err)
	// library row does not exist yet at mapping-insert time; pathmap caches by
	// (server, library) so re-insert is not needed once UpsertLibrary runs,
	// since Resolve reads through to the Store's mappings table directly.

	if createFiles {
		for _, item := range items {
			for _, media := range item.Media {
				for _, part := range media.Part {
					if part.File == "" {
						continue
					}
					require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.Base(part.File)), []byte("data"), 0o644))
				}
			}
		}
	}

	validator := validate.New(mapper, &ingestio.MediaFileSystem{}, "ffprobe", 0, validate.WithProber(fakeProber{}))

	client := &fakeClient{
		libraries: []mediaserver.Library{{Key: "1", Title: "Movies", Type: "movie"}},
		items:     items,
	}

	errs := ingesterr.New()
	return New(store, client, validator, errs), store, serverID
}

func movieItem(ratingKey, title, file string) ingestmap.RemoteItem {
	return ingestmap.RemoteItem{
		RatingKey:     ratingKey,
		Type:          "movie",
		Title:         title,
		ContentRating: "PG-13",
		Media: []ingestmap.RemoteMedia{{
			VideoCodec: "h264",
			AudioCodec: "aac",
			Part:       []ingestmap.RemotePart{{File: "/mnt/media/movies/" + file}},
		}},
	}
}

func TestRun_FullSyncInsertsItemsAndFiles(t *testing.T) {
	items := []ingestmap.RemoteItem{
		movieItem("1001", "Alien", "Alien.mkv"),
		movieItem("1002", "Aliens", "Aliens.mkv"),
	}
	orch, store, _ := newTestOrchestrator(t, items)

	stats, err := orch.Run(context.Background(), Request{
		ServerID:   1,
		LibraryKey: "1",
		Kind:       "movie",
		Mode:       ModeFull,
		BatchSize:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Scanned)
	assert.Equal(t, 2, stats.Mapped)
	assert.Equal(t, 2, stats.InsertedItems)
	assert.Equal(t, 2, stats.InsertedFiles)
	assert.Equal(t, 2, stats.Linked)
	assert.Equal(t, 0, stats.Errors)

	lib, err := store.GetLibrary(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, lib.LastFullSyncEpoch)
}

func TestRun_DryRunWritesNoItemsOrWatermark(t *testing.T) {
	items := []ingestmap.RemoteItem{movieItem("1001", "Alien", "Alien.mkv")}
	orch, store, _ := newTestOrchestrator(t, items)

	stats, err := orch.Run(context.Background(), Request{
		ServerID:   1,
		LibraryKey: "1",
		Kind:       "movie",
		Mode:       ModeFull,
		DryRun:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scanned)
	assert.Equal(t, 0, stats.InsertedItems)

	libraries, err := store.ListLibraries(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, libraries, 1)
	assert.Nil(t, libraries[0].LastFullSyncEpoch)
}

func TestRun_InvalidFileCountsAsErrorAndSkip(t *testing.T) {
	items := []ingestmap.RemoteItem{movieItem("1001", "Missing File", "DoesNotExist.mkv")}
	orch, _, _ := newTestOrchestratorWithFiles(t, items, false) // never write the backing file

	stats, err := orch.Run(context.Background(), Request{
		ServerID:   1,
		LibraryKey: "1",
		Kind:       "movie",
		Mode:       ModeFull,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scanned)
	assert.Equal(t, 1, stats.InsertedItems)
	assert.Equal(t, 0, stats.InsertedFiles)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 1, stats.Skipped)
}

func TestStream_EmitsLifecycleStages(t *testing.T) {
	items := []ingestmap.RemoteItem{movieItem("1001", "Alien", "Alien.mkv")}
	orch, _, _ := newTestOrchestrator(t, items)

	events, errCh := orch.Stream(context.Background(), Request{
		ServerID:   1,
		LibraryKey: "1",
		Kind:       "movie",
		Mode:       ModeFull,
	})

	var stages []Stage
	for ev := range events {
		stages = append(stages, ev.Stage)
	}
	require.NoError(t, <-errCh)

	assert.Contains(t, stages, StageStart)
	assert.Contains(t, stages, StageLibraryReady)
	assert.Contains(t, stages, StageComplete)
}

func TestRun_IncrementalWithoutWatermarkUpgradesToFull(t *testing.T) {
	items := []ingestmap.RemoteItem{movieItem("1001", "Alien", "Alien.mkv")}
	orch, store, _ := newTestOrchestrator(t, items)

	_, err := orch.Run(context.Background(), Request{
		ServerID:   1,
		LibraryKey: "1",
		Kind:       "movie",
		Mode:       ModeIncremental,
	})
	require.NoError(t, err)

	lib, err := store.GetLibrary(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, lib.LastFullSyncEpoch)
	assert.Nil(t, lib.LastIncrementalSyncEpoch)
}
