// Package ingest implements the Orchestrator: it threads ExternalClient,
// Mapper, Validator and Store together into one sync run and reports
// progress either as a final summary or as a stream of events.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ingestd/catalogsync/pkg/ingesterr"
	"github.com/ingestd/catalogsync/pkg/ingestmap"
	"github.com/ingestd/catalogsync/pkg/logger"
	"github.com/ingestd/catalogsync/pkg/mediaserver"
	"github.com/ingestd/catalogsync/pkg/pagination"
	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/validate"
)

// Mode selects whether a run considers every item (full) or only items
// touched since the library's last watermark (incremental).
type Mode string

const (
	ModeFull        Mode = "full"
	ModeIncremental Mode = "incremental"
)

// Stage enumerates every progress event the streaming variant can emit.
type Stage string

const (
	StageStart           Stage = "start"
	StageLibraryReady    Stage = "library_ready"
	StageFetching        Stage = "fetching"
	StageScanning        Stage = "scanning"
	StageProgress        Stage = "progress"
	StageBatchComplete   Stage = "batch_complete"
	StageValidationError Stage = "validation_error"
	StageError           Stage = "error"
	StageFinalBatch      Stage = "final_batch"
	StageComplete        Stage = "complete"
	StageFatalError      Stage = "fatal_error"
)

const (
	// DefaultBatchSize is how many mapped items accumulate before one commit.
	DefaultBatchSize = 50
	// DefaultProgressInterval is how often a dry run emits a progress event.
	DefaultProgressInterval = 100
	// scanningSampleSize is how many of the first items get a "scanning" event.
	scanningSampleSize = 5
	// pageSize is the ExternalClient window size used while iterating a library.
	pageSize = 100
)

// Request parameterizes one sync invocation, whether driven through Run or
// Stream.
type Request struct {
	ServerID   int64
	LibraryKey string
	Kind       string
	Mode       Mode
	Limit      int
	SinceEpoch *int64

	DryRun           bool
	BatchSize        int
	ProgressInterval int
}

// Event is one progress notification emitted by Stream.
type Event struct {
	RunID     string
	Stage     Stage
	Msg       string
	Stats     *storage.SyncStats
	ItemTitle string
	LibraryID int64
	Error     string
}

// Orchestrator drives a catalog sync end to end.
type Orchestrator struct {
	store     storage.Storage
	client    mediaserver.ExternalClient
	validator *validate.Validator
	errs      *ingesterr.Handler
	nowEpoch  func() int64
}

func defaultNowEpoch() int64 { return time.Now().Unix() }

// New builds an Orchestrator from its already-constructed dependencies.
func New(store storage.Storage, client mediaserver.ExternalClient, validator *validate.Validator, errs *ingesterr.Handler) *Orchestrator {
	return &Orchestrator{
		store:     store,
		client:    client,
		validator: validator,
		errs:      errs,
		nowEpoch:  defaultNowEpoch,
	}
}

func resolveDefaults(req Request) Request {
	if req.BatchSize <= 0 {
		req.BatchSize = DefaultBatchSize
	}
	if req.ProgressInterval <= 0 {
		req.ProgressInterval = DefaultProgressInterval
	}
	return req
}

// Run drives a sync to completion, blocking until it finishes, and returns
// the final stats. Intermediate progress events are discarded; callers that
// want them should use Stream instead.
func (o *Orchestrator) Run(ctx context.Context, req Request) (storage.SyncStats, error) {
	events, errCh := o.Stream(ctx, req)

	var stats storage.SyncStats
	for ev := range events {
		if ev.Stats != nil {
			stats = *ev.Stats
		}
	}
	return stats, <-errCh
}

// Stream runs a sync and emits progress events as it goes, for live UI
// updates. The events channel closes when the run ends; the error channel
// then yields exactly one value (nil on success).
func (o *Orchestrator) Stream(ctx context.Context, req Request) (<-chan Event, <-chan error) {
	req = resolveDefaults(req)
	events := make(chan Event, 16)
	errCh := make(chan error, 1)
	runID := uuid.NewString()

	emit := func(ev Event) {
		ev.RunID = runID
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(events)
		err := o.run(ctx, req, emit)
		if err != nil {
			emit(Event{Stage: StageFatalError, Msg: "sync run failed", Error: err.Error()})
		}
		errCh <- err
		close(errCh)
	}()

	return events, errCh
}

// run implements SPEC_FULL.md's six-step ingestion algorithm.
func (o *Orchestrator) run(ctx context.Context, req Request, emit func(Event)) error {
	log := logger.FromCtx(ctx)
	stats := storage.SyncStats{}

	emit(Event{Stage: StageStart, Msg: fmt.Sprintf("starting %s sync for library %s", req.Mode, req.LibraryKey)})

	// Step 1: resolve the library's section kind and upsert the row.
	libraries, err := o.client.GetLibraries(ctx)
	if err != nil {
		return fmt.Errorf("ingest: listing libraries: %w", err)
	}
	var remoteLib *mediaserver.Library
	for i := range libraries {
		if libraries[i].Key == req.LibraryKey {
			remoteLib = &libraries[i]
			break
		}
	}
	if remoteLib == nil {
		return fmt.Errorf("ingest: library %s not found on server %d", req.LibraryKey, req.ServerID)
	}

	libraryID, err := o.store.UpsertLibrary(ctx, req.ServerID, remoteLib.Key, remoteLib.Title, remoteLib.Type)
	if err != nil {
		return fmt.Errorf("ingest: upserting library: %w", err)
	}
	emit(Event{Stage: StageLibraryReady, Msg: fmt.Sprintf("library %q ready", remoteLib.Title), LibraryID: libraryID})

	// Step 2: resolve the effective watermark and mode.
	mode := req.Mode
	sinceEpoch := req.SinceEpoch
	if mode == ModeIncremental && sinceEpoch == nil {
		libRow, err := o.store.GetLibrary(ctx, libraryID)
		if err != nil {
			return fmt.Errorf("ingest: loading library watermark: %w", err)
		}
		if libRow.LastIncrementalSyncEpoch != nil {
			sinceEpoch = libRow.LastIncrementalSyncEpoch
		} else {
			log.Infow("no incremental watermark yet, upgrading to full sync", "library_id", libraryID)
			mode = ModeFull
			sinceEpoch = nil
		}
	}

	runStartedAt := o.nowEpoch()
	syncRunID, err := o.store.StartSyncRun(ctx, req.ServerID, libraryID, string(mode), runStartedAt)
	if err != nil {
		return fmt.Errorf("ingest: starting sync run record: %w", err)
	}

	emit(Event{Stage: StageFetching, Msg: "fetching items from remote server", LibraryID: libraryID})

	// Step 3 & 4: iterate items, map, batch, and flush.
	batch := make([]batchEntry, 0, req.BatchSize)
	scannedInBatch := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		delta, err := o.processBatch(ctx, req.ServerID, libraryID, batch, emit)
		if err != nil {
			stats.Errors += len(batch)
			emit(Event{Stage: StageError, Msg: "batch failed and was rolled back", LibraryID: libraryID, Error: err.Error()})
			batch = batch[:0]
			return nil
		}
		addStats(&stats, delta)
		emit(Event{Stage: StageBatchComplete, Msg: fmt.Sprintf("committed batch of %d item(s)", len(batch)), LibraryID: libraryID, Stats: statsPtr(stats)})
		batch = batch[:0]
		return nil
	}

	page := 1
	stop := false
	for !stop {
		params := pagination.Params{Page: page, PageSize: pageSize}
		result, err := o.client.IterItems(ctx, req.LibraryKey, req.Kind, params, sinceEpoch)
		if err != nil {
			return fmt.Errorf("ingest: fetching items page %d: %w", page, err)
		}

		for _, item := range result.Items {
			if req.Limit > 0 && stats.Scanned >= req.Limit {
				stop = true
				break
			}

			mapped := ingestmap.Map(item)
			stats.Scanned++
			stats.Mapped++

			if stats.Scanned <= scanningSampleSize {
				emit(Event{Stage: StageScanning, Msg: "scanning item", ItemTitle: mapped.Title, LibraryID: libraryID})
			}

			if req.DryRun {
				if stats.Scanned%req.ProgressInterval == 0 {
					emit(Event{Stage: StageProgress, Msg: "dry run progress", ItemTitle: mapped.Title, LibraryID: libraryID, Stats: statsPtr(stats)})
				}
				continue
			}

			batch = append(batch, batchEntry{item: item, mapped: mapped})
			scannedInBatch++
			if scannedInBatch >= req.BatchSize {
				if err := flush(); err != nil {
					return err
				}
				scannedInBatch = 0
			}
		}

		if len(result.Items) < pageSize || stop {
			break
		}
		page++
	}

	emit(Event{Stage: StageFinalBatch, Msg: "flushing final batch", LibraryID: libraryID})
	if err := flush(); err != nil {
		return err
	}

	// Step 6: persist the new watermark, only on a clean, non-dry-run run.
	finishedAt := o.nowEpoch()
	if err := o.store.FinishSyncRun(ctx, syncRunID, finishedAt, stats); err != nil {
		log.Errorw("failed to record sync run completion", "error", err)
	}

	if !req.DryRun && stats.Errors == 0 {
		switch mode {
		case ModeFull:
			if err := o.store.SetLibraryLastFull(ctx, libraryID, finishedAt); err != nil {
				return fmt.Errorf("ingest: persisting full-sync watermark: %w", err)
			}
		case ModeIncremental:
			if err := o.store.SetLibraryLastIncremental(ctx, libraryID, finishedAt); err != nil {
				return fmt.Errorf("ingest: persisting incremental-sync watermark: %w", err)
			}
		}
	}

	emit(Event{Stage: StageComplete, Msg: "sync complete", LibraryID: libraryID, Stats: statsPtr(stats)})
	return nil
}

// batchEntry pairs a raw remote item with its mapped form so batch
// processing can still reach show/season/episode identifiers that the
// Mapper's pure output doesn't carry (grandparent/parent rating keys).
type batchEntry struct {
	item   ingestmap.RemoteItem
	mapped ingestmap.MappedItem
}

func addStats(dst *storage.SyncStats, delta storage.SyncStats) {
	dst.InsertedItems += delta.InsertedItems
	dst.UpdatedItems += delta.UpdatedItems
	dst.InsertedFiles += delta.InsertedFiles
	dst.UpdatedFiles += delta.UpdatedFiles
	dst.Linked += delta.Linked
	dst.Skipped += delta.Skipped
	dst.Errors += delta.Errors
}

func statsPtr(s storage.SyncStats) *storage.SyncStats {
	cp := s
	return &cp
}
