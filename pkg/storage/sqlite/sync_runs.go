package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// StartSyncRun records the start of an ingest run and returns its id.
func (s *SQLite) StartSyncRun(ctx context.Context, serverID, libraryID int64, mode string, startedAtEpoch int64) (int64, error) {
	row := model.SyncRuns{
		ServerID:       int32(serverID),
		LibraryID:      int32(libraryID),
		Mode:           mode,
		StartedAtEpoch: startedAtEpoch,
	}

	stmt := table.SyncRuns.
		INSERT(table.SyncRuns.ServerID, table.SyncRuns.LibraryID, table.SyncRuns.Mode, table.SyncRuns.StartedAtEpoch).
		MODEL(row).
		RETURNING(table.SyncRuns.ID)

	var inserted model.SyncRuns
	if err := stmt.QueryContext(ctx, s.db, &inserted); err != nil {
		return 0, fmt.Errorf("failed to start sync run: %w", err)
	}

	return int64(inserted.ID), nil
}

// FinishSyncRun records the final counters and completion time of a run.
func (s *SQLite) FinishSyncRun(ctx context.Context, id int64, finishedAtEpoch int64, stats storage.SyncStats) error {
	stmt := table.SyncRuns.
		UPDATE(
			table.SyncRuns.FinishedAtEpoch,
			table.SyncRuns.Scanned,
			table.SyncRuns.Mapped,
			table.SyncRuns.InsertedItems,
			table.SyncRuns.UpdatedItems,
			table.SyncRuns.InsertedFiles,
			table.SyncRuns.UpdatedFiles,
			table.SyncRuns.Linked,
			table.SyncRuns.Skipped,
			table.SyncRuns.Errors,
		).
		SET(
			finishedAtEpoch,
			int32(stats.Scanned),
			int32(stats.Mapped),
			int32(stats.InsertedItems),
			int32(stats.UpdatedItems),
			int32(stats.InsertedFiles),
			int32(stats.UpdatedFiles),
			int32(stats.Linked),
			int32(stats.Skipped),
			int32(stats.Errors),
		).
		WHERE(table.SyncRuns.ID.EQ(sqlite.Int64(id)))

	if _, err := s.handleUpdate(ctx, stmt); err != nil {
		return fmt.Errorf("failed to finish sync run: %w", err)
	}

	return nil
}

// ListSyncRuns lists the most recent sync runs for a library, newest first.
func (s *SQLite) ListSyncRuns(ctx context.Context, libraryID int64, limit int) ([]*model.SyncRuns, error) {
	runs := make([]*model.SyncRuns, 0)

	stmt := table.SyncRuns.
		SELECT(table.SyncRuns.AllColumns).
		FROM(table.SyncRuns).
		WHERE(table.SyncRuns.LibraryID.EQ(sqlite.Int64(libraryID))).
		ORDER_BY(table.SyncRuns.StartedAtEpoch.DESC()).
		LIMIT(int64(limit))

	if err := stmt.QueryContext(ctx, s.db, &runs); err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	return runs, nil
}
