package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// UpsertLibrary creates or refreshes a library row, preserving the
// existing sync_enabled flag across re-discovery.
func (s *SQLite) UpsertLibrary(ctx context.Context, serverID int64, externalKey, title, kind string) (int64, error) {
	row := model.Libraries{
		ServerID:    int32(serverID),
		ExternalKey: externalKey,
		Title:       title,
		Kind:        kind,
		SyncEnabled: true,
	}

	stmt := table.Libraries.
		INSERT(table.Libraries.ServerID, table.Libraries.ExternalKey, table.Libraries.Title, table.Libraries.Kind, table.Libraries.SyncEnabled).
		MODEL(row).
		ON_CONFLICT(table.Libraries.ServerID, table.Libraries.ExternalKey).
		DO_UPDATE(sqlite.SET(
			table.Libraries.Title.SET(table.Libraries.EXCLUDED.Title),
			table.Libraries.Kind.SET(table.Libraries.EXCLUDED.Kind),
		)).
		RETURNING(table.Libraries.ID)

	var inserted model.Libraries
	if err := stmt.QueryContext(ctx, s.db, &inserted); err != nil {
		return 0, fmt.Errorf("failed to upsert library: %w", err)
	}

	return int64(inserted.ID), nil
}

// SetLibrarySyncEnabled flips sync_enabled for a single library.
func (s *SQLite) SetLibrarySyncEnabled(ctx context.Context, libraryID int64, enabled bool) (int64, error) {
	stmt := table.Libraries.UPDATE(table.Libraries.SyncEnabled).SET(enabled).WHERE(table.Libraries.ID.EQ(sqlite.Int64(libraryID)))
	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to set library sync enabled: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return rows, nil
}

// SetLibraryLastFull advances the full-sync watermark.
func (s *SQLite) SetLibraryLastFull(ctx context.Context, libraryID int64, epoch int64) error {
	stmt := table.Libraries.UPDATE(table.Libraries.LastFullSyncEpoch).SET(epoch).WHERE(table.Libraries.ID.EQ(sqlite.Int64(libraryID)))
	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to set library last full sync: %w", err)
	}
	return nil
}

// SetLibraryLastIncremental advances the incremental-sync watermark.
func (s *SQLite) SetLibraryLastIncremental(ctx context.Context, libraryID int64, epoch int64) error {
	stmt := table.Libraries.UPDATE(table.Libraries.LastIncrementalSyncEpoch).SET(epoch).WHERE(table.Libraries.ID.EQ(sqlite.Int64(libraryID)))
	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to set library last incremental sync: %w", err)
	}
	return nil
}

// GetLibrary looks up a library by id.
func (s *SQLite) GetLibrary(ctx context.Context, libraryID int64) (*model.Libraries, error) {
	stmt := table.Libraries.SELECT(table.Libraries.AllColumns).FROM(table.Libraries).WHERE(table.Libraries.ID.EQ(sqlite.Int64(libraryID)))

	var result model.Libraries
	if err := stmt.QueryContext(ctx, s.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get library: %w", err)
	}

	return &result, nil
}

// ListLibraries lists libraries, optionally scoped to a server.
func (s *SQLite) ListLibraries(ctx context.Context, serverID *int64) ([]*model.Libraries, error) {
	libraries := make([]*model.Libraries, 0)

	query := table.Libraries.SELECT(table.Libraries.AllColumns).FROM(table.Libraries)
	if serverID != nil {
		query = query.WHERE(table.Libraries.ServerID.EQ(sqlite.Int64(*serverID)))
	}
	query = query.ORDER_BY(table.Libraries.Title.ASC())

	if err := query.QueryContext(ctx, s.db, &libraries); err != nil {
		return nil, fmt.Errorf("failed to list libraries: %w", err)
	}

	return libraries, nil
}
