package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// GetPathMappings lists the path remappings configured for a library, most
// specific (longest plex_path) first so callers can do longest-prefix match
// by taking the first entry that matches.
func (s *SQLite) GetPathMappings(ctx context.Context, serverID, libraryID int64) ([]storage.PathMapping, error) {
	var rows []model.PathMappings

	stmt := table.PathMappings.
		SELECT(table.PathMappings.AllColumns).
		FROM(table.PathMappings).
		WHERE(table.PathMappings.ServerID.EQ(sqlite.Int64(serverID)).
			AND(table.PathMappings.LibraryID.EQ(sqlite.Int64(libraryID))))

	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, fmt.Errorf("failed to get path mappings: %w", err)
	}

	mappings := make([]storage.PathMapping, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, storage.PathMapping{
			ID:        int64(row.ID),
			ServerID:  int64(row.ServerID),
			LibraryID: int64(row.LibraryID),
			PlexPath:  row.PlexPath,
			LocalPath: row.LocalPath,
		})
	}

	sort.Slice(mappings, func(i, j int) bool {
		return len(mappings[i].PlexPath) > len(mappings[j].PlexPath)
	})

	return mappings, nil
}

// InsertPathMapping adds a new path remapping rule.
func (s *SQLite) InsertPathMapping(ctx context.Context, serverID, libraryID int64, plexPath, localPath string) (int64, error) {
	row := model.PathMappings{
		ServerID:  int32(serverID),
		LibraryID: int32(libraryID),
		PlexPath:  plexPath,
		LocalPath: localPath,
	}

	stmt := table.PathMappings.
		INSERT(table.PathMappings.ServerID, table.PathMappings.LibraryID, table.PathMappings.PlexPath, table.PathMappings.LocalPath).
		MODEL(row).
		RETURNING(table.PathMappings.ID)

	var inserted model.PathMappings
	if err := stmt.QueryContext(ctx, s.db, &inserted); err != nil {
		return 0, fmt.Errorf("failed to insert path mapping: %w", err)
	}

	return int64(inserted.ID), nil
}

// DeletePathMapping removes a path remapping rule, reporting whether a row
// was actually removed.
func (s *SQLite) DeletePathMapping(ctx context.Context, id int64) (bool, error) {
	stmt := table.PathMappings.DELETE().WHERE(table.PathMappings.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("failed to delete path mapping: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
