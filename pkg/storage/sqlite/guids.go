package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// UpsertGUID records an external identifier (e.g. imdb, tvdb) for a show or
// content item, keyed on (provider, external_id).
func (s *SQLite) UpsertGUID(ctx context.Context, guid model.Guids) error {
	stmt := table.Guids.
		INSERT(table.Guids.Provider, table.Guids.ExternalID, table.Guids.ShowID, table.Guids.ContentItemID).
		MODEL(guid).
		ON_CONFLICT(table.Guids.Provider, table.Guids.ExternalID).
		DO_UPDATE(sqlite.SET(
			table.Guids.ShowID.SET(table.Guids.EXCLUDED.ShowID),
			table.Guids.ContentItemID.SET(table.Guids.EXCLUDED.ContentItemID),
		))

	if _, err := s.handleInsert(ctx, stmt); err != nil {
		return fmt.Errorf("failed to upsert guid: %w", err)
	}

	return nil
}
