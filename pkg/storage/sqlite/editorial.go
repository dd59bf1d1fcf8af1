package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// UpsertEditorial stores the source-of-truth metadata payload alongside any
// local overrides for a content item, one row per item.
func (s *SQLite) UpsertEditorial(ctx context.Context, editorial model.ContentEditorial) error {
	stmt := table.ContentEditorial.
		INSERT(
			table.ContentEditorial.ContentItemID,
			table.ContentEditorial.OriginalTitle,
			table.ContentEditorial.OriginalSynopsis,
			table.ContentEditorial.SourcePayloadJSON,
			table.ContentEditorial.OverrideTitle,
			table.ContentEditorial.OverrideSynopsis,
			table.ContentEditorial.OverrideUpdatedAt,
		).
		MODEL(editorial).
		ON_CONFLICT(table.ContentEditorial.ContentItemID).
		DO_UPDATE(sqlite.SET(
			table.ContentEditorial.OriginalTitle.SET(table.ContentEditorial.EXCLUDED.OriginalTitle),
			table.ContentEditorial.OriginalSynopsis.SET(table.ContentEditorial.EXCLUDED.OriginalSynopsis),
			table.ContentEditorial.SourcePayloadJSON.SET(table.ContentEditorial.EXCLUDED.SourcePayloadJSON),
		))

	if _, err := s.handleInsert(ctx, stmt); err != nil {
		return fmt.Errorf("failed to upsert editorial: %w", err)
	}

	return nil
}
