package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// UpsertTag stores a namespaced key/value tag against a content item,
// replacing the value if the (content_item_id, namespace, key) triple
// already exists.
func (s *SQLite) UpsertTag(ctx context.Context, tag model.ContentTags) error {
	stmt := table.ContentTags.
		INSERT(table.ContentTags.ContentItemID, table.ContentTags.Namespace, table.ContentTags.Key, table.ContentTags.Value).
		MODEL(tag).
		ON_CONFLICT(table.ContentTags.ContentItemID, table.ContentTags.Namespace, table.ContentTags.Key).
		DO_UPDATE(sqlite.SET(
			table.ContentTags.Value.SET(table.ContentTags.EXCLUDED.Value),
		))

	if _, err := s.handleInsert(ctx, stmt); err != nil {
		return fmt.Errorf("failed to upsert tag: %w", err)
	}

	return nil
}
