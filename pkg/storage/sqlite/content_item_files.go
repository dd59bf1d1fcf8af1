package sqlite

import (
	"context"
	"fmt"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// LinkContentItemFile associates a media file with a content item under a
// role (e.g. "primary", "extra"). A pre-existing link is left untouched.
func (s *SQLite) LinkContentItemFile(ctx context.Context, contentItemID, mediaFileID int64, role string) error {
	row := model.ContentItemFiles{
		ContentItemID: int32(contentItemID),
		MediaFileID:   int32(mediaFileID),
		Role:          role,
	}

	stmt := table.ContentItemFiles.
		INSERT(table.ContentItemFiles.ContentItemID, table.ContentItemFiles.MediaFileID, table.ContentItemFiles.Role).
		MODEL(row).
		ON_CONFLICT(table.ContentItemFiles.ContentItemID, table.ContentItemFiles.MediaFileID, table.ContentItemFiles.Role).
		DO_NOTHING()

	if _, err := s.handleInsert(ctx, stmt); err != nil {
		return fmt.Errorf("failed to link content item file: %w", err)
	}

	return nil
}
