package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// UpsertMediaFile creates or refreshes a media file, keyed on the table's
// actual unique constraint (server_id, file_path). last_seen_at is always
// bumped; first_seen_at is preserved across re-discovery. wasInserted
// reports whether this call created the row, via the same pre-check select
// idiom as UpsertContentItem.
func (s *SQLite) UpsertMediaFile(ctx context.Context, file model.MediaFiles) (id int64, wasInserted bool, err error) {
	existing := table.MediaFiles.
		SELECT(table.MediaFiles.ID).
		WHERE(table.MediaFiles.ServerID.EQ(sqlite.Int32(file.ServerID)).
			AND(table.MediaFiles.FilePath.EQ(sqlite.String(file.FilePath))))

	var existingRow model.MediaFiles
	preErr := existing.QueryContext(ctx, s.db, &existingRow)
	wasInserted = errors.Is(preErr, qrm.ErrNoRows)
	if preErr != nil && !wasInserted {
		return 0, false, fmt.Errorf("failed to check existing media file: %w", preErr)
	}

	stmt := table.MediaFiles.
		INSERT(
			table.MediaFiles.ServerID,
			table.MediaFiles.LibraryID,
			table.MediaFiles.ContentItemID,
			table.MediaFiles.ExternalRatingKey,
			table.MediaFiles.FilePath,
			table.MediaFiles.Size,
			table.MediaFiles.Container,
			table.MediaFiles.VideoCodec,
			table.MediaFiles.AudioCodec,
			table.MediaFiles.Width,
			table.MediaFiles.Height,
			table.MediaFiles.Bitrate,
			table.MediaFiles.FrameRate,
			table.MediaFiles.Channels,
			table.MediaFiles.UpdatedAtRemote,
			table.MediaFiles.FirstSeenAt,
			table.MediaFiles.LastSeenAt,
		).
		MODEL(file).
		ON_CONFLICT(table.MediaFiles.ServerID, table.MediaFiles.FilePath).
		DO_UPDATE(sqlite.SET(
			table.MediaFiles.ContentItemID.SET(table.MediaFiles.EXCLUDED.ContentItemID),
			table.MediaFiles.ExternalRatingKey.SET(table.MediaFiles.EXCLUDED.ExternalRatingKey),
			table.MediaFiles.Size.SET(table.MediaFiles.EXCLUDED.Size),
			table.MediaFiles.Container.SET(table.MediaFiles.EXCLUDED.Container),
			table.MediaFiles.VideoCodec.SET(table.MediaFiles.EXCLUDED.VideoCodec),
			table.MediaFiles.AudioCodec.SET(table.MediaFiles.EXCLUDED.AudioCodec),
			table.MediaFiles.Width.SET(table.MediaFiles.EXCLUDED.Width),
			table.MediaFiles.Height.SET(table.MediaFiles.EXCLUDED.Height),
			table.MediaFiles.Bitrate.SET(table.MediaFiles.EXCLUDED.Bitrate),
			table.MediaFiles.FrameRate.SET(table.MediaFiles.EXCLUDED.FrameRate),
			table.MediaFiles.Channels.SET(table.MediaFiles.EXCLUDED.Channels),
			table.MediaFiles.UpdatedAtRemote.SET(table.MediaFiles.EXCLUDED.UpdatedAtRemote),
			table.MediaFiles.LastSeenAt.SET(table.MediaFiles.EXCLUDED.LastSeenAt),
		)).
		RETURNING(table.MediaFiles.ID)

	var row model.MediaFiles
	if err := stmt.QueryContext(ctx, s.db, &row); err != nil {
		return 0, false, fmt.Errorf("failed to upsert media file: %w", err)
	}

	return int64(row.ID), wasInserted, nil
}
