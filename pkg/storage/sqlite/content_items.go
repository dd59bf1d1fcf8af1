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

// UpsertContentItem creates or refreshes a content item, keyed on
// (server_id, library_id, external_rating_key). wasInserted reports
// whether this call created the row (true) or refreshed an existing one
// (false); a pre-check select against the conflict key is the only way to
// know that reliably, since the upsert itself returns the same shape
// either way. item.UpdatedAt is caller-supplied and tracks the remote's
// observed update time, not wall-clock: a re-sync that finds no change
// upstream must not bump it.
func (s *SQLite) UpsertContentItem(ctx context.Context, item model.ContentItems) (id int64, wasInserted bool, err error) {
	existing := table.ContentItems.
		SELECT(table.ContentItems.ID).
		WHERE(table.ContentItems.ServerID.EQ(sqlite.Int32(item.ServerID)).
			AND(table.ContentItems.LibraryID.EQ(sqlite.Int32(item.LibraryID))).
			AND(table.ContentItems.ExternalRatingKey.EQ(sqlite.String(item.ExternalRatingKey))))

	var existingRow model.ContentItems
	preErr := existing.QueryContext(ctx, s.db, &existingRow)
	wasInserted = errors.Is(preErr, qrm.ErrNoRows)
	if preErr != nil && !wasInserted {
		return 0, false, fmt.Errorf("failed to check existing content item: %w", preErr)
	}

	stmt := table.ContentItems.
		INSERT(
			table.ContentItems.ServerID,
			table.ContentItems.LibraryID,
			table.ContentItems.ExternalRatingKey,
			table.ContentItems.Kind,
			table.ContentItems.Title,
			table.ContentItems.Synopsis,
			table.ContentItems.DurationMs,
			table.ContentItems.RatingSystem,
			table.ContentItems.RatingCode,
			table.ContentItems.IsKidsFriendly,
			table.ContentItems.ShowID,
			table.ContentItems.SeasonID,
			table.ContentItems.SeasonNumber,
			table.ContentItems.EpisodeNumber,
			table.ContentItems.MetadataUpdatedAt,
			table.ContentItems.UpdatedAt,
		).
		MODEL(item).
		ON_CONFLICT(table.ContentItems.ServerID, table.ContentItems.LibraryID, table.ContentItems.ExternalRatingKey).
		DO_UPDATE(sqlite.SET(
			table.ContentItems.Kind.SET(table.ContentItems.EXCLUDED.Kind),
			table.ContentItems.Title.SET(table.ContentItems.EXCLUDED.Title),
			table.ContentItems.Synopsis.SET(table.ContentItems.EXCLUDED.Synopsis),
			table.ContentItems.DurationMs.SET(table.ContentItems.EXCLUDED.DurationMs),
			table.ContentItems.RatingSystem.SET(table.ContentItems.EXCLUDED.RatingSystem),
			table.ContentItems.RatingCode.SET(table.ContentItems.EXCLUDED.RatingCode),
			table.ContentItems.IsKidsFriendly.SET(table.ContentItems.EXCLUDED.IsKidsFriendly),
			table.ContentItems.ShowID.SET(table.ContentItems.EXCLUDED.ShowID),
			table.ContentItems.SeasonID.SET(table.ContentItems.EXCLUDED.SeasonID),
			table.ContentItems.SeasonNumber.SET(table.ContentItems.EXCLUDED.SeasonNumber),
			table.ContentItems.EpisodeNumber.SET(table.ContentItems.EXCLUDED.EpisodeNumber),
			table.ContentItems.MetadataUpdatedAt.SET(table.ContentItems.EXCLUDED.MetadataUpdatedAt),
			table.ContentItems.UpdatedAt.SET(table.ContentItems.EXCLUDED.UpdatedAt),
		)).
		RETURNING(table.ContentItems.ID)

	var row model.ContentItems
	if err := stmt.QueryContext(ctx, s.db, &row); err != nil {
		return 0, false, fmt.Errorf("failed to upsert content item: %w", err)
	}

	return int64(row.ID), wasInserted, nil
}
