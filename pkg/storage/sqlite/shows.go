package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// GetOrCreateShow returns the id of the show matching
// (server_id, library_id, external_rating_key), creating it if absent.
func (s *SQLite) GetOrCreateShow(ctx context.Context, serverID, libraryID int64, externalRatingKey, title string, year *int32, artworkURL *string) (int64, error) {
	row := model.Shows{
		ServerID:          int32(serverID),
		LibraryID:         int32(libraryID),
		ExternalRatingKey: externalRatingKey,
		Title:             title,
		Year:              year,
		ArtworkURL:        artworkURL,
	}

	stmt := table.Shows.
		INSERT(table.Shows.ServerID, table.Shows.LibraryID, table.Shows.ExternalRatingKey, table.Shows.Title, table.Shows.Year, table.Shows.ArtworkURL).
		MODEL(row).
		ON_CONFLICT(table.Shows.ServerID, table.Shows.LibraryID, table.Shows.ExternalRatingKey).
		DO_UPDATE(sqlite.SET(
			table.Shows.Title.SET(table.Shows.EXCLUDED.Title),
			table.Shows.Year.SET(table.Shows.EXCLUDED.Year),
			table.Shows.ArtworkURL.SET(table.Shows.EXCLUDED.ArtworkURL),
		)).
		RETURNING(table.Shows.ID)

	var inserted model.Shows
	if err := stmt.QueryContext(ctx, s.db, &inserted); err != nil {
		return 0, fmt.Errorf("failed to get or create show: %w", err)
	}

	return int64(inserted.ID), nil
}

// GetOrCreateSeason returns the id of the season matching
// (show_id, season_number), creating it if absent.
func (s *SQLite) GetOrCreateSeason(ctx context.Context, showID int64, seasonNumber int32, externalRatingKey, title *string) (int64, error) {
	row := model.Seasons{
		ShowID:            int32(showID),
		SeasonNumber:      seasonNumber,
		ExternalRatingKey: externalRatingKey,
		Title:             title,
	}

	stmt := table.Seasons.
		INSERT(table.Seasons.ShowID, table.Seasons.SeasonNumber, table.Seasons.ExternalRatingKey, table.Seasons.Title).
		MODEL(row).
		ON_CONFLICT(table.Seasons.ShowID, table.Seasons.SeasonNumber).
		DO_UPDATE(sqlite.SET(
			table.Seasons.ExternalRatingKey.SET(table.Seasons.EXCLUDED.ExternalRatingKey),
			table.Seasons.Title.SET(table.Seasons.EXCLUDED.Title),
		)).
		RETURNING(table.Seasons.ID)

	var inserted model.Seasons
	if err := stmt.QueryContext(ctx, s.db, &inserted); err != nil {
		return 0, fmt.Errorf("failed to get or create season: %w", err)
	}

	return int64(inserted.ID), nil
}
