package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/ingestd/catalogsync/pkg/ingesterr"
	"github.com/ingestd/catalogsync/pkg/ingestmap"
	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/validate"
)

// processBatch upserts one batch of mapped items inside a single
// transaction, per SPEC_FULL.md step 4-5. A failure anywhere rolls the
// whole batch back; the caller attributes len(batch) errors and moves on.
func (o *Orchestrator) processBatch(ctx context.Context, serverID, libraryID int64, batch []batchEntry, emit func(Event)) (storage.SyncStats, error) {
	var delta storage.SyncStats

	err := o.store.WithTx(ctx, func(ctx context.Context, tx storage.Storage) error {
		for _, entry := range batch {
			if err := o.processOne(ctx, tx, serverID, libraryID, entry, &delta, emit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storage.SyncStats{}, err
	}
	return delta, nil
}

func (o *Orchestrator) processOne(ctx context.Context, tx storage.Storage, serverID, libraryID int64, entry batchEntry, delta *storage.SyncStats, emit func(Event)) error {
	item := entry.item
	mapped := entry.mapped

	var showID, seasonID *int32
	if mapped.Kind == ingestmap.KindEpisode && item.GrandparentRatingKey != "" {
		id, err := tx.GetOrCreateShow(ctx, serverID, libraryID, item.GrandparentRatingKey, item.GrandparentTitle, nil, nil)
		if err != nil {
			return fmt.Errorf("get_or_create_show: %w", err)
		}
		sid := int32(id)
		showID = &sid

		var seasonNumber int32
		if mapped.SeasonNumber != nil {
			seasonNumber = *mapped.SeasonNumber
		}
		var seasonKey *string
		if item.ParentRatingKey != "" {
			k := item.ParentRatingKey
			seasonKey = &k
		}
		seasonRowID, err := tx.GetOrCreateSeason(ctx, id, seasonNumber, seasonKey, nil)
		if err != nil {
			return fmt.Errorf("get_or_create_season: %w", err)
		}
		seaID := int32(seasonRowID)
		seasonID = &seaID
	}

	var ratingSystem, ratingCode *string
	if mapped.Rating != nil {
		ratingSystem = &mapped.Rating.System
		ratingCode = &mapped.Rating.Code
	}

	updatedAt := time.Now().UTC()
	if mapped.MetadataUpdatedAt != nil {
		updatedAt = time.Unix(*mapped.MetadataUpdatedAt, 0).UTC()
	}

	contentRow := model.ContentItems{
		ServerID:          int32(serverID),
		LibraryID:         int32(libraryID),
		ExternalRatingKey: item.RatingKey,
		Kind:              string(mapped.Kind),
		Title:             mapped.Title,
		Synopsis:          mapped.Synopsis,
		DurationMs:        mapped.DurationMs,
		RatingSystem:      ratingSystem,
		RatingCode:        ratingCode,
		IsKidsFriendly:    mapped.IsKidsFriendly,
		ShowID:            showID,
		SeasonID:          seasonID,
		SeasonNumber:      mapped.SeasonNumber,
		EpisodeNumber:     mapped.EpisodeNumber,
		MetadataUpdatedAt: mapped.MetadataUpdatedAt,
		UpdatedAt:         updatedAt,
	}

	itemID, wasInserted, err := tx.UpsertContentItem(ctx, contentRow)
	if err != nil {
		return fmt.Errorf("upsert_content_item: %w", err)
	}
	if wasInserted {
		delta.InsertedItems++
	} else {
		delta.UpdatedItems++
	}

	now := o.nowEpoch()

	inputs := make([]validate.Input, len(mapped.Files))
	for i, file := range mapped.Files {
		inputs[i] = validate.Input{
			ServerID:   serverID,
			LibraryID:  libraryID,
			RemotePath: file.FilePath,
		}
	}
	results, err := o.validator.ValidateBatch(ctx, inputs)
	if err != nil {
		return fmt.Errorf("validate_batch: %w", err)
	}

	for i, file := range mapped.Files {
		result := results[i]
		if !result.Valid {
			msg := fmt.Sprintf("⚠ %s: %s", result.Kind, result.Message)
			emit(Event{Stage: StageValidationError, Msg: msg, ItemTitle: mapped.Title, LibraryID: libraryID, Error: msg})
			o.errs.Record(ingesterr.Event{
				Kind:      ingesterr.KindValidation,
				Operation: "validate_file",
				ServerID:  serverID,
				LibraryID: libraryID,
				FilePath:  file.FilePath,
				Message:   msg,
			})
			delta.Errors++
			delta.Skipped++
			continue
		}

		fileRow := model.MediaFiles{
			ServerID:        int32(serverID),
			LibraryID:       int32(libraryID),
			ContentItemID:   int32(itemID),
			FilePath:        result.LocalPath,
			Size:            result.Size,
			Container:       file.Container,
			VideoCodec:      codecPtr(result.VideoCodec),
			AudioCodec:      codecPtr(result.AudioCodec),
			Width:           dimensionPtr(result.Width),
			Height:          dimensionPtr(result.Height),
			Bitrate:         file.Bitrate,
			FrameRate:       file.FrameRate,
			Channels:        file.Channels,
			UpdatedAtRemote: file.UpdatedAtRemote,
			FirstSeenAt:     now,
			LastSeenAt:      now,
		}

		fileID, fileInserted, err := tx.UpsertMediaFile(ctx, fileRow)
		if err != nil {
			return fmt.Errorf("upsert_media_file: %w", err)
		}
		if fileInserted {
			delta.InsertedFiles++
		} else {
			delta.UpdatedFiles++
		}

		if err := tx.LinkContentItemFile(ctx, itemID, fileID, "primary"); err != nil {
			return fmt.Errorf("link_content_item_file: %w", err)
		}
		delta.Linked++
	}

	if err := tx.UpsertEditorial(ctx, model.ContentEditorial{
		ContentItemID:     int32(itemID),
		OriginalTitle:     mapped.Editorial.OriginalTitle,
		OriginalSynopsis:  mapped.Editorial.OriginalSynopsis,
		SourcePayloadJSON: mapped.Editorial.SourcePayloadJSON,
	}); err != nil {
		return fmt.Errorf("upsert_editorial: %w", err)
	}

	for _, tag := range mapped.Tags {
		if err := tx.UpsertTag(ctx, model.ContentTags{
			ContentItemID: int32(itemID),
			Namespace:     tag.Namespace,
			Key:           tag.Key,
			Value:         tag.Value,
		}); err != nil {
			return fmt.Errorf("upsert_tag: %w", err)
		}
	}

	for _, guid := range mapped.Guids {
		id := int32(itemID)
		if err := tx.UpsertGUID(ctx, model.Guids{
			Provider:      guid.Provider,
			ExternalID:    guid.ExternalID,
			ContentItemID: &id,
		}); err != nil {
			return fmt.Errorf("upsert_guid: %w", err)
		}
	}

	return nil
}

func codecPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dimensionPtr(n int32) *int32 {
	if n == 0 {
		return nil
	}
	return &n
}
