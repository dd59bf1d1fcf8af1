package storage

import (
	"context"
	"errors"

	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
)

// ErrNotFound is returned when a lookup by id or unique key matches no row.
var ErrNotFound = errors.New("storage: not found")

// ErrValidation is returned when caller-supplied input fails a Store-level
// invariant (empty name, malformed base_url, ...).
var ErrValidation = errors.New("storage: validation failed")

// PathMapping is a single (plex_path, local_path) prefix pair scoped to a
// server/library.
type PathMapping struct {
	ID        int64
	ServerID  int64
	LibraryID int64
	PlexPath  string
	LocalPath string
}

// Storage is every read and write the ingestion core makes against the
// catalog schema. All writes are upserts keyed by the uniqueness
// constraints in SPEC_FULL.md §3: callers never issue blind inserts.
type Storage interface {
	// Servers
	AddServer(ctx context.Context, name, baseURL, token string) (int64, error)
	SetDefaultServer(ctx context.Context, serverID int64) error
	GetServer(ctx context.Context, serverID int64) (*model.Servers, error)
	GetServerByName(ctx context.Context, name string) (*model.Servers, error)
	ListServers(ctx context.Context) ([]*model.Servers, error)
	DeleteServer(ctx context.Context, serverID int64) error

	// Libraries
	UpsertLibrary(ctx context.Context, serverID int64, externalKey, title, kind string) (int64, error)
	SetLibrarySyncEnabled(ctx context.Context, libraryID int64, enabled bool) (int64, error)
	SetLibraryLastFull(ctx context.Context, libraryID int64, epoch int64) error
	SetLibraryLastIncremental(ctx context.Context, libraryID int64, epoch int64) error
	GetLibrary(ctx context.Context, libraryID int64) (*model.Libraries, error)
	ListLibraries(ctx context.Context, serverID *int64) ([]*model.Libraries, error)

	// Shows / Seasons
	GetOrCreateShow(ctx context.Context, serverID, libraryID int64, externalRatingKey, title string, year *int32, artworkURL *string) (int64, error)
	GetOrCreateSeason(ctx context.Context, showID int64, seasonNumber int32, externalRatingKey, title *string) (int64, error)

	// Content items. wasInserted distinguishes a fresh row from a refreshed
	// one so the Orchestrator can count inserted_items vs updated_items.
	UpsertContentItem(ctx context.Context, item model.ContentItems) (id int64, wasInserted bool, err error)

	// Media files. wasInserted distinguishes a fresh row from a refreshed
	// one so the Orchestrator can count inserted_files vs updated_files.
	UpsertMediaFile(ctx context.Context, file model.MediaFiles) (id int64, wasInserted bool, err error)
	LinkContentItemFile(ctx context.Context, contentItemID, mediaFileID int64, role string) error

	// Editorial / tags / GUIDs
	UpsertEditorial(ctx context.Context, editorial model.ContentEditorial) error
	UpsertTag(ctx context.Context, tag model.ContentTags) error
	UpsertGUID(ctx context.Context, guid model.Guids) error

	// Path mappings
	GetPathMappings(ctx context.Context, serverID, libraryID int64) ([]PathMapping, error)
	InsertPathMapping(ctx context.Context, serverID, libraryID int64, plexPath, localPath string) (int64, error)
	DeletePathMapping(ctx context.Context, id int64) (bool, error)

	// Sync run bookkeeping (additive, see SPEC_FULL.md §12)
	StartSyncRun(ctx context.Context, serverID, libraryID int64, mode string, startedAtEpoch int64) (int64, error)
	FinishSyncRun(ctx context.Context, id int64, finishedAtEpoch int64, stats SyncStats) error
	ListSyncRuns(ctx context.Context, libraryID int64, limit int) ([]*model.SyncRuns, error)

	// System config
	GetSystemConfig(ctx context.Context, key string) (string, bool, error)
	SetSystemConfig(ctx context.Context, key, value string) error

	// Transactional helpers
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error
}

// SyncStats mirrors the final stats keys from SPEC_FULL.md §4.7.
type SyncStats struct {
	Scanned       int
	Mapped        int
	InsertedItems int
	UpdatedItems  int
	InsertedFiles int
	UpdatedFiles  int
	Linked        int
	Skipped       int
	Errors        int
}
