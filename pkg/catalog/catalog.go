// Package catalog is the stable, UI/CLI-facing surface over the ingestion
// core. It receives the Store, PathMapper, Validator and ErrorHandler
// already constructed by its caller, obtains each server's ExternalClient
// through a caller-supplied ClientFactory, and builds the Orchestrator
// itself, once per sync; it does not construct the other components.
package catalog

import (
	"context"
	"fmt"

	"github.com/ingestd/catalogsync/pkg/ingest"
	"github.com/ingestd/catalogsync/pkg/ingesterr"
	"github.com/ingestd/catalogsync/pkg/mediaserver"
	"github.com/ingestd/catalogsync/pkg/pathmap"
	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/validate"
)

// ClientFactory builds the ExternalClient used to talk to one server. The
// Catalog doesn't know how to construct an ExternalClient itself (base
// URL and token live on the stored Server row), so it asks the factory for
// one the first time a server is addressed and caches the result.
type ClientFactory func(server *model.Servers) mediaserver.ExternalClient

// Catalog is the façade (spec component C8). It is safe for concurrent use
// across different servers; a single server is never synced concurrently
// with itself (see SPEC_FULL.md §5).
type Catalog struct {
	store       storage.Storage
	mapper      *pathmap.PathMapper
	validator   *validate.Validator
	errs        *ingesterr.Handler
	newClient   ClientFactory
	batchSize   int
	progressN   int
	clientCache map[int64]mediaserver.ExternalClient
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithBatchSize overrides the Orchestrator's default commit batch size.
func WithBatchSize(n int) Option {
	return func(c *Catalog) { c.batchSize = n }
}

// WithProgressInterval overrides the Orchestrator's dry-run progress cadence.
func WithProgressInterval(n int) Option {
	return func(c *Catalog) { c.progressN = n }
}

// New builds the façade from its already-constructed dependencies, in the
// dependency order SPEC_FULL.md §4.8 requires: Store, PathMapper,
// Validator, ErrorHandler are built by the caller and handed in; the
// Orchestrator itself is built lazily, once per sync, since it needs a
// per-server ExternalClient that the Catalog resolves through newClient.
func New(store storage.Storage, mapper *pathmap.PathMapper, validator *validate.Validator, errs *ingesterr.Handler, newClient ClientFactory, opts ...Option) *Catalog {
	c := &Catalog{
		store:       store,
		mapper:      mapper,
		validator:   validator,
		errs:        errs,
		newClient:   newClient,
		batchSize:   ingest.DefaultBatchSize,
		progressN:   ingest.DefaultProgressInterval,
		clientCache: make(map[int64]mediaserver.ExternalClient),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) clientFor(server *model.Servers) mediaserver.ExternalClient {
	if cached, ok := c.clientCache[int64(server.ID)]; ok {
		return cached
	}
	client := c.newClient(server)
	c.clientCache[int64(server.ID)] = client
	return client
}

// AddServer registers a new remote server.
func (c *Catalog) AddServer(ctx context.Context, name, baseURL, token string) (int64, error) {
	return c.store.AddServer(ctx, name, baseURL, token)
}

// ListServers lists every registered server.
func (c *Catalog) ListServers(ctx context.Context) ([]*model.Servers, error) {
	return c.store.ListServers(ctx)
}

// DeleteServer removes a server and, via cascade, everything under it.
func (c *Catalog) DeleteServer(ctx context.Context, serverID int64) error {
	delete(c.clientCache, serverID)
	return c.store.DeleteServer(ctx, serverID)
}

// SetDefaultServer marks serverID as the default server and clears the flag
// on every other server. The flag is shown by `server list`; commands that
// take a server id do not fall back to it.
func (c *Catalog) SetDefaultServer(ctx context.Context, serverID int64) error {
	return c.store.SetDefaultServer(ctx, serverID)
}

// ListLibraries lists libraries, optionally scoped to a single server.
func (c *Catalog) ListLibraries(ctx context.Context, serverID *int64) ([]*model.Libraries, error) {
	return c.store.ListLibraries(ctx, serverID)
}

// SetLibrarySyncEnabled toggles whether a library is eligible for sync.
func (c *Catalog) SetLibrarySyncEnabled(ctx context.Context, libraryID int64, enabled bool) error {
	_, err := c.store.SetLibrarySyncEnabled(ctx, libraryID, enabled)
	return err
}

// DiscoverLibraries asks the remote server for its library sections and
// upserts every one into the catalog, returning the refreshed rows. It
// does not touch sync_enabled on existing libraries, and newly discovered
// libraries start enabled (see UpsertLibrary).
func (c *Catalog) DiscoverLibraries(ctx context.Context, serverID int64) ([]*model.Libraries, error) {
	server, err := c.store.GetServer(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("catalog: loading server %d: %w", serverID, err)
	}

	client := c.clientFor(server)
	remote, err := client.GetLibraries(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: discovering libraries on server %d: %w", serverID, err)
	}

	for _, lib := range remote {
		if _, err := c.store.UpsertLibrary(ctx, serverID, lib.Key, lib.Title, lib.Type); err != nil {
			return nil, fmt.Errorf("catalog: upserting discovered library %q: %w", lib.Key, err)
		}
	}

	return c.store.ListLibraries(ctx, &serverID)
}

// AddPathMapping registers a remote-to-local path prefix rule.
func (c *Catalog) AddPathMapping(ctx context.Context, serverID, libraryID int64, remotePath, localPath string) (int64, error) {
	return c.mapper.InsertMapping(ctx, serverID, libraryID, remotePath, localPath)
}

// ListPathMappings lists the rules configured for a library.
func (c *Catalog) ListPathMappings(ctx context.Context, serverID, libraryID int64) ([]storage.PathMapping, error) {
	return c.store.GetPathMappings(ctx, serverID, libraryID)
}

// DeletePathMapping removes a single rule.
func (c *Catalog) DeletePathMapping(ctx context.Context, serverID, libraryID, id int64) (bool, error) {
	return c.mapper.DeleteMapping(ctx, serverID, libraryID, id)
}

// ListSyncRuns lists the recorded sync-run history for a library.
func (c *Catalog) ListSyncRuns(ctx context.Context, libraryID int64, limit int) ([]*model.SyncRuns, error) {
	return c.store.ListSyncRuns(ctx, libraryID, limit)
}

// SyncRequest parameterizes sync_content (spec §4.8). Omitting LibraryKeys
// syncs every sync-enabled library on the server, with the given Kinds or,
// if Kinds is empty too, the kind inferred from each library's stored kind.
// Explicit LibraryKeys with empty Kinds run both a movie and an episode
// pass for each key.
type SyncRequest struct {
	ServerID    int64
	LibraryKeys []string
	Kinds       []string
	Limit       int
	DryRun      bool
}

// SyncContent drives one or more library-kind passes and returns a single
// ordered stream of progress events. Per SPEC_FULL.md §5, a library-kind
// pass is never interleaved with another on the same library, so passes
// run strictly one after another; the returned channel is closed once
// every pass has finished, and the error channel yields the first fatal
// error encountered, if any, after all passes that can still run have run.
func (c *Catalog) SyncContent(ctx context.Context, req SyncRequest) (<-chan ingest.Event, <-chan error) {
	events := make(chan ingest.Event, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(events)
		var firstErr error

		passes := c.expandPasses(ctx, req)
		if len(passes) == 0 {
			events <- ingest.Event{Stage: ingest.StageComplete, Msg: "sync complete", Stats: &storage.SyncStats{}}
			errCh <- nil
			close(errCh)
			return
		}

		for _, pass := range passes {
			if ctx.Err() != nil {
				break
			}

			orch, err := c.orchestratorFor(ctx, pass.serverID)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}

			passEvents, passErrCh := orch.Stream(ctx, ingest.Request{
				ServerID:         pass.serverID,
				LibraryKey:       pass.libraryKey,
				Kind:             pass.kind,
				Mode:             ingest.ModeIncremental,
				Limit:            req.Limit,
				DryRun:           req.DryRun,
				BatchSize:        c.batchSize,
				ProgressInterval: c.progressN,
			})

			for ev := range passEvents {
				select {
				case events <- ev:
				case <-ctx.Done():
				}
			}
			if err := <-passErrCh; err != nil && firstErr == nil {
				firstErr = err
			}
		}

		errCh <- firstErr
		close(errCh)
	}()

	return events, errCh
}

func (c *Catalog) orchestratorFor(ctx context.Context, serverID int64) (*ingest.Orchestrator, error) {
	server, err := c.store.GetServer(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("catalog: loading server %d: %w", serverID, err)
	}
	client := c.clientFor(server)
	return ingest.New(c.store, client, c.validator, c.errs), nil
}

// pass is one (server, library, kind) sync invocation.
type pass struct {
	serverID   int64
	libraryKey string
	kind       string
}

// expandPasses resolves a SyncRequest into the concrete passes to run,
// falling back to every sync-enabled library on the server when
// LibraryKeys/Kinds are left empty. Errors resolving the library list are
// swallowed here and surfaced per-pass as a missing library instead, since
// expandPasses has no event channel of its own to report on.
func (c *Catalog) expandPasses(ctx context.Context, req SyncRequest) []pass {
	if len(req.LibraryKeys) > 0 {
		passes := make([]pass, 0, len(req.LibraryKeys)*maxInt(len(req.Kinds), 1))
		for _, key := range req.LibraryKeys {
			kinds := req.Kinds
			if len(kinds) == 0 {
				kinds = []string{"movie", "episode"}
			}
			for _, kind := range kinds {
				passes = append(passes, pass{serverID: req.ServerID, libraryKey: key, kind: kind})
			}
		}
		return passes
	}

	libraries, err := c.store.ListLibraries(ctx, &req.ServerID)
	if err != nil {
		return nil
	}

	var passes []pass
	for _, lib := range libraries {
		if !lib.SyncEnabled {
			continue
		}
		kinds := req.Kinds
		if len(kinds) == 0 {
			kinds = []string{kindForLibrary(lib.Kind)}
		}
		for _, kind := range kinds {
			passes = append(passes, pass{serverID: req.ServerID, libraryKey: lib.ExternalKey, kind: kind})
		}
	}
	return passes
}

func kindForLibrary(libraryKind string) string {
	if libraryKind == "show" {
		return "episode"
	}
	return "movie"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
