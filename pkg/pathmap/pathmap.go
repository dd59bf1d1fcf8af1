package pathmap

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ingestd/catalogsync/pkg/cache"
	"github.com/ingestd/catalogsync/pkg/storage"
)

// ErrNoMapping is returned when no configured prefix matches a remote path.
// Callers treat this as a validation failure, not a mapper error.
var ErrNoMapping = errors.New("pathmap: no mapping matches remote path")

type libraryKey struct {
	serverID  int64
	libraryID int64
}

// entry is a normalized mapping, pre-sorted so the longest prefix is tried first.
type entry struct {
	remotePrefix string
	localPrefix  string
}

// PathMapper resolves server-visible file paths to local filesystem paths
// via longest-prefix matching, backed by a per-(server,library) cache that
// is invalidated whenever mappings change.
type PathMapper struct {
	store           storage.Storage
	cache           *cache.Cache[libraryKey, []entry]
	caseInsensitive bool
}

// New builds a PathMapper. caseInsensitive controls whether prefix matching
// ignores case, which callers set true on case-insensitive host filesystems.
func New(store storage.Storage, caseInsensitive bool) *PathMapper {
	return &PathMapper{
		store:           store,
		cache:           cache.New[libraryKey, []entry](),
		caseInsensitive: caseInsensitive,
	}
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimRight(p, "/")
	return p
}

// loadEntries returns the cached, length-sorted mapping entries for a
// (server, library) pair, reading through to the Store on a cache miss.
func (m *PathMapper) loadEntries(ctx context.Context, key libraryKey) ([]entry, error) {
	if entries, ok := m.cache.Get(key); ok {
		return entries, nil
	}

	mappings, err := m.store.GetPathMappings(ctx, key.serverID, key.libraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load path mappings: %w", err)
	}

	entries := make([]entry, 0, len(mappings))
	for _, mapping := range mappings {
		entries = append(entries, entry{
			remotePrefix: normalize(mapping.PlexPath),
			localPrefix:  normalize(mapping.LocalPath),
		})
	}

	m.cache.Set(key, entries)
	return entries, nil
}

// Resolve converts a remote path to a local path using the longest matching
// prefix. It returns ErrNoMapping when nothing matches.
func (m *PathMapper) Resolve(ctx context.Context, serverID, libraryID int64, remotePath string) (string, error) {
	entries, err := m.loadEntries(ctx, libraryKey{serverID: serverID, libraryID: libraryID})
	if err != nil {
		return "", err
	}

	normalized := normalize(remotePath)
	caser := cases.Fold()

	compare := normalized
	if m.caseInsensitive {
		compare = caser.String(normalized)
	}

	bestIdx := -1
	bestLen := -1
	for i, e := range entries {
		candidate := e.remotePrefix
		if m.caseInsensitive {
			candidate = caser.String(candidate)
		}
		if strings.HasPrefix(compare, candidate) && len(e.remotePrefix) > bestLen {
			bestIdx = i
			bestLen = len(e.remotePrefix)
		}
	}

	if bestIdx == -1 {
		return "", ErrNoMapping
	}

	matched := entries[bestIdx]
	suffix := strings.TrimPrefix(normalized, matched.remotePrefix)
	if m.caseInsensitive && len(normalized) >= len(matched.remotePrefix) &&
		caser.String(normalized[:len(matched.remotePrefix)]) == caser.String(matched.remotePrefix) {
		suffix = normalized[len(matched.remotePrefix):]
	}
	suffix = strings.TrimPrefix(suffix, "/")

	if suffix == "" {
		return matched.localPrefix, nil
	}

	return path.Join(matched.localPrefix, suffix), nil
}

// Invalidate drops the cached entries for a (server, library) pair; callers
// invoke this after inserting or deleting a mapping through the Store.
func (m *PathMapper) Invalidate(serverID, libraryID int64) {
	m.cache.Delete(libraryKey{serverID: serverID, libraryID: libraryID})
}

// InsertMapping adds a mapping rule via the Store and invalidates the cache
// for the affected library so the next Resolve call reads the fresh set.
func (m *PathMapper) InsertMapping(ctx context.Context, serverID, libraryID int64, plexPath, localPath string) (int64, error) {
	id, err := m.store.InsertPathMapping(ctx, serverID, libraryID, plexPath, localPath)
	if err != nil {
		return 0, err
	}
	m.Invalidate(serverID, libraryID)
	return id, nil
}

// DeleteMapping removes a mapping rule. Since the rule's (server, library)
// isn't known without a lookup, callers pass it alongside the id so the
// cache for that pair is invalidated.
func (m *PathMapper) DeleteMapping(ctx context.Context, serverID, libraryID, id int64) (bool, error) {
	ok, err := m.store.DeletePathMapping(ctx, id)
	if err != nil {
		return false, err
	}
	m.Invalidate(serverID, libraryID)
	return ok, nil
}
