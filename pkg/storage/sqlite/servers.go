package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/ingestd/catalogsync/pkg/storage"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/model"
	"github.com/ingestd/catalogsync/pkg/storage/sqlite/schema/gen/table"
)

// AddServer validates and inserts a new server, returning its existing id
// if one with the same name is already present.
func (s *SQLite) AddServer(ctx context.Context, name, baseURL, token string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: server name must not be empty", storage.ErrValidation)
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return 0, fmt.Errorf("%w: base_url must start with http:// or https://", storage.ErrValidation)
	}

	row := model.Servers{
		Name:    name,
		BaseURL: baseURL,
		Token:   token,
	}

	stmt := table.Servers.
		INSERT(table.Servers.Name, table.Servers.BaseURL, table.Servers.Token).
		MODEL(row).
		ON_CONFLICT(table.Servers.Name).
		DO_UPDATE(sqlite.SET(
			table.Servers.BaseURL.SET(table.Servers.EXCLUDED.BaseURL),
			table.Servers.Token.SET(table.Servers.EXCLUDED.Token),
		)).
		RETURNING(table.Servers.ID)

	var inserted model.Servers
	if err := stmt.QueryContext(ctx, s.db, &inserted); err != nil {
		return 0, fmt.Errorf("failed to add server: %w", err)
	}

	return int64(inserted.ID), nil
}

// SetDefaultServer atomically clears all default flags and sets one.
func (s *SQLite) SetDefaultServer(ctx context.Context, serverID int64) error {
	if s.raw != nil {
		return s.WithTx(ctx, func(ctx context.Context, tx storage.Storage) error {
			return tx.SetDefaultServer(ctx, serverID)
		})
	}

	clear := table.Servers.UPDATE(table.Servers.IsDefault).SET(false).WHERE(table.Servers.IsDefault.IS_TRUE())
	if _, err := s.handleUpdate(ctx, clear); err != nil {
		return fmt.Errorf("failed to clear default servers: %w", err)
	}

	set := table.Servers.UPDATE(table.Servers.IsDefault).SET(true).WHERE(table.Servers.ID.EQ(sqlite.Int64(serverID)))
	if _, err := s.handleUpdate(ctx, set); err != nil {
		return fmt.Errorf("failed to set default server: %w", err)
	}

	return nil
}

// GetServer looks up a server by id.
func (s *SQLite) GetServer(ctx context.Context, serverID int64) (*model.Servers, error) {
	stmt := table.Servers.SELECT(table.Servers.AllColumns).FROM(table.Servers).WHERE(table.Servers.ID.EQ(sqlite.Int64(serverID)))

	var result model.Servers
	if err := stmt.QueryContext(ctx, s.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	return &result, nil
}

// GetServerByName looks up a server by its unique name.
func (s *SQLite) GetServerByName(ctx context.Context, name string) (*model.Servers, error) {
	stmt := table.Servers.SELECT(table.Servers.AllColumns).FROM(table.Servers).WHERE(table.Servers.Name.EQ(sqlite.String(name)))

	var result model.Servers
	if err := stmt.QueryContext(ctx, s.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get server by name: %w", err)
	}

	return &result, nil
}

// ListServers lists all stored servers.
func (s *SQLite) ListServers(ctx context.Context) ([]*model.Servers, error) {
	servers := make([]*model.Servers, 0)

	stmt := table.Servers.SELECT(table.Servers.AllColumns).FROM(table.Servers).ORDER_BY(table.Servers.Name.ASC())
	if err := stmt.QueryContext(ctx, s.db, &servers); err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	return servers, nil
}

// DeleteServer removes a server and, via ON DELETE CASCADE, every
// descendant row.
func (s *SQLite) DeleteServer(ctx context.Context, serverID int64) error {
	stmt := table.Servers.DELETE().WHERE(table.Servers.ID.EQ(sqlite.Int64(serverID)))
	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
	}
	return nil
}
