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

// GetSystemConfig reads a single config value, reporting whether it exists.
func (s *SQLite) GetSystemConfig(ctx context.Context, key string) (string, bool, error) {
	stmt := table.SystemConfig.SELECT(table.SystemConfig.AllColumns).FROM(table.SystemConfig).WHERE(table.SystemConfig.Key.EQ(sqlite.String(key)))

	var result model.SystemConfig
	if err := stmt.QueryContext(ctx, s.db, &result); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get system config: %w", err)
	}

	return result.Value, true, nil
}

// SetSystemConfig creates or overwrites a config value.
func (s *SQLite) SetSystemConfig(ctx context.Context, key, value string) error {
	row := model.SystemConfig{Key: key, Value: value}

	stmt := table.SystemConfig.
		INSERT(table.SystemConfig.Key, table.SystemConfig.Value).
		MODEL(row).
		ON_CONFLICT(table.SystemConfig.Key).
		DO_UPDATE(sqlite.SET(
			table.SystemConfig.Value.SET(table.SystemConfig.EXCLUDED.Value),
		))

	if _, err := s.handleInsert(ctx, stmt); err != nil {
		return fmt.Errorf("failed to set system config: %w", err)
	}

	return nil
}
