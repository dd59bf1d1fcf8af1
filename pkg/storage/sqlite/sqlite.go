package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ingestd/catalogsync/pkg/logger"
	"github.com/ingestd/catalogsync/pkg/storage"
	"go.uber.org/zap"
)

// dbExecutor is satisfied by both *sql.DB and *sql.Tx, letting every
// statement helper run unmodified inside or outside a transaction.
type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLite is the catalog Store backed by a single SQLite file.
type SQLite struct {
	db dbExecutor
	// raw is non-nil only on the top-level handle (not inside WithTx), so
	// WithTx can open transactions against the real connection.
	raw *sql.DB
}

// New opens (and migrates) the catalog database at filePath.
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLite{db: db, raw: db}, nil
}

// GetMigrationVersion returns the current migration version and dirty state.
func (s *SQLite) GetMigrationVersion() (version uint, dirty bool, err error) {
	var v sql.NullInt64
	var d bool
	err = s.db.QueryRowContext(context.Background(), `SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&v, &d)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return uint(v.Int64), d, nil
}

// WithTx runs fn against a transaction-scoped Storage; it commits on a nil
// return and rolls back otherwise.
func (s *SQLite) WithTx(ctx context.Context, fn func(ctx context.Context, tx storage.Storage) error) error {
	if s.raw == nil {
		return fmt.Errorf("cannot open a nested transaction")
	}

	log := logger.FromCtx(ctx)
	tx, err := s.raw.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &SQLite{db: tx}
	if err := fn(ctx, txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Debug("failed to roll back transaction", zap.Error(rbErr))
		}
		return err
	}

	return tx.Commit()
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		return nil, err
	}
	return result, nil
}
