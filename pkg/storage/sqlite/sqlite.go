package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kasuboski/shelfstats/pkg/logger"
	"github.com/kasuboski/shelfstats/pkg/storage"
)

type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens the sqlite database at filePath. Migrations are not applied until
// RunMigrations is called.
func New(ctx context.Context, filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// a single connection keeps :memory: databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}

	return &SQLite{db: db}, nil
}

// RunMigrations applies every pending migration
func (s *SQLite) RunMigrations(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := runMigrations(s.db); err != nil {
		return err
	}

	version, dirty, err := s.migrationVersion()
	if err != nil {
		return err
	}
	log.Debugw("migrations applied", "version", version, "dirty", dirty)

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	result, err := s.execStatement(ctx, tx, stmt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	return result, tx.Commit()
}

func (s *SQLite) execStatement(ctx context.Context, tx *sql.Tx, stmt sqlite.Statement) (sql.Result, error) {
	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		logger.FromCtx(ctx).Debugw("failed to execute statement", "query", stmt.DebugSql(), "error", err)
		return nil, err
	}
	return result, nil
}
