package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/habitkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"github.com/dmitrijs2005/habitkeeper/internal/filex"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Store is a synchronous string-keyed store. Values are opaque text.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	// Replace drops every key and loads snapshot in one step.
	Replace(ctx context.Context, snapshot map[string][]byte) error
	Close() error
}

// Open returns the backend named by driver. SQL backends are migrated
// before they are returned.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		if path, ok := sqliteFilePath(dsn); ok {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, err
			}
		}
		return openSQL(ctx, "sqlite", dsn, "sqlite3", "sqlite", NewSQLiteStore)
	case DriverPostgres:
		return openSQL(ctx, "pgx", dsn, "postgres", "postgres", NewPostgresStore)
	}
	return nil, fmt.Errorf("%w: %q", common.ErrorUnknownDriver, driver)
}

func openSQL(ctx context.Context, sqlDriver, dsn, dialect, dir string, wrap func(*sql.DB) *SQLStore) (*SQLStore, error) {
	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect, dir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return wrap(db), nil
}

// sqliteFilePath reports the on-disk path behind a plain sqlite DSN.
// In-memory databases and file: URIs are left to the driver.
func sqliteFilePath(dsn string) (string, bool) {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return "", false
	}
	return dsn, true
}

// RunMigrations applies the embedded migrations in dir using the goose dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, dir)
}
