// Package repomanager provides a RepositoryManager for each supported SQL
// driver, wiring repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/dbx"
	"github.com/dmitrijs2005/campusgate/internal/server/migrations"
	"github.com/dmitrijs2005/campusgate/internal/server/repositories/accounts"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Supported values of the DatabaseDriver setting.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

type driverInfo struct {
	sqlDriver    string
	gooseDialect string
	dialect      accounts.Dialect
}

var drivers = map[string]driverInfo{
	DriverPostgres: {sqlDriver: "pgx", gooseDialect: "postgres", dialect: accounts.Postgres},
	DriverSQLite:   {sqlDriver: "sqlite", gooseDialect: "sqlite3", dialect: accounts.SQLite},
	DriverMySQL:    {sqlDriver: "mysql", gooseDialect: "mysql", dialect: accounts.MySQL},
}

// SQLRepositoryManager vends SQL-backed repositories for a single driver and
// exposes a schema migration hook.
type SQLRepositoryManager struct {
	driver string
	info   driverInfo
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLRepository(db, m.info.dialect)
}

// Driver reports the configured driver name.
func (m *SQLRepositoryManager) Driver() string {
	return m.driver
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations points goose at the driver's embedded migration directory
// and applies it.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	sub, err := fs.Sub(migrations.Migrations, m.driver)
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", m.driver, err)
	}
	goose.SetBaseFS(sub)
	if err := goose.SetDialect(m.info.gooseDialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for the named driver.
func NewSQLRepositoryManager(driver string) (*SQLRepositoryManager, error) {
	info, ok := drivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	return &SQLRepositoryManager{driver: driver, info: info}, nil
}

// Open opens and pings a connection pool for the named driver.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	info, ok := drivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	dsn, err := normalizeDSN(driver, dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(info.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == DriverSQLite {
		// sqlite allows one writer; serialize through a single connection.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

// normalizeDSN makes mysql decode DATETIME columns into time.Time in UTC,
// which the accounts repository scans created_at into.
func normalizeDSN(driver, dsn string) (string, error) {
	if driver != DriverMySQL {
		return dsn, nil
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}
