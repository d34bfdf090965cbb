// Package bundb opens a bun.DB for one of the supported backends.
package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	_ "modernc.org/sqlite"
)

// Driver names accepted by Open.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the database named by driver and dsn and verifies the
// connection with a ping.
func Open(ctx context.Context, driver, dsn string) (*bun.DB, error) {
	var db *bun.DB

	switch strings.ToLower(driver) {
	case DriverMySQL, "":
		sqldb, err := mysqlConn(dsn)
		if err != nil {
			return nil, err
		}
		db = bun.NewDB(sqldb, mysqldialect.New())

	case DriverPostgres, "pg":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(sqldb, pgdialect.New())

	case DriverSQLite:
		sqldb, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %q: %w", dsn, err)
		}
		// A single connection keeps in-memory databases shared and avoids "database is locked".
		sqldb.SetMaxOpenConns(1)
		db = bun.NewDB(sqldb, sqlitedialect.New())

	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	return db, nil
}

// mysqlConn builds a connection pool for the legacy MySQL schema. Found-rows
// semantics are forced so that an UPDATE that matches a row without changing
// it still reports one affected row.
func mysqlConn(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mysql dsn: %w", err)
	}
	cfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create mysql connector: %w", err)
	}
	return sql.OpenDB(connector), nil
}
