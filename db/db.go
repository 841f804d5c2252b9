// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-xray-sdk-go/xray"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/acme-reservations/cliparse"
)

func init() {
	// sqlx does not know the modernc driver name
	sqlx.BindDriver(cliparse.TypeSQLite, sqlx.QUESTION)
}

// IsSQLite reports whether the database type uses the SQLite dialect
func IsSQLite(dbType string) bool {
	return dbType == cliparse.TypeSQLite || dbType == cliparse.TypeSQLite3
}

// Open connects to the configured database and verifies the connection.
// The returned handle is owned by the caller.
func Open(ctx context.Context, cfg cliparse.Config) (*sqlx.DB, error) {
	if !cliparse.ValidDatabaseType(cfg.DatabaseType) {
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	driverName := cfg.DatabaseType
	dsn := cfg.DatabaseURL
	if IsSQLite(driverName) {
		dsn = sqliteDSN(driverName, dsn)
	}

	var conn *sql.DB
	var err error
	if cfg.Tracing && !IsSQLite(driverName) {
		conn, err = xray.SQLContext(driverName, dsn)
	} else {
		if cfg.Tracing {
			slog.Warn("tracing is not supported for sqlite connections", "database_type", driverName)
		}
		conn, err = sql.Open(driverName, dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer per SQLite file; also keeps the foreign_keys pragma on a
	// single connection.
	if IsSQLite(driverName) {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqlx.NewDb(conn, driverName), nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by default
func sqliteDSN(driverName, dsn string) string {
	param := "_pragma=foreign_keys(1)"
	if driverName == cliparse.TypeSQLite3 {
		param = "_foreign_keys=1"
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + param
}
