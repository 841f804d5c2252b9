// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates the customer, restaurant and reservation tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sqlx.DB) error {
	for _, stmt := range createStatements(conn.DriverName()) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Reset drops all three tables and recreates them empty.
// Destroys every row; never called by the server itself.
func Reset(ctx context.Context, conn *sqlx.DB) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	// Children first so the foreign keys never dangle
	for _, table := range []string{"reservation", "restaurant", "customer"} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}

	for _, stmt := range createStatements(conn.DriverName()) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	slog.Info("database reset", "database_type", conn.DriverName())
	return nil
}

func createStatements(driverName string) []string {
	if IsSQLite(driverName) {
		return sqliteSchema
	}
	return postgresSchema
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS customer (
    id UUID PRIMARY KEY,
    name VARCHAR
)`,
	`CREATE TABLE IF NOT EXISTS restaurant (
    id UUID PRIMARY KEY,
    name VARCHAR
)`,
	`CREATE TABLE IF NOT EXISTS reservation (
    id UUID PRIMARY KEY,
    reservation_date DATE NOT NULL,
    party_count INTEGER NOT NULL,
    customer_id UUID NOT NULL REFERENCES customer(id),
    restaurant_id UUID NOT NULL REFERENCES restaurant(id)
)`,
}

// SQLite has no UUID or strict DATE type, so the CHECKs reject what
// Postgres would refuse to parse.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customer (
    id TEXT PRIMARY KEY,
    name TEXT
)`,
	`CREATE TABLE IF NOT EXISTS restaurant (
    id TEXT PRIMARY KEY,
    name TEXT
)`,
	`CREATE TABLE IF NOT EXISTS reservation (
    id TEXT PRIMARY KEY,
    reservation_date DATE NOT NULL CHECK (date(reservation_date) IS NOT NULL AND reservation_date = date(reservation_date)),
    party_count INTEGER NOT NULL CHECK (typeof(party_count) = 'integer'),
    customer_id TEXT NOT NULL REFERENCES customer(id),
    restaurant_id TEXT NOT NULL REFERENCES restaurant(id)
)`,
}
