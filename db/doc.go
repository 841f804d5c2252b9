// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and manages the schema.

# Connections

Open accepts any of the supported driver names:

  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib
  - sqlite: modernc.org/sqlite (pure Go)
  - sqlite3: github.com/mattn/go-sqlite3 (cgo builds only)

	conn, err := db.Open(ctx, cfg)

SQLite connections get foreign key enforcement and a single open connection.
With tracing enabled, Postgres connections are wrapped by the X-Ray SDK.

# Schema Creation

	if err := db.CreateSchema(ctx, conn); err != nil {
		return err
	}

Safe to call multiple times - uses IF NOT EXISTS. Reset drops and recreates
all tables and is only reachable from the reset command.

# Tables

  - customer: id, name
  - restaurant: id, name
  - reservation: id, reservation_date, party_count, customer_id, restaurant_id

# Relationships

	customer 1──* reservation
	restaurant 1──* reservation

Deleting a customer or restaurant that still has reservations is rejected.

# Errors

Classify maps driver errors from every supported driver onto
ErrForeignKeyViolation, ErrNotNullViolation, ErrCheckViolation and
ErrInvalidInput.
*/
package db
