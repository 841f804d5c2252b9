// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer: one method per access pattern,
each a single parameterized statement.

	st := store.New(conn)
	kim, err := st.CreateCustomer(ctx, &name)

Queries are written with ? placeholders and passed through sqlx Rebind,
so the same SQL runs on Postgres ($1) and SQLite (?).

# Operations

  - CreateCustomer / FetchCustomers
  - CreateRestaurant / FetchRestaurants
  - CreateReservation / FetchReservations
  - DestroyReservation(id, customerID)

Fetches return rows in database order and an empty slice when the table
is empty. DestroyReservation matches on both id and customer_id and
reports success whether or not a row was deleted.

Errors wrap the driver error; use db.Classify to tell a foreign key or
NOT NULL violation from a connection failure.

# Seeding

Seed loads demo data for local development. It is called only by the
reset command.
*/
package store
