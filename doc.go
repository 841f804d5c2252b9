// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Acme Reservations API server.

The API manages customers, restaurants, and the reservations linking
them, stored in Postgres or SQLite.

# Starting the Server

	acme-reservations serve

With no subcommand, serve is assumed. Configuration comes from flags,
environment variables, a .env file, or a YAML file:

	DATABASE_URL=postgres://... acme-reservations
	acme-reservations serve -p 3000 -t sqlite -d reservations.db

serve creates missing tables but never drops anything.

# Resetting the Database

	acme-reservations reset [--seed]

Drops and recreates the customer, restaurant and reservation tables.
With --seed it loads demo data and prints curl commands to try against
it. This destroys every row and must not be pointed at data you want to
keep.

# Configuration

  - DATABASE_URL (-d): connection string or SQLite path
  - DATABASE_TYPE (-t): postgres, pgx, sqlite or sqlite3 (default: postgres)
  - PORT (-p): server port (default: 3000)
  - CONFIG_PATH (-c): YAML config file
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output
  - ENABLE_TRACING (--tracing): AWS X-Ray for HTTP and Postgres

# Architecture

  - handlers: HTTP request handlers (customers, restaurants, reservations)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - store: Data access, one statement per operation
  - db: Connection, schema and driver error classification
  - models: Domain and request types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
