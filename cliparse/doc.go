// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

BindFlags registers the flags on a cobra command; Resolve fills in the
rest once cobra has parsed them:

	cliparse.BindFlags(root.PersistentFlags(), &cfg)
	// ... in PersistentPreRunE
	cfg, err = cliparse.Resolve(cmd.Flags(), cfg)

Resolve inspects the flag set to tell an explicit --tracing=false from an
unset flag.

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: connection string or SQLite file path
  - DatabaseType: postgres, pgx, sqlite or sqlite3 (default: postgres)
  - ConfigFile: optional YAML file
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)
  - Tracing: AWS X-Ray tracing (default: off)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  Database type
	-c, --config         YAML config file
	--log-level          Log level
	--log-format         Log format
	--tracing            Enable tracing

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	CONFIG_PATH    → -c
	LOG_LEVEL      → --log-level
	LOG_FORMAT     → --log-format
	ENABLE_TRACING → --tracing

A .env file in the working directory is loaded first; variables already
present in the environment are not overwritten.

# Config File

Settings missing from both flags and environment are read from the YAML
file, after ${VAR} expansion:

	port: 3000
	database:
	  type: postgres
	  url: ${DATABASE_URL}
	logging:
	  level: info
	  format: json
	tracing: false

CLI flags take precedence over environment variables, which take
precedence over the file.

# Validation

Resolve returns an error for a non-numeric or out-of-range port, an
unknown database type, log level or log format, and an unreadable
config file.
*/
package cliparse
