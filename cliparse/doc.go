// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Cobra commands register the same flags on their persistent flag set and
resolve after parsing:

	cliparse.RegisterFlags(root.PersistentFlags(), &cfg)
	// ... cobra parses ...
	err := cliparse.Resolve(&cfg)

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: file path for sqlite (default: todolists.db), connection string for postgres (required)
  - SessionSecret: Secret for flash cookie signing (required by serve)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  Database type
	--session-secret     Flash cookie secret
	--log-level          Log level
	-c, --config         TOML config file
	--env-file           .env file (default: .env)

# Resolution Order

Each field takes the first non-empty value from:

 1. CLI flag
 2. Environment variable (PORT, DATABASE_URL, DATABASE_TYPE, SESSION_SECRET, LOG_LEVEL)
 3. The .env file (never overrides the real environment)
 4. The TOML config file (--config or TODOLISTS_CONFIG)
 5. Default

# Config File

	port = 8080
	database_type = "postgres"
	database_url = "postgres://localhost/todolists?sslmode=disable"
	session_secret = "change-me"
	log_level = "debug"
*/
package cliparse
