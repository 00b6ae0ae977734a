// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the todolists server.

todolists manages todo lists and their items through server-rendered HTML
forms. Lists and items are found or created by title and description, so
submitting the same list twice extends it instead of duplicating it.

# Starting the Server

The server needs a session secret for signing flash cookies:

	SESSION_SECRET=... go run . serve

Or with flags, against PostgreSQL:

	go run . serve -p 5000 -t postgres -d "postgres://..." --session-secret ...

Other commands:

	go run . migrate   # create the schema and report each table
	go run . lists     # print every list with its items

# Configuration

Settings come from flags, then environment variables, then a .env file, then
an optional TOML file (--config or TODOLISTS_CONFIG), then defaults:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL URL (default: todolists.db)
  - SESSION_SECRET (--session-secret): Flash cookie signing key (required by serve)
  - LOG_LEVEL (--log-level): debug, info, warn or error (default: info)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - cli: Command tree (serve, migrate, lists)
  - router: Route definitions using Go 1.22+ routing
  - handlers: HTTP request handlers for the todo pages
  - middleware: Request logging with request ids
  - reconcile: Find-or-create for items and lists
  - store: GORM entity store
  - session: Signed flash message cookies
  - views: Embedded HTML templates
  - models: Persisted, form and page types
  - db: Connection and schema creation
  - cliparse: Configuration parsing
  - logging: slog handler setup

See package documentation for each component.
*/
package main
