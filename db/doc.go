// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and manages the schema.

# Connecting

Open returns a *gorm.DB for the configured backend:

	gdb, err := db.Open(cfg)
	defer db.Close(gdb)

Backends:

  - sqlite (default): modernc.org/sqlite, pure Go. DatabaseURL is a file path;
    foreign keys and a busy timeout are switched on through the DSN.
  - postgres: github.com/lib/pq. DatabaseURL is a connection string.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(gdb); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - GORM AutoMigrate only creates what is missing.

# Tables

  - items: id, description (225), priority, created_at, updated_at
  - lists: id, title (225), created_at, updated_at
  - on_list: item_id, list_id

# Relationships

	items *──* lists (via on_list)

There are no uniqueness constraints on items.description or lists.title.
*/
package db
