// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/logging"
)

// sqlitePragmas are appended to every sqlite DSN (modernc _pragma syntax)
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// Open connects to the configured database and wraps it in a GORM handle.
// The database/sql connection comes from lib/pq (postgres) or modernc
// (sqlite) and is handed to the matching GORM dialector.
func Open(cfg cliparse.Config) (*gorm.DB, error) {
	var (
		conn      *sql.DB
		dialector gorm.Dialector
		err       error
	)

	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		dialector = postgres.New(postgres.Config{Conn: conn})
	case cliparse.DatabaseSQLite, "":
		// modernc.org/sqlite driver name is "sqlite"
		conn, err = sql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// One writer at a time; requests queue in the pool instead of on the file lock
		conn.SetMaxOpenConns(1)
		dialector = &sqlite.Dialector{DriverName: "sqlite", Conn: conn}
	default:
		return nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.GormLogger(),
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return gdb, nil
}

// Close closes the connection underneath gdb
func Close(gdb *gorm.DB) error {
	conn, err := gdb.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(sqlitePragmas, "&")
}
