// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"

	"github.com/danielhkuo/todolists/cliparse"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain path", "todo.db", "todo.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"existing query", "todo.db?mode=rw", "todo.db?mode=rw&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sqliteDSN(tt.path); got != tt.want {
				t.Errorf("sqliteDSN(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOpenAndCreateSchema(t *testing.T) {
	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "schema.db"),
	}

	gdb, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer Close(gdb)

	// Twice: the second run must be a no-op
	for i := 0; i < 2; i++ {
		if err := CreateSchema(gdb); err != nil {
			t.Fatalf("CreateSchema() run %d error = %v", i+1, err)
		}
	}

	for _, table := range Tables {
		if !HasTable(gdb, table) {
			t.Errorf("expected table %s to exist", table)
		}
	}

	for _, col := range []string{"item_id", "list_id"} {
		if !gdb.Migrator().HasColumn("on_list", col) {
			t.Errorf("expected on_list.%s column", col)
		}
	}
}

func TestOpen_UnknownType(t *testing.T) {
	if _, err := Open(cliparse.Config{DatabaseType: "oracle", DatabaseURL: "x"}); err == nil {
		t.Error("expected error for unknown database type")
	}
}
