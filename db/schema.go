// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/danielhkuo/todolists/models"
)

// Tables lists every table CreateSchema manages, join table last
var Tables = []string{"items", "lists", "on_list"}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - AutoMigrate only adds what is missing.
func CreateSchema(gdb *gorm.DB) error {
	// Migrating TodoList also creates the on_list join table
	if err := gdb.AutoMigrate(&models.TodoItem{}, &models.TodoList{}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// HasTable reports whether the named table exists
func HasTable(gdb *gorm.DB, name string) bool {
	return gdb.Migrator().HasTable(name)
}
