// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/db"
	"github.com/danielhkuo/todolists/models"
)

// TestSessionSecret signs flash cookies in tests
const TestSessionSecret = "test-session-secret"

// SetupTestDB creates a fresh sqlite database with the full schema.
// Each test gets its own file under t.TempDir().
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	gdb, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close(gdb)
	})

	if err := db.CreateSchema(gdb); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return gdb
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  cliparse.DatabaseSQLite,
		DatabaseURL:   filepath.Join(t.TempDir(), "todolists_test.db"),
		SessionSecret: TestSessionSecret,
		LogLevel:      "error",
	}
}

// CreateTestItem inserts an item directly and returns it
func CreateTestItem(t *testing.T, gdb *gorm.DB, description string, priority int) models.TodoItem {
	t.Helper()

	item := models.TodoItem{Description: description, Priority: priority}
	if err := gdb.Create(&item).Error; err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return item
}

// CreateTestList inserts a list linked to the given items and returns it
func CreateTestList(t *testing.T, gdb *gorm.DB, title string, items ...models.TodoItem) models.TodoList {
	t.Helper()

	list := models.TodoList{Title: title, Items: items}
	if err := gdb.Omit("Items.*").Create(&list).Error; err != nil {
		t.Fatalf("Failed to create test list: %v", err)
	}
	return list
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, gdb *gorm.DB, table string) int64 {
	t.Helper()

	var n int64
	if err := gdb.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates an HTTP test request with a url-encoded form body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 pointing at location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected redirect status %d, got %d. Body: %s", http.StatusSeeOther, w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertBodyContains checks that every fragment appears in the response body
func AssertBodyContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("Expected body to contain %q. Body: %s", f, body)
		}
	}
}

// ResponseCookies returns the cookies set on w, for replaying on the next request
func ResponseCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return w.Result().Cookies()
}
