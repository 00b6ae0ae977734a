// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/todolists/models"
	"github.com/danielhkuo/todolists/store"
	"github.com/danielhkuo/todolists/testutil"
)

func TestParseItemLine(t *testing.T) {
	tests := []struct {
		raw      string
		wantDesc string
		wantPrio string
	}{
		{"Milk, 2", "Milk", "2"},
		{"  Milk  ,  2  ", "Milk", "2"},
		{"Tea, green, 4", "Tea", "4"},
		{"Eggs", "Eggs", ""},
		{"Eggs,", "Eggs", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			desc, prio := ParseItemLine(tt.raw)
			if desc != tt.wantDesc || prio != tt.wantPrio {
				t.Errorf("ParseItemLine(%q) = (%q, %q), want (%q, %q)", tt.raw, desc, prio, tt.wantDesc, tt.wantPrio)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty input is one empty line", "", []string{""}},
		{"single line", "Milk, 2", []string{"Milk, 2"}},
		{"two lines", "Milk, 2\nEggs, 1", []string{"Milk, 2", "Eggs, 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitLines(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestItem_Create(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)

	tests := []struct {
		raw      string
		wantDesc string
		wantPrio int
	}{
		{"Milk, 2", "Milk", 2},
		{"Tea, green, 4", "Tea", 4},
		{"Bread", "Bread", 0},
		{"Butter, -1", "Butter", -1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			item, err := Item(context.Background(), st, tt.raw)
			if err != nil {
				t.Fatalf("Item() error = %v", err)
			}
			if item.ID == 0 {
				t.Error("expected item to be persisted")
			}
			if item.Description != tt.wantDesc || item.Priority != tt.wantPrio {
				t.Errorf("got %q (%d), want %q (%d)", item.Description, item.Priority, tt.wantDesc, tt.wantPrio)
			}
		})
	}
}

func TestItem_ExistingKeepsPriority(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)
	ctx := context.Background()

	first, err := Item(ctx, st, "Milk, 2")
	if err != nil {
		t.Fatalf("first Item() error = %v", err)
	}
	second, err := Item(ctx, st, "Milk, 9")
	if err != nil {
		t.Fatalf("second Item() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected the same item, got ids %d and %d", first.ID, second.ID)
	}
	if second.Priority != 2 {
		t.Errorf("expected priority to stay 2, got %d", second.Priority)
	}
	if n := testutil.CountRows(t, gdb, "items"); n != 1 {
		t.Errorf("expected exactly 1 item, got %d", n)
	}
}

func TestItem_ExistingIgnoresBadPriority(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)
	testutil.CreateTestItem(t, gdb, "Milk", 2)

	item, err := Item(context.Background(), st, "Milk, lots")
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	if item.Priority != 2 {
		t.Errorf("expected priority 2, got %d", item.Priority)
	}
}

func TestItem_Errors(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"non-integer priority", "Milk, lots", ErrInvalidPriority},
		{"description too long", strings.Repeat("x", models.MaxFieldLength+1) + ", 1", ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Item(context.Background(), st, tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if n := testutil.CountRows(t, gdb, "items"); n != 0 {
		t.Errorf("expected no items after failures, got %d", n)
	}
}

func TestItem_EmptyLine(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)

	item, err := Item(context.Background(), st, "")
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	if item.Description != "" || item.Priority != 0 {
		t.Errorf("expected degenerate empty item, got %q (%d)", item.Description, item.Priority)
	}
}

func TestList_Groceries(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)
	ctx := context.Background()

	list, err := List(ctx, st, "Groceries", SplitLines("Milk, 2\nEggs, 1"))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.ID == 0 {
		t.Fatal("expected list to be persisted")
	}

	loaded, err := st.FindListByID(ctx, list.ID)
	if err != nil {
		t.Fatalf("FindListByID() error = %v", err)
	}
	want := map[string]int{"Milk": 2, "Eggs": 1}
	if len(loaded.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(loaded.Items))
	}
	for _, item := range loaded.Items {
		if p, ok := want[item.Description]; !ok || p != item.Priority {
			t.Errorf("unexpected item %q (%d)", item.Description, item.Priority)
		}
	}

	// Resubmitting keeps Milk at 2 and adds no duplicate link
	if _, err := List(ctx, st, "Groceries", SplitLines("Milk, 9")); err != nil {
		t.Fatalf("second List() error = %v", err)
	}

	if n := testutil.CountRows(t, gdb, "lists"); n != 1 {
		t.Errorf("expected 1 list, got %d", n)
	}
	if n := testutil.CountRows(t, gdb, "items"); n != 2 {
		t.Errorf("expected 2 items, got %d", n)
	}
	links, err := st.CountLinks(ctx)
	if err != nil {
		t.Fatalf("CountLinks() error = %v", err)
	}
	if links != 2 {
		t.Errorf("expected 2 links, got %d", links)
	}
	milk, err := st.FindItemByDescription(ctx, "Milk")
	if err != nil {
		t.Fatalf("FindItemByDescription() error = %v", err)
	}
	if milk.Priority != 2 {
		t.Errorf("expected Milk to keep priority 2, got %d", milk.Priority)
	}
}

func TestList_SameTitleTwice(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)
	ctx := context.Background()

	first, err := List(ctx, st, "Errands", SplitLines("Post office, 1"))
	if err != nil {
		t.Fatalf("first List() error = %v", err)
	}
	second, err := List(ctx, st, "Errands", SplitLines("Bank, 2"))
	if err != nil {
		t.Fatalf("second List() error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected one list, got ids %d and %d", first.ID, second.ID)
	}
	if n := testutil.CountRows(t, gdb, "lists"); n != 1 {
		t.Errorf("expected 1 list, got %d", n)
	}

	loaded, err := st.FindListByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("FindListByID() error = %v", err)
	}
	if len(loaded.Items) != 2 {
		t.Errorf("expected both items on the list, got %d", len(loaded.Items))
	}
}

func TestList_EmptyItems(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)

	list, err := List(context.Background(), st, "Empty", SplitLines(""))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Description != "" {
		t.Errorf("expected one degenerate item, got %+v", list.Items)
	}
}

func TestList_PartialFailure(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)

	_, err := List(context.Background(), st, "Groceries", SplitLines("Milk, 2\nEggs, lots"))
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}

	// Milk was committed before Eggs failed; the list was never saved
	if n := testutil.CountRows(t, gdb, "items"); n != 1 {
		t.Errorf("expected 1 committed item, got %d", n)
	}
	if n := testutil.CountRows(t, gdb, "lists"); n != 0 {
		t.Errorf("expected no list, got %d", n)
	}
}

func TestList_TitleTooLong(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	st := store.New(gdb)

	_, err := List(context.Background(), st, strings.Repeat("t", models.MaxFieldLength+1), SplitLines("Milk, 2"))
	if !errors.Is(err, ErrTooLong) {
		t.Errorf("expected ErrTooLong, got %v", err)
	}
}

// failingStore reports a storage failure on every lookup
type failingStore struct{}

var errStorage = errors.New("disk on fire")

func (failingStore) FindItemByDescription(context.Context, string) (*models.TodoItem, error) {
	return nil, errStorage
}
func (failingStore) CreateItem(context.Context, *models.TodoItem) error { return errStorage }
func (failingStore) FindListByTitle(context.Context, string) (*models.TodoList, error) {
	return nil, errStorage
}
func (failingStore) SaveList(context.Context, *models.TodoList) error { return errStorage }

func TestStorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()

	if _, err := Item(ctx, failingStore{}, "Milk, 2"); !errors.Is(err, errStorage) {
		t.Errorf("Item: expected storage error, got %v", err)
	}
	if _, err := List(ctx, failingStore{}, "Groceries", []string{"Milk, 2"}); !errors.Is(err, errStorage) {
		t.Errorf("List: expected storage error, got %v", err)
	}
}
