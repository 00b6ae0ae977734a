// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/todolists/models"
	"github.com/danielhkuo/todolists/store"
)

var (
	ErrInvalidPriority = errors.New("priority must be an integer")
	ErrTooLong         = fmt.Errorf("longer than %d characters", models.MaxFieldLength)
)

// ItemStore is the part of the store that item reconciliation needs
type ItemStore interface {
	FindItemByDescription(ctx context.Context, description string) (*models.TodoItem, error)
	CreateItem(ctx context.Context, item *models.TodoItem) error
}

// ListStore is the part of the store that list reconciliation needs
type ListStore interface {
	ItemStore
	FindListByTitle(ctx context.Context, title string) (*models.TodoList, error)
	SaveList(ctx context.Context, list *models.TodoList) error
}

// ParseItemLine splits "<description>, <priority>" into its trimmed fields.
// The description is the first field and the priority is the last, so
// "a, b, 3" yields ("a", "3"). A line without a comma has no priority.
func ParseItemLine(raw string) (description, priority string) {
	fields := strings.Split(raw, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[0], fields[len(fields)-1]
}

// SplitLines breaks textarea input into item lines. Empty input is one empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Item finds the item named by raw or creates it.
// An existing item is returned as stored; the priority in raw is ignored.
func Item(ctx context.Context, st ItemStore, raw string) (*models.TodoItem, error) {
	description, priorityText := ParseItemLine(raw)

	item, err := st.FindItemByDescription(ctx, description)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if utf8.RuneCountInString(description) > models.MaxFieldLength {
		return nil, fmt.Errorf("description %q: %w", truncate(description), ErrTooLong)
	}
	priority, err := parsePriority(priorityText)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", description, err)
	}

	item = &models.TodoItem{Description: description, Priority: priority}
	if err := st.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List finds the list titled title or starts a new one, attaches the
// reconciled item for every line and saves it.
// Items created before a failing line stay committed.
func List(ctx context.Context, st ListStore, title string, lines []string) (*models.TodoList, error) {
	if utf8.RuneCountInString(title) > models.MaxFieldLength {
		return nil, fmt.Errorf("title %q: %w", truncate(title), ErrTooLong)
	}

	list, err := st.FindListByTitle(ctx, title)
	if errors.Is(err, store.ErrNotFound) {
		list = &models.TodoList{Title: title}
	} else if err != nil {
		return nil, err
	}

	for _, line := range lines {
		item, err := Item(ctx, st, line)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, *item)
	}

	if err := st.SaveList(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func parsePriority(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	p, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrInvalidPriority
	}
	return p, nil
}

func truncate(s string) string {
	const keep = 32
	if utf8.RuneCountInString(s) <= keep {
		return s
	}
	return string([]rune(s)[:keep]) + "..."
}
