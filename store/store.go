// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/danielhkuo/todolists/models"
)

var ErrNotFound = errors.New("not found")

// Store is the entity store for items, lists and their on_list associations.
// Every mutation commits immediately; there is no unit of work spanning calls.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindItemByDescription returns the lowest-id item with exactly this description
func (s *Store) FindItemByDescription(ctx context.Context, description string) (*models.TodoItem, error) {
	var item models.TodoItem
	err := s.db.WithContext(ctx).
		Where("description = ?", description).
		Order("id").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item %q: %w", description, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// CreateItem persists a new item and fills in its ID
func (s *Store) CreateItem(ctx context.Context, item *models.TodoItem) error {
	if err := s.db.WithContext(ctx).Omit("Lists").Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// UpdateItemPriority sets and commits a new priority
func (s *Store) UpdateItemPriority(ctx context.Context, item *models.TodoItem, priority int) error {
	if err := s.db.WithContext(ctx).Model(item).Update("priority", priority).Error; err != nil {
		return fmt.Errorf("failed to update item priority: %w", err)
	}
	item.Priority = priority
	return nil
}

// DeleteItem removes the item's on_list rows and then the item. Lists are untouched.
func (s *Store) DeleteItem(ctx context.Context, item *models.TodoItem) error {
	if err := s.db.WithContext(ctx).Select(clause.Associations).Delete(item).Error; err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// AllItems returns every item ordered by id
func (s *Store) AllItems(ctx context.Context) ([]models.TodoItem, error) {
	var items []models.TodoItem
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// FindListByTitle returns the lowest-id list with exactly this title.
// Items are not loaded.
func (s *Store) FindListByTitle(ctx context.Context, title string) (*models.TodoList, error) {
	var list models.TodoList
	err := s.db.WithContext(ctx).
		Where("title = ?", title).
		Order("id").
		First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("list %q: %w", title, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return &list, nil
}

// FindListByID returns the list with its items ordered by id
func (s *Store) FindListByID(ctx context.Context, id uint) (*models.TodoList, error) {
	var list models.TodoList
	err := s.db.WithContext(ctx).
		Preload("Items", orderByID).
		First(&list, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("list %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return &list, nil
}

// AllLists returns every list with its items, ordered by id
func (s *Store) AllLists(ctx context.Context) ([]models.TodoList, error) {
	var lists []models.TodoList
	err := s.db.WithContext(ctx).
		Preload("Items", orderByID).
		Order("id").
		Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// SaveList inserts or updates the list and links every item in list.Items.
// The items themselves must already exist; their rows are not rewritten and
// links that already exist are skipped.
func (s *Store) SaveList(ctx context.Context, list *models.TodoList) error {
	if err := s.db.WithContext(ctx).Omit("Items.*").Save(list).Error; err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}
	return nil
}

// DeleteList removes the list's on_list rows and then the list. Items are untouched.
func (s *Store) DeleteList(ctx context.Context, list *models.TodoList) error {
	if err := s.db.WithContext(ctx).Select(clause.Associations).Delete(list).Error; err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

// CountLinks returns the number of on_list rows
func (s *Store) CountLinks(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Table("on_list").Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return n, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
