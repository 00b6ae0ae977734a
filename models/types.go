// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MaxFieldLength bounds titles and descriptions (the column size)
const MaxFieldLength = 225

// Persisted types

// TodoItem is one row of the items table. Descriptions are unique only by
// convention: callers look before they insert.
type TodoItem struct {
	ID          uint       `gorm:"primaryKey"`
	Description string     `gorm:"size:225"`
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Lists       []TodoList `gorm:"many2many:on_list;joinForeignKey:ItemID;joinReferences:ListID"`
}

func (TodoItem) TableName() string { return "items" }

// TodoList is one row of the lists table; Items come from the on_list join table
type TodoList struct {
	ID        uint       `gorm:"primaryKey"`
	Title     string     `gorm:"size:225"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []TodoItem `gorm:"many2many:on_list;joinForeignKey:ListID;joinReferences:ItemID"`
}

func (TodoList) TableName() string { return "lists" }

// Form types

// CreateListForm is the decoded body of POST /
type CreateListForm struct {
	Name  string
	Items string
}

// UpdatePriorityForm is the decoded body of POST /update/{item}.
// Raw keeps what the user typed so the form can be re-rendered.
type UpdatePriorityForm struct {
	NewPriority int
	Raw         string
}

// FormErrors maps a form field name to its validation message
type FormErrors map[string]string

// Page types

// Page carries what every rendered page shows
type Page struct {
	Flashes []string
}

type IndexPage struct {
	Page
	Form   CreateListForm
	Errors FormErrors
}

type AllListsPage struct {
	Page
	Lists []TodoList
}

type ListPage struct {
	Page
	List TodoList
}

type UpdateItemPage struct {
	Page
	Description string
	Item        *TodoItem
	Form        UpdatePriorityForm
	Errors      FormErrors
}

type NotFoundPage struct {
	Page
	Message string
}

type ErrorPage struct {
	Page
	Message string
}
