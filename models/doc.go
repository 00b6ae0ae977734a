// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines persisted, form, and page types.

# Persisted Types

GORM models mapped onto three tables:

  - TodoItem → items (id, description, priority, created_at, updated_at)
  - TodoList → lists (id, title, created_at, updated_at)
  - on_list  → pure join table (item_id, list_id)

An item may sit on many lists and a list holds many items. Neither title nor
description carries a uniqueness constraint; find-or-create happens in the
reconcile package.

# Form Types

Typed, already-decoded request bodies:

  - CreateListForm: name, items (newline separated "description, priority")
  - UpdatePriorityForm: new_priority
  - FormErrors: field name → message

# Page Types

View models handed to the templates. Each embeds Page so flash messages
render on every page:

  - IndexPage, AllListsPage, ListPage, UpdateItemPage
  - NotFoundPage, ErrorPage

# Constants

	MaxFieldLength = 225
*/
package models
