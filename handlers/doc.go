// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the todo list pages.

# Handler Type

TodoHandler holds the entity store, the flash message session and the page
renderer. It is created from a GORM handle and Config:

	todoHandler := handlers.NewTodoHandler(db, cfg)

Every route accepts GET and POST. GET on a form route renders the form; POST
decodes the form into a typed struct from package models and validates it.

# Routes

	/                                 CreateList  reconcile the named list with its item lines
	/all_lists                        AllLists    every list with a delete control
	/list/{id}                        OneList     one list; unknown or malformed ids get 404
	/update/{item}                    UpdateItem  set an item's priority
	/delete/{list_title}              DeleteList  delete a list by title, keeping its items
	/delete_item/{item_description}   DeleteItem  delete an item by description, keeping its lists

Successful mutations redirect to /all_lists with 303 See Other. Flash messages
ride along in a signed cookie and are shown on the next rendered page:

  - "Updated priority of <item>" after an update
  - "Successfully deleted <title>" after a list delete (only when it existed)
  - "Deleted <description>" after an item delete (always)

# Form Validation

The create-list name is trimmed and required, and may not exceed 225
characters. Items are one per line as "description, priority"; a
non-integer priority for a new item fails the form.

new_priority must be a non-zero integer. Zero is rejected as missing.

Invalid forms are re-rendered with 400 and nothing is written. Updating an
item that does not exist re-renders the form with 404, no flash and no
redirect.

# Errors

Storage failures render the error page with 500 and are logged with
slog.Error along with the request id. Lookups that find nothing are never
logged as errors.
*/
package handlers
