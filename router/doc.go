// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the todo list pages.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Pages (each registered for both GET and POST):

	/                                - Create list form; POST reconciles the list
	/all_lists                       - Every list with a delete control
	/list/{id}                       - One list with update/delete controls per item
	/update/{item}                   - Priority form; POST updates the named item
	/delete/{list_title}             - Delete the list with this title
	/delete_item/{item_description}  - Delete the item with this description

Lists and items in delete and update paths are named by title or description,
not by id. Names are path-escaped in links, so a title containing "/" still
fits in one segment.

Any other path or method gets the mux's default 404 or 405.
*/
package router
