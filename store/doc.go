// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the entity store for todo items and lists.

A Store wraps the GORM handle it is given; there is no package-level
connection:

	st := store.New(gdb)
	item, err := st.FindItemByDescription(ctx, "Milk")
	if errors.Is(err, store.ErrNotFound) {
		// absent
	}

Lookups by description or title return the lowest id when duplicates exist.
Nothing in the schema prevents duplicates; find-or-create lives in the
reconcile package and is only as safe as the database's default isolation.

Deleting an item or a list removes its on_list rows first and never touches
the other side of the association.
*/
package store
