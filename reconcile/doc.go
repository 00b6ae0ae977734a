// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reconcile turns submitted text into stored items and lists.

Both operations are find-or-create keyed on a natural string field:

  - Item looks an item up by its exact description and creates it only when
    none exists. An existing item keeps its stored priority even when the
    submitted line carries a different one.
  - List looks a list up by its exact title, reconciles every submitted line
    into an item, attaches the items and saves the list.

# Input Format

Each line has the form "<description>, <priority>". Fields are trimmed; the
first field is the description and the last field is the priority:

	Milk, 2         -> Milk (2)
	Eggs            -> Eggs (0)
	Tea, green, 4   -> Tea (4)

A blank priority is 0. A priority that is not an integer fails with
ErrInvalidPriority, but only for a description that does not exist yet.

# Uniqueness

Nothing in the database enforces unique descriptions or titles. Uniqueness
comes from lookup-before-insert only, so concurrent submissions for the same
title can still produce duplicates. When duplicates exist the lowest id wins.
*/
package reconcile
