// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the embedded HTML pages.
//
// Each page template defines a "title" and a "content" block that the shared
// layout wraps. The layout shows any pending flash messages from the page
// data's Flashes field. Templates can call ago (relative time), plural
// ("3 items") and pathEscape (for titles and descriptions placed in URLs).
package views
