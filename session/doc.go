// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session carries flash messages across a redirect.

# Signed Values

Sign and Verify use HMAC-SHA256 over the URL-safe base64 payload:

	value := session.Sign(secret, payload)      // "<payload>.<signature>"
	payload, err := session.Verify(secret, value)

Verify returns ErrInvalidSignature when the signature does not match, so a
client can read its flash messages but cannot forge them.

# Flash Messages

A Flasher keeps pending messages in the todolists_flash cookie as a signed
JSON array:

	flasher := session.NewFlasher(cfg.SessionSecret)
	flasher.AddFlash(w, r, "Deleted Milk")
	http.Redirect(w, r, "/all_lists", http.StatusSeeOther)

The next page calls Flashes, which returns the messages and expires the
cookie. A tampered or malformed cookie is logged and treated as empty.
*/
package session
