// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /all_lists", middleware.WithLogging(handler))

Every request gets an id, reused from the X-Request-ID header when present
and generated as a UUID otherwise. The id is echoed in the response header
and available to handlers:

	id := middleware.RequestID(r.Context())

Completion is logged at info level with the request id, method, path, status
and duration_ms. Request start is logged at debug level.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
