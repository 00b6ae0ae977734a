// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cli builds the todolists command tree.

# Commands

	todolists serve     Create the schema and serve HTTP until SIGINT/SIGTERM
	todolists migrate   Create or upgrade the schema and report each table
	todolists lists     Print every list with its items and priorities

All configuration flags are persistent on the root command and resolved once
in PersistentPreRunE (see package cliparse), which also installs the slog
handler on stderr. serve additionally requires a session secret for signing
flash cookies.
*/
package cli
