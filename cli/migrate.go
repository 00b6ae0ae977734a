// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/db"
)

// MigrateCmd returns the migrate command
func MigrateCmd(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := db.Open(*cfg)
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.CreateSchema(gdb); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Schema for %s (%s):\n", cfg.DatabaseType, cfg.DatabaseURL)

			missing := 0
			for _, table := range db.Tables {
				status := color.New(color.FgGreen).Sprint("OK")
				if !db.HasTable(gdb, table) {
					status = color.New(color.FgRed).Sprint("MISSING")
					missing++
				}
				fmt.Fprintf(out, "  %-8s %s\n", table, status)
			}

			if missing > 0 {
				return fmt.Errorf("%d tables missing after migration", missing)
			}
			return nil
		},
	}
}
