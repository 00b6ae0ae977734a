// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/db"
	"github.com/danielhkuo/todolists/store"
)

// ListsCmd returns the lists command
func ListsCmd(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print every list with its items and priorities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := db.Open(*cfg)
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			lists, err := store.New(gdb).AllLists(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(lists) == 0 {
				fmt.Fprintln(out, "No lists.")
				return nil
			}

			for _, list := range lists {
				fmt.Fprintf(out, "%s %s\n",
					color.New(color.Bold).Sprint(list.Title),
					color.New(color.FgHiBlack).Sprintf("(%s)", english.Plural(len(list.Items), "item", "")),
				)
				for _, item := range list.Items {
					fmt.Fprintf(out, "  - %s %s\n", item.Description, color.New(color.FgCyan).Sprintf("[%d]", item.Priority))
				}
			}
			return nil
		},
	}
}
