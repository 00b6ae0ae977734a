// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/logging"
)

// RootCmd returns the todolists command with every subcommand attached.
// Flags are persistent so each subcommand shares one resolved Config.
func RootCmd() *cobra.Command {
	var cfg cliparse.Config

	cmd := &cobra.Command{
		Use:   "todolists",
		Short: "Todo lists served as plain HTML forms",
		Long: `todolists keeps todo lists and their items in SQLite or PostgreSQL and
serves pages to create lists, change item priorities and delete lists or items.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.Resolve(&cfg); err != nil {
				return err
			}
			_, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)
			return err
		},
	}

	cliparse.RegisterFlags(cmd.PersistentFlags(), &cfg)

	cmd.AddCommand(ServeCmd(&cfg))
	cmd.AddCommand(MigrateCmd(&cfg))
	cmd.AddCommand(ListsCmd(&cfg))
	return cmd
}
