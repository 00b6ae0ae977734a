// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/todolists/cliparse"
	"github.com/danielhkuo/todolists/db"
	"github.com/danielhkuo/todolists/router"
)

// ServeCmd returns the serve command
func ServeCmd(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Create the schema and serve HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireSessionSecret(); err != nil {
				return err
			}

			gdb, err := db.Open(*cfg)
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			if err := db.CreateSchema(gdb); err != nil {
				return err
			}
			slog.Info("Database schema ready", "type", cfg.DatabaseType)

			server := http.Server{
				Handler: router.NewRouter(gdb, *cfg),
				Addr:    ":" + strconv.Itoa(cfg.Port),
			}

			// signal.Notify requires the channel to be buffered
			ctrlc := make(chan os.Signal, 1)
			signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(ctrlc)
			go func() {
				<-ctrlc
				server.Close()
			}()

			slog.Info("Listening", "port", cfg.Port)
			err = server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			slog.Info("Server closed")
			return nil
		},
	}
}
