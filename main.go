package main

import (
	"os"

	"github.com/danielhkuo/todolists/cli"
)

func main() {
	// Errors are already printed by cobra
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
