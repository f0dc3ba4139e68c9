package main

import (
	"os"

	"squill.dev/squill/internal/cli"
	"squill.dev/squill/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	tui.ConfigureColor(os.Stdout)

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
