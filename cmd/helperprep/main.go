package main

import (
	"github.com/ozacod/helperprep/internal/app/cli"
	"github.com/ozacod/helperprep/internal/app/cli/root"
)

func main() {
	rootCmd := root.GetRootCmd()

	// Running with no subcommand prepares the helper
	cli.ConfigurePrepare(rootCmd)

	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.CleanCmd())

	root.Execute()
}
