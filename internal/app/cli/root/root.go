package root

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ozacod/helperprep/internal/app/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "helperprep",
	Short: "Build and sign the privileged helper for SMJobBless",
	Long: `helperprep - prepare the LowData privileged helper

Compiles the helper tool, signs it with the Developer ID identity and prints
the steps needed to embed it in the app bundle for SMJobBless.`,
	Version: cli.Version,
	// Don't show usage on errors by default
	SilenceUsage:  true,
	SilenceErrors: true, // handle printing ourselves in Execute
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.PrintError("%v", err)
		stop()
		os.Exit(1)
	}
}

// GetRootCmd returns the root command (for testing or extending)
func GetRootCmd() *cobra.Command {
	return rootCmd
}
