package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ozacod/helperprep/internal/pkg/utils/colors"
	"github.com/ozacod/helperprep/internal/pkg/utils/terminal"
	"github.com/ozacod/helperprep/pkg/config"
	"github.com/spf13/cobra"
)

// Icon constants for consistent output
const (
	IconSuccess = "✓"
	IconError   = "✗"
)

// Version is the helperprep version
const Version = "1.0.0"

// stderr is where PrintError writes; tests swap it out
var stderr io.Writer = os.Stderr

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stderr, colors.Wrap(colorEnabled(stderr), colors.Red, IconError+" "+msg))
}

// colorEnabled reports whether output to w should be colored
func colorEnabled(w io.Writer) bool {
	return !colors.Disabled() && terminal.IsTerminal(w)
}

// addConfigFlag registers --config on cmd
func addConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", fmt.Sprintf("Project config file (default %s if present)", config.DefaultProjectFile))
}

// loadProject resolves the configuration selected by --config
func loadProject(cmd *cobra.Command) (*config.Project, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, path != "")
}
