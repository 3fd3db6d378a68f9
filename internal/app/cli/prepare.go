package cli

import (
	"github.com/ozacod/helperprep/internal/pkg/pipeline"
	"github.com/ozacod/helperprep/internal/pkg/toolchain"
	"github.com/ozacod/helperprep/internal/pkg/utils/terminal"
	"github.com/spf13/cobra"
)

// ConfigurePrepare makes cmd build, sign and report the helper when run
// without a subcommand.
func ConfigurePrepare(cmd *cobra.Command) {
	cmd.Args = cobra.NoArgs
	cmd.Example = `  helperprep              # Build, sign and print integration steps
  helperprep --dry-run    # Show the commands without running them
  helperprep -v           # Stream compiler and codesign output`
	cmd.RunE = runPrepare

	addConfigFlag(cmd)
	cmd.Flags().Bool("dry-run", false, "Print the commands without running them")
	cmd.Flags().BoolP("verbose", "v", false, "Stream tool output instead of capturing it")
	cmd.Flags().Bool("no-progress", false, "Disable the progress spinner")
}

func runPrepare(cmd *cobra.Command, _ []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	project, err := loadProject(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	runner := &toolchain.Runner{
		Stdout:  out,
		Stderr:  cmd.ErrOrStderr(),
		Verbose: verbose,
	}

	orch := pipeline.New(project, runner, pipeline.Options{
		Out:      out,
		Color:    colorEnabled(out),
		Progress: !noProgress && !verbose && terminal.IsTerminal(out),
		Verbose:  verbose,
		DryRun:   dryRun,
	})

	_, err = orch.Run(cmd.Context())
	return err
}
