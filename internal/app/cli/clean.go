package cli

import (
	"fmt"
	"os"

	"github.com/ozacod/helperprep/internal/pkg/utils/colors"
	"github.com/spf13/cobra"
)

func CleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the built helper",
		Long: `Remove the helper binary from the output directory.

The output directory itself is removed only when it is left empty.
Nothing outside the output directory is touched.`,
		Args: cobra.NoArgs,
		RunE: runClean,
	}
}

func runClean(cmd *cobra.Command, _ []string) error {
	project, err := loadProject(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := colorEnabled(out)
	artifact := project.ArtifactPath()

	if err := os.Remove(artifact); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", artifact, err)
		}
		fmt.Fprintf(out, "Nothing to clean: %s does not exist\n", artifact)
	} else {
		fmt.Fprintln(out, colors.Wrap(color, colors.Green, fmt.Sprintf("%s Removed %s", IconSuccess, artifact)))
	}

	entries, err := os.ReadDir(project.BuildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", project.BuildDir, err)
	}
	if len(entries) == 0 {
		if err := os.Remove(project.BuildDir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", project.BuildDir, err)
		}
		fmt.Fprintln(out, colors.Wrap(color, colors.Green, fmt.Sprintf("%s Removed %s/", IconSuccess, project.BuildDir)))
	}

	return nil
}
