package pipeline

import (
	"fmt"

	"github.com/ozacod/helperprep/internal/pkg/utils/colors"
)

// report prints the manual steps for embedding the helper in the app bundle.
func (o *Orchestrator) report() {
	helperPath := o.project.ArtifactPath()
	w := o.opts.Out

	fmt.Fprintln(w)
	o.println(colors.Green, "Helper tool prepared successfully!")
	fmt.Fprintf(w, "Helper location: %s\n", helperPath)
	fmt.Fprintf(w, "Bundle location: %s\n", o.project.BundlePath())

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintln(w, "1. In Xcode, add a 'Copy Files' build phase")
	fmt.Fprintln(w, "2. Set destination to 'Wrapper' with subpath 'Contents/Library/LaunchServices'")
	fmt.Fprintf(w, "3. Add %s to this build phase\n", helperPath)
	fmt.Fprintln(w, "4. Build and run the app")
	fmt.Fprintln(w, "\nThe app will use SMJobBless to install the helper to /Library/PrivilegedHelperTools/")
}
