// Package toolchain drives the external compiler and code-signing tools.
//
// Each tool call is described by an Invocation and executed by a Runner,
// which captures the tool's output and turns a non-zero exit into a
// *errors.ToolError carrying the tool's stderr.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"

	perrors "github.com/ozacod/helperprep/pkg/errors"
)

var execCommand = exec.CommandContext

// Pipeline phases
const (
	PhaseCompile = "compile"
	PhaseSign    = "sign"
)

// installHints maps default tool names to how they are installed
var installHints = map[string]string{
	"swiftc":   "xcode-select --install",
	"codesign": "xcode-select --install",
}

// Invocation is a single external command
type Invocation struct {
	Phase string
	Name  string
	Args  []string
}

// Compile builds an optimized helper binary from source into output.
func Compile(compiler, source, output string) Invocation {
	return Invocation{
		Phase: PhaseCompile,
		Name:  compiler,
		Args:  []string{source, "-o", output, "-O"},
	}
}

// Sign signs target in place with identity, using identifier as the code
// signing identifier and enabling the hardened runtime.
func Sign(signer, identity, identifier, target string) Invocation {
	return Invocation{
		Phase: PhaseSign,
		Name:  signer,
		Args: []string{
			"--force",
			"--sign", identity,
			"--identifier", identifier,
			"--options", "runtime",
			target,
		},
	}
}

// String renders the invocation as a shell command line
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, quote(i.Name))
	for _, a := range i.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'$`\\()") {
		return strconv.Quote(s)
	}
	return s
}

// Runner executes invocations and blocks until each one exits.
type Runner struct {
	// Stdout and Stderr receive the tool's streams when Verbose is set.
	Stdout io.Writer
	Stderr io.Writer

	// Verbose streams tool output live instead of capturing it.
	Verbose bool
}

// Run executes inv. Any failure, including a missing executable, is
// returned as a *errors.ToolError.
func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	cmd := execCommand(ctx, inv.Name, inv.Args...)

	var stderr bytes.Buffer
	if r.Verbose {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	} else {
		// stdout is discarded on success, matching a plain captured run
		cmd.Stdout = io.Discard
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	toolErr := perrors.NewToolError(inv.Name, inv.Phase, exitCode, stderr.String(), err)
	if errors.Is(err, exec.ErrNotFound) {
		toolErr.InstallCmd = installHints[inv.Name]
	}
	return toolErr
}
