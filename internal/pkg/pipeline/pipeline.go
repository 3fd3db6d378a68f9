// Package pipeline runs the helper preparation steps in order.
//
// The orchestrator holds a fixed list of fallible steps: ensure the output
// directory, compile, sign. It stops at the first error and returns it
// unchanged. Nothing is cleaned up after a failure; a binary that compiled
// but failed to sign stays in the output directory.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ozacod/helperprep/internal/pkg/toolchain"
	"github.com/ozacod/helperprep/internal/pkg/utils/colors"
	"github.com/ozacod/helperprep/pkg/config"
	perrors "github.com/ozacod/helperprep/pkg/errors"
)

var mkdirAll = os.MkdirAll

// Runner executes a single external tool invocation
type Runner interface {
	Run(ctx context.Context, inv toolchain.Invocation) error
}

// Options controls how the orchestrator reports progress
type Options struct {
	// Out receives progress messages and the final report.
	Out io.Writer

	// Color enables ANSI colors on Out.
	Color bool

	// Progress shows a spinner while a tool runs.
	Progress bool

	// Verbose prints each command before it runs.
	Verbose bool

	// DryRun prints the commands without running anything.
	DryRun bool
}

// Step is one stage of the pipeline
type Step struct {
	Name    string
	Message string
	// Invocation is nil for steps that do not shell out.
	Invocation *toolchain.Invocation
	run        func(ctx context.Context) error
}

// Result describes a completed run
type Result struct {
	ArtifactPath string
	Completed    []string
	DryRun       bool
}

// Orchestrator prepares a helper tool for SMJobBless
type Orchestrator struct {
	project *config.Project
	runner  Runner
	opts    Options
}

// New creates an orchestrator for project. Tool calls go through runner.
func New(project *config.Project, runner Runner, opts Options) *Orchestrator {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Orchestrator{
		project: project,
		runner:  runner,
		opts:    opts,
	}
}

// Steps returns the pipeline in execution order
func (o *Orchestrator) Steps() []Step {
	p := o.project
	artifact := p.ArtifactPath()
	compile := toolchain.Compile(p.Compiler, p.Source, artifact)
	sign := toolchain.Sign(p.Signer, p.SigningIdentity, p.HelperID, artifact)

	return []Step{
		{
			Name: "mkdir",
			run: func(context.Context) error {
				if err := mkdirAll(p.BuildDir, 0755); err != nil {
					return perrors.NewBuildError("mkdir", fmt.Sprintf("failed to create %s", p.BuildDir), err)
				}
				return nil
			},
		},
		{
			Name:       toolchain.PhaseCompile,
			Message:    "Building helper tool...",
			Invocation: &compile,
			run: func(ctx context.Context) error {
				return o.runner.Run(ctx, compile)
			},
		},
		{
			Name:       toolchain.PhaseSign,
			Message:    "Signing helper...",
			Invocation: &sign,
			run: func(ctx context.Context) error {
				return o.runner.Run(ctx, sign)
			},
		},
	}
}

// Run executes every step in order and prints the integration report on success.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	result := &Result{
		ArtifactPath: o.project.ArtifactPath(),
		DryRun:       o.opts.DryRun,
	}

	o.println(colors.Cyan, "Preparing helper tool for SMJobBless...")

	steps := o.Steps()
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if step.Message != "" {
			o.println(colors.Cyan, step.Message)
		}

		if o.opts.DryRun {
			o.println(colors.Gray, "  $ "+o.describe(step))
			result.Completed = append(result.Completed, step.Name)
			continue
		}
		if o.opts.Verbose {
			o.println(colors.Gray, "  $ "+o.describe(step))
		}

		var err error
		if o.opts.Progress && step.Invocation != nil {
			err = spin(o.opts.Out, i, len(steps)-1, step.Name, func() error { return step.run(ctx) })
		} else {
			err = step.run(ctx)
		}
		if err != nil {
			return result, err
		}
		result.Completed = append(result.Completed, step.Name)
	}

	if o.opts.DryRun {
		fmt.Fprintln(o.opts.Out)
		o.println(colors.Yellow, "Dry run: nothing was executed.")
		fmt.Fprintf(o.opts.Out, "Helper would be written to: %s\n", result.ArtifactPath)
		return result, nil
	}

	o.report()
	return result, nil
}

func (o *Orchestrator) describe(step Step) string {
	if step.Invocation != nil {
		return step.Invocation.String()
	}
	return "mkdir -p " + o.project.BuildDir
}

func (o *Orchestrator) println(color, msg string) {
	fmt.Fprintln(o.opts.Out, colors.Wrap(o.opts.Color, color, msg))
}
