package main

import (
	"fmt"
	"log/slog"

	mdsite "github.com/alnah/go-mdsite"
)

// newLogger builds the CLI logger honoring quiet/verbose flags.
func newLogger(deps *Dependencies, f *commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))
}

// runBuild renders the project and returns the exit code.
func runBuild(args []string, deps *Dependencies) int {
	flags, positional, err := parseBuildFlags(args, deps)
	if err != nil {
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(deps.Stderr, "unexpected argument: %s\n\n", positional[0])
		printBuildUsage(deps.Stderr)
		return ExitUsage
	}

	logger := newLogger(deps, &flags.common)

	project, err := mdsite.LoadProject(flags.dir, mdsite.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "failed to load project: %v\n", err)
		return exitCodeFor(err)
	}
	logger.Debug("project loaded", "pages", len(project.Pages))

	if err := project.Preprocess(); err != nil {
		fmt.Fprintf(deps.Stderr, "failed to preprocess project: %v\n", err)
		return exitCodeFor(err)
	}

	if err := project.Render(); err != nil {
		fmt.Fprintf(deps.Stderr, "failed to render project: %v\n", err)
		return exitCodeFor(err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Rendered %d pages into %s\n", len(project.Pages), project.OutputDir())
	}
	return ExitSuccess
}
