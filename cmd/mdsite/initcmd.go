package main

import (
	"fmt"

	mdsite "github.com/alnah/go-mdsite"
)

// runInit scaffolds a new project and returns the exit code.
func runInit(args []string, deps *Dependencies) int {
	flags, positional, err := parseInitFlags(args, deps)
	if err != nil {
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(deps.Stderr, "unexpected argument: %s\n\n", positional[0])
		printInitUsage(deps.Stderr)
		return ExitUsage
	}

	opts := mdsite.InitOptions{
		RootDir:   flags.dir,
		Title:     flags.title,
		Authors:   flags.authors,
		Gitignore: flags.gitignore,
	}
	if err := mdsite.Init(opts); err != nil {
		fmt.Fprintf(deps.Stderr, "failed to initialize project: %v\n", err)
		return exitCodeFor(err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Initialized project in %s\n", flags.dir)
	}
	return ExitSuccess
}
