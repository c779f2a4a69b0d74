package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	deps := DefaultDeps()
	os.Exit(run(os.Args, deps))
}

// run dispatches to the selected subcommand and returns the exit code.
func run(args []string, deps *Dependencies) int {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "init":
		return runInit(args[2:], deps)
	case "build":
		return runBuild(args[2:], deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "mdsite %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[2:], deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "unknown command: %s\n\n", args[1])
		printUsage(deps.Stderr)
		return ExitUsage
	}
}
