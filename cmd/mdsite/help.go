package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  init       Scaffold a new project")
	fmt.Fprintln(w, "  build      Render the project into the output directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every markdown page under src/ into public/.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <path>    Project root directory (default \".\")")
	fmt.Fprintln(w, "  -q, --quiet         Only show errors")
	fmt.Fprintln(w, "  -v, --verbose       Show detailed progress")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scaffold a new project: configuration file, src directory, and a")
	fmt.Fprintln(w, "hello-world page. Existing files are never overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <path>     Directory to scaffold into (default \".\")")
	fmt.Fprintln(w, "  -t, --title <s>      Project title (default \"My Site\")")
	fmt.Fprintln(w, "  -a, --author <s>     Project author (repeatable)")
	fmt.Fprintln(w, "      --gitignore      Create a .gitignore (default true)")
	fmt.Fprintln(w, "  -q, --quiet          Only show errors")
	fmt.Fprintln(w, "  -v, --verbose        Show detailed progress")
}

// runHelp shows help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "init":
		printInitUsage(deps.Stdout)
	case "build":
		printBuildUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: mdsite version")
	case "help":
		printUsage(deps.Stdout)
	default:
		fmt.Fprintf(deps.Stdout, "unknown command: %s\n\n", args[0])
		printUsage(deps.Stdout)
	}
}
