package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	dir    string
}

// initFlags holds all flags for the init command.
type initFlags struct {
	common    commonFlags
	dir       string
	title     string
	authors   []string
	gitignore bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, deps *Dependencies) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.dir, "dir", "d", ".", "project root directory")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(deps.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, deps *Dependencies) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}

	fs.StringVarP(&f.dir, "dir", "d", ".", "directory to scaffold the project into")
	fs.StringVarP(&f.title, "title", "t", "My Site", "project title")
	fs.StringSliceVarP(&f.authors, "author", "a", nil, "project author (repeatable)")
	fs.BoolVar(&f.gitignore, "gitignore", true, "create a .gitignore covering the output directory")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printInitUsage(deps.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
