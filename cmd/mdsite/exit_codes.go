package main

import (
	"errors"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or configuration
	ExitIO      = 3 // File not found, permission denied, refused overwrite
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrExists) ||
		errors.Is(err, mdsite.ErrThemeRead) ||
		errors.Is(err, mdsite.ErrIncludeRead) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, mdsite.ErrConfigParse) ||
		errors.Is(err, mdsite.ErrFrontMatter) ||
		errors.Is(err, mdsite.ErrPathEncoding) {
		return ExitUsage
	}

	return ExitGeneral
}
