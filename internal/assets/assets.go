// Package assets provides the built-in theme: HTML templates and CSS
// stylesheets compiled into the binary. A project's theme directory overrides
// these defaults file by file.
package assets

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed css/*.css
var stylesheets embed.FS

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested default template does not exist.
	ErrTemplateNotFound = errors.New("default template not found")

	// ErrStylesheetNotFound indicates the requested default stylesheet does not exist.
	ErrStylesheetNotFound = errors.New("default stylesheet not found")
)

// DefaultTemplate returns the built-in template with the given file name,
// e.g. "base.html".
func DefaultTemplate(name string) (string, error) {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// DefaultStylesheet returns the built-in stylesheet with the given file name,
// e.g. "custom.css".
func DefaultStylesheet(name string) (string, error) {
	content, err := stylesheets.ReadFile("css/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStylesheetNotFound, name)
	}
	return string(content), nil
}
