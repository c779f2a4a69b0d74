package mdsite

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// markupExt is the source extension of page files.
const markupExt = ".md"

// Page is a single Markdown page in a project.
type Page struct {
	// Path locates the page's source file relative to the src directory.
	// It is slash-separated regardless of the host path convention and
	// always ends in the Markdown extension.
	Path string
	// FrontMatter holds the page's parsed metadata block.
	FrontMatter FrontMatter
	// Contents is the page body, Markdown.
	Contents string
}

// loadPage reads one page from disk. fullPath must be inside srcDir.
func loadPage(srcDir, fullPath string) (*Page, error) {
	raw, err := os.ReadFile(fullPath) // #nosec G304 -- path comes from walking the project's own src directory
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fm, contents, err := parseFrontMatter(string(raw))
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(srcDir, fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve page path: %w", err)
	}

	return &Page{
		Path:        filepath.ToSlash(rel),
		FrontMatter: fm,
		Contents:    contents,
	}, nil
}

// URLPath returns the output URL for this page, relative to the site root:
// the page path with the Markdown extension swapped for ".html", joined
// with forward slashes.
func (p *Page) URLPath() (string, error) {
	if !utf8.ValidString(p.Path) {
		return "", ErrPathEncoding
	}
	return strings.TrimSuffix(p.Path, path.Ext(p.Path)) + ".html", nil
}

// PathToRoot returns the relative prefix from this page's output location
// back to the site root: one "../" per parent directory segment. A page at
// the root yields "".
//
// Page paths are always root-relative by construction, so a non-normal
// segment (absolute root, "..", or ".") can only mean a bug in project
// loading; it panics rather than returning an error.
func (p *Page) PathToRoot() (string, error) {
	if !utf8.ValidString(p.Path) {
		return "", ErrPathEncoding
	}

	dir := path.Dir(p.Path)
	if dir == "." {
		return "", nil
	}

	var b strings.Builder
	for _, segment := range strings.Split(dir, "/") {
		if segment == "" || segment == "." || segment == ".." {
			panic(fmt.Sprintf("unexpected path component %q in page path %q", segment, p.Path))
		}
		b.WriteString("../")
	}
	return b.String(), nil
}

// renderContext builds the template context for this page: its metadata, its
// URL, and its contents converted to HTML.
func (p *Page) renderContext(renderer *Renderer) (map[string]any, error) {
	url, err := p.URLPath()
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(p.Contents)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"meta":    p.FrontMatter.Context(),
		"path":    url,
		"content": template.HTML(content), // #nosec G203 -- page HTML is rendered from the project's own Markdown
	}, nil
}
