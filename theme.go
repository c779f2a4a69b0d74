package mdsite

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Well-known theme entry names. Their order here fixes the order of the
// loaded lists, which makes stylesheet writes deterministic.
var (
	themeTemplateNames  = []string{"base.html", "index.html", "page.html"}
	themeStylesheetDirs = []string{"custom.css"}
)

// Template is one HTML template of a theme, addressed by file name.
type Template struct {
	// Name is the template's file name, e.g. "page.html".
	Name string
	// Contents is the template source.
	Contents string
}

// Stylesheet is one CSS file of a theme.
type Stylesheet struct {
	// Path is the stylesheet's location relative to the theme directory and,
	// mirrored, relative to the output directory. Slash-separated.
	Path string
	// Contents is the raw CSS.
	Contents string
}

// Theme is the resolved set of templates and stylesheets used for rendering.
// Every well-known entry is present exactly once: either a theme directory
// override or the compiled-in default.
type Theme struct {
	// Templates holds exactly one entry per well-known template name.
	Templates []Template
	// Stylesheets holds exactly one entry per well-known stylesheet path.
	Stylesheets []Stylesheet
}

// loadThemeFile resolves one theme entry: the override at
// themeDir/relPath when present, the given default otherwise. Only a missing
// override falls back; any other read failure is fatal.
func loadThemeFile(themeDir, relPath, fallback string) (string, error) {
	contents, err := os.ReadFile(filepath.Join(themeDir, filepath.FromSlash(relPath))) // #nosec G304 -- reads from the project's own theme directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fallback, nil
		}
		return "", fmt.Errorf("%w: %v", ErrThemeRead, err)
	}
	return string(contents), nil
}

// LoadTheme resolves the effective theme for the given theme directory. The
// directory itself may be absent entirely, which yields the built-in theme.
func LoadTheme(themeDir string) (*Theme, error) {
	theme := &Theme{}

	for _, name := range themeTemplateNames {
		fallback, err := assets.DefaultTemplate(name)
		if err != nil {
			return nil, err
		}
		contents, err := loadThemeFile(themeDir, "templates/"+name, fallback)
		if err != nil {
			return nil, err
		}
		theme.Templates = append(theme.Templates, Template{Name: name, Contents: contents})
	}

	for _, name := range themeStylesheetDirs {
		fallback, err := assets.DefaultStylesheet(name)
		if err != nil {
			return nil, err
		}
		relPath := "css/" + name
		contents, err := loadThemeFile(themeDir, relPath, fallback)
		if err != nil {
			return nil, err
		}
		theme.Stylesheets = append(theme.Stylesheets, Stylesheet{Path: relPath, Contents: contents})
	}

	return theme, nil
}

// lookup returns the template source registered under name.
func (t *Theme) lookup(name string) (string, bool) {
	for _, tmpl := range t.Templates {
		if tmpl.Name == name {
			return tmpl.Contents, true
		}
	}
	return "", false
}

// templateFuncs are the helper functions available to theme templates.
var templateFuncs = template.FuncMap{
	"sortPagesByDate": sortPagesByDate,
}

// sortPagesByDate orders page contexts newest first. Dates are YYYY-MM-DD
// strings, so lexicographic comparison is chronological; undated pages sort
// last, keeping their relative order.
func sortPagesByDate(pages []any) []any {
	sorted := make([]any, len(pages))
	copy(sorted, pages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pageDate(sorted[i]) > pageDate(sorted[j])
	})
	return sorted
}

// pageDate extracts the date string from a page context, "" when absent.
func pageDate(page any) string {
	ctx, ok := page.(map[string]any)
	if !ok {
		return ""
	}
	meta, ok := ctx["meta"].(map[string]any)
	if !ok {
		return ""
	}
	date, _ := meta["date"].(string)
	return date
}

// templateSet compiles the named entry template together with the base
// template into one executable set. Page and index both redefine the base's
// blocks, so each gets its own set. The root handle carries a name no theme
// file can use: naming it after the entry template would make the later
// New(name) reset the root to an empty parse tree.
func (t *Theme) templateSet(name string) (*template.Template, error) {
	set := template.New("theme").Funcs(templateFuncs)

	base, ok := t.lookup("base.html")
	if !ok {
		return nil, fmt.Errorf("%w: missing template `base.html`", ErrTemplateRender)
	}
	if _, err := set.New("base.html").Parse(base); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	if name != "base.html" {
		entry, ok := t.lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: missing template `%s`", ErrTemplateRender, name)
		}
		if _, err := set.New(name).Parse(entry); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
		}
	}

	return set, nil
}

// render executes the named entry template against ctx.
func (t *Theme) render(name string, ctx map[string]any) (string, error) {
	set, err := t.templateSet(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
