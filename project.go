package mdsite

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// Well-known directory names under a project root.
const (
	srcDirName    = "src"
	themeDirName  = "theme"
	outputDirName = "public"
)

// Project is the in-memory representation of an entire site: configuration,
// theme, and every page found under the src directory.
type Project struct {
	// RootDir is the project's root directory.
	RootDir string
	// Config controls how the project is built.
	Config *Config
	// Theme supplies the templates and stylesheets used for rendering.
	Theme *Theme
	// Pages are the project's pages, in directory walk order.
	Pages []*Page

	logger *slog.Logger
}

// ProjectOption configures a Project during load.
type ProjectOption func(*Project)

// WithLogger sets the logger used for preprocessing diagnostics. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) ProjectOption {
	return func(p *Project) {
		p.logger = logger
	}
}

// SrcDir returns the project's content directory.
func (p *Project) SrcDir() string {
	return filepath.Join(p.RootDir, srcDirName)
}

// ThemeDir returns the project's theme directory.
func (p *Project) ThemeDir() string {
	return filepath.Join(p.RootDir, themeDirName)
}

// OutputDir returns the directory the rendered site is written to.
func (p *Project) OutputDir() string {
	return filepath.Join(p.RootDir, outputDirName)
}

// ConfigPath returns the location of the project's configuration file.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.RootDir, ConfigFile)
}

// LoadProject assembles a Project from the given root directory: it loads
// the configuration file, resolves the theme, and walks the src directory
// collecting every Markdown file as a page.
func LoadProject(rootDir string, opts ...ProjectOption) (*Project, error) {
	p := &Project{
		RootDir: rootDir,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	cfg, err := loadConfig(p.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config `%s`: %w", p.ConfigPath(), err)
	}
	p.Config = cfg

	theme, err := LoadTheme(p.ThemeDir())
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	p.Theme = theme

	if err := p.loadPages(); err != nil {
		return nil, err
	}
	return p, nil
}

// loadPages walks the src directory and loads every *.md file as a page.
// A missing src directory yields a project with no pages; any single page
// that fails to parse aborts the whole load.
func (p *Project) loadPages() error {
	srcDir := p.SrcDir()
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("failed to walk src directory: %w", err)
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), markupExt) {
			return nil
		}
		page, err := loadPage(srcDir, path)
		if err != nil {
			return fmt.Errorf("failed to load page `%s`: %w", path, err)
		}
		p.Pages = append(p.Pages, page)
		return nil
	})
}

// Preprocess resolves the directives of every page, substituting their
// replacement text in place. Malformed directives are recoverable and only
// logged; an include whose target cannot be read fails the page and with it
// the whole preprocessing pass.
func (p *Project) Preprocess() error {
	for _, page := range p.Pages {
		pageDir := filepath.Dir(filepath.Join(p.SrcDir(), filepath.FromSlash(page.Path)))
		contents, err := preprocessContents(page.Contents, pageDir, p.logger)
		if err != nil {
			return fmt.Errorf("failed to preprocess page `%s`: %w", page.Path, err)
		}
		page.Contents = contents
	}
	return nil
}
