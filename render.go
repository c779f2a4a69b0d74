package mdsite

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Render materializes the project into its output directory. The directory
// is recreated from scratch, then every page is rendered through the theme's
// `page` template, the accumulated page contexts feed the `index` template,
// and the theme's stylesheets are written verbatim.
//
// Any failure aborts the render; a partially written output directory is
// acceptable because the next successful run starts from a fresh one.
func (p *Project) Render() error {
	outputDir := p.OutputDir()
	if err := fileutil.RecreateDir(outputDir); err != nil {
		return fmt.Errorf("failed to recreate output directory `%s`: %w", outputDir, err)
	}

	renderer := NewRenderer()

	baseCtx := map[string]any{
		"config":       p.Config.Context(),
		"path_to_root": "",
	}

	pagesCtx := make([]any, 0, len(p.Pages))
	for _, page := range p.Pages {
		thisCtx, err := page.renderContext(renderer)
		if err != nil {
			return fmt.Errorf("failed to generate render context for page `%s`: %w", page.Path, err)
		}

		pathToRoot, err := page.PathToRoot()
		if err != nil {
			return fmt.Errorf("failed to generate render context for page `%s`: %w", page.Path, err)
		}

		pageCtx := map[string]any{
			"config":       baseCtx["config"],
			"path_to_root": pathToRoot,
			"this":         thisCtx,
		}
		pagesCtx = append(pagesCtx, thisCtx)

		rendered, err := p.Theme.render("page.html", pageCtx)
		if err != nil {
			return fmt.Errorf("failed to render page `%s`: %w", page.Path, err)
		}

		url := thisCtx["path"].(string)
		dst := filepath.Join(outputDir, filepath.FromSlash(url))
		if err := fileutil.WriteFileMkdir(dst, []byte(rendered)); err != nil {
			return fmt.Errorf("failed to write page `%s`: %w", dst, err)
		}
	}

	indexCtx := map[string]any{
		"config":       baseCtx["config"],
		"path_to_root": "",
		"pages":        pagesCtx,
	}
	rendered, err := p.Theme.render("index.html", indexCtx)
	if err != nil {
		return fmt.Errorf("failed to render page `index.html`: %w", err)
	}
	dst := filepath.Join(outputDir, "index.html")
	if err := fileutil.WriteFileMkdir(dst, []byte(rendered)); err != nil {
		return fmt.Errorf("failed to write page `%s`: %w", dst, err)
	}

	for _, stylesheet := range p.Theme.Stylesheets {
		dst := filepath.Join(outputDir, filepath.FromSlash(stylesheet.Path))
		if err := fileutil.WriteFileMkdir(dst, []byte(stylesheet.Contents)); err != nil {
			return fmt.Errorf("failed to write stylesheet `%s`: %w", dst, err)
		}
	}

	return nil
}
