// Package mdsite generates a static HTML site from a directory of Markdown
// documents annotated with TOML front matter.
//
// # Quick Start
//
// Load a project, preprocess its pages, and render it:
//
//	project, err := mdsite.LoadProject(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := project.Preprocess(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := project.Render(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Project Layout
//
// A project root contains:
//
//	mdsite.toml    configuration (optional; defaults apply when absent)
//	src/           Markdown pages, one .md file per page
//	theme/         optional template and stylesheet overrides
//	public/        build output, recreated from scratch on every render
//
// # Rendering Pipeline
//
// The build follows these stages:
//
//  1. Front-matter parsing (`+++` delimited TOML block per page)
//  2. Directive preprocessing ({{ #include path[:start[:end]] }})
//  3. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting,
//     internal .md links rewritten to .html)
//  4. Template rendering via html/template (base, page, and index templates)
//  5. Output materialization into a freshly recreated public/ directory
//
// # Themes
//
// A theme directory overrides the built-in defaults file by file. Recognized
// entries are templates/base.html, templates/index.html, templates/page.html,
// and css/custom.css; any entry that is absent falls back to the compiled-in
// default, so a theme only needs to contain the files it changes.
package mdsite
