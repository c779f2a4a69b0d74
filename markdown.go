package mdsite

import (
	"bytes"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// mdLinkRe matches a URL pointing at a Markdown file, with an optional
// fragment, e.g. `path/to/file.md#heading`.
var mdLinkRe = regexp.MustCompile(`^(.*)\.md(#.*)?$`)

// rewriteMarkdownURL turns a link to a Markdown source file into a link to
// its rendered HTML counterpart, preserving any fragment. Other URLs pass
// through unchanged.
func rewriteMarkdownURL(url []byte) []byte {
	m := mdLinkRe.FindSubmatch(url)
	if m == nil {
		return url
	}
	out := make([]byte, 0, len(url)+3)
	out = append(out, m[1]...)
	out = append(out, ".html"...)
	out = append(out, m[2]...)
	return out
}

// linkRewriter rewrites `.md` destinations on links and images to `.html`
// while the document AST is being built.
type linkRewriter struct{}

func (linkRewriter) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = rewriteMarkdownURL(node.Destination)
		case *ast.Image:
			node.Destination = rewriteMarkdownURL(node.Destination)
		}
		return ast.WalkContinue, nil
	})
}

// Renderer converts page Markdown to HTML fragments using goldmark.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GFM extensions, footnotes, syntax
// highlighting, and internal-link rewriting.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the theme stylesheet controls colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(linkRewriter{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown content to an HTML fragment. The surrounding
// document shell comes from the theme's templates, not from here.
func (r *Renderer) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}
