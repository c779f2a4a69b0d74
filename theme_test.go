package mdsite

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestLoadTheme - Resolves theme overrides against built-in defaults
// ---------------------------------------------------------------------------

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	t.Run("missing theme directory yields built-ins", func(t *testing.T) {
		t.Parallel()

		theme, err := LoadTheme(filepath.Join(t.TempDir(), "theme"))
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		if len(theme.Templates) != len(themeTemplateNames) {
			t.Errorf("Templates = %d entries, want %d", len(theme.Templates), len(themeTemplateNames))
		}
		if len(theme.Stylesheets) != 1 || theme.Stylesheets[0].Path != "css/custom.css" {
			t.Errorf("Stylesheets = %v, want exactly css/custom.css", theme.Stylesheets)
		}
		base, ok := theme.lookup("base.html")
		if !ok || !strings.Contains(base, "<!DOCTYPE html>") {
			t.Errorf("base.html = %q, want built-in skeleton", base)
		}
	})

	t.Run("partial override keeps other defaults", func(t *testing.T) {
		t.Parallel()

		themeDir := filepath.Join(t.TempDir(), "theme")
		custom := `{{template "base.html" .}}{{define "content"}}custom{{end}}`
		writeTestFile(t, filepath.Join(themeDir, "templates", "page.html"), custom)

		theme, err := LoadTheme(themeDir)
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		page, ok := theme.lookup("page.html")
		if !ok || page != custom {
			t.Errorf("page.html = %q, want the override", page)
		}
		index, ok := theme.lookup("index.html")
		if !ok || !strings.Contains(index, "sortPagesByDate") {
			t.Errorf("index.html = %q, want built-in default", index)
		}
	})

	t.Run("stylesheet override", func(t *testing.T) {
		t.Parallel()

		themeDir := filepath.Join(t.TempDir(), "theme")
		writeTestFile(t, filepath.Join(themeDir, "css", "custom.css"), "body { color: red }\n")

		theme, err := LoadTheme(themeDir)
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		if theme.Stylesheets[0].Contents != "body { color: red }\n" {
			t.Errorf("custom.css = %q, want the override", theme.Stylesheets[0].Contents)
		}
	})
}

// ---------------------------------------------------------------------------
// TestThemeRender - Executes an entry template against a context
// ---------------------------------------------------------------------------

func TestThemeRender(t *testing.T) {
	t.Parallel()

	baseCtx := func(this map[string]any) map[string]any {
		return map[string]any{
			"config":       (&Config{Project: ProjectConfig{Title: "My Site"}}).Context(),
			"path_to_root": "",
			"this":         this,
		}
	}

	t.Run("page template fills base blocks", func(t *testing.T) {
		t.Parallel()

		theme, err := LoadTheme(filepath.Join(t.TempDir(), "theme"))
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}

		out, err := theme.render("page.html", baseCtx(map[string]any{
			"meta":    map[string]any{"title": "Hello", "date": "2022-02-03", "description": "", "kind": ""},
			"path":    "hello.html",
			"content": "ignored",
		}))
		if err != nil {
			t.Fatalf("render() error = %v", err)
		}
		if !strings.Contains(out, "Hello") {
			t.Errorf("render() = %q, want page title in output", out)
		}
		if !strings.Contains(out, "<!DOCTYPE html>") {
			t.Errorf("render() = %q, want full document from base template", out)
		}
	})

	t.Run("every entry template renders under its own name", func(t *testing.T) {
		t.Parallel()

		theme, err := LoadTheme(filepath.Join(t.TempDir(), "theme"))
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}

		// The set's root handle must not collide with an entry name, or
		// parsing the entry resets the root to an empty template.
		for _, name := range themeTemplateNames {
			ctx := baseCtx(map[string]any{
				"meta": map[string]any{"title": "", "date": "", "description": "", "kind": ""},
			})
			if name == "index.html" {
				ctx["pages"] = []any{}
			}
			out, err := theme.render(name, ctx)
			if err != nil {
				t.Fatalf("render(%q) error = %v", name, err)
			}
			if !strings.Contains(out, "<!DOCTYPE html>") {
				t.Errorf("render(%q) = %q, want a full document", name, out)
			}
		}
	})

	t.Run("override replaces the default block", func(t *testing.T) {
		t.Parallel()

		themeDir := filepath.Join(t.TempDir(), "theme")
		custom := `{{template "base.html" .}}{{define "content"}}CUSTOM BODY{{end}}`
		writeTestFile(t, filepath.Join(themeDir, "templates", "page.html"), custom)

		theme, err := LoadTheme(themeDir)
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		out, err := theme.render("page.html", baseCtx(map[string]any{
			"meta": map[string]any{"title": "", "date": "", "description": "", "kind": ""},
		}))
		if err != nil {
			t.Fatalf("render() error = %v", err)
		}
		if !strings.Contains(out, "CUSTOM BODY") {
			t.Errorf("render() = %q, want override content", out)
		}
	})

	t.Run("broken template fails", func(t *testing.T) {
		t.Parallel()

		themeDir := filepath.Join(t.TempDir(), "theme")
		writeTestFile(t, filepath.Join(themeDir, "templates", "page.html"), "{{broken")

		theme, err := LoadTheme(themeDir)
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		if _, err := theme.render("page.html", baseCtx(nil)); !errors.Is(err, ErrTemplateRender) {
			t.Errorf("render() error = %v, want ErrTemplateRender", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestSortPagesByDate - Orders page contexts newest first
// ---------------------------------------------------------------------------

func TestSortPagesByDate(t *testing.T) {
	t.Parallel()

	page := func(path, date string) map[string]any {
		return map[string]any{
			"path": path,
			"meta": map[string]any{"date": date},
		}
	}

	tests := []struct {
		name  string
		pages []any
		want  []string
	}{
		{
			name: "newest first",
			pages: []any{
				page("old.html", "2020-01-01"),
				page("new.html", "2022-06-15"),
				page("mid.html", "2021-03-09"),
			},
			want: []string{"new.html", "mid.html", "old.html"},
		},
		{
			name: "undated pages sort last in original order",
			pages: []any{
				page("a.html", ""),
				page("dated.html", "2022-01-01"),
				page("b.html", ""),
			},
			want: []string{"dated.html", "a.html", "b.html"},
		},
		{
			name:  "empty input",
			pages: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sorted := sortPagesByDate(tt.pages)
			got := make([]string, len(sorted))
			for i, p := range sorted {
				got[i] = p.(map[string]any)["path"].(string)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sortPagesByDate() order = %v, want %v", got, tt.want)
			}
		})
	}
}
