package assets_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/assets"
)

func TestDefaultTemplate(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"base.html", "index.html", "page.html"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			content, err := assets.DefaultTemplate(name)
			if err != nil {
				t.Fatalf("DefaultTemplate(%q) error = %v", name, err)
			}
			if content == "" {
				t.Errorf("DefaultTemplate(%q) = empty", name)
			}
		})
	}

	t.Run("base defines the document shell", func(t *testing.T) {
		t.Parallel()

		content, err := assets.DefaultTemplate("base.html")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(content, "<!DOCTYPE html>") {
			t.Errorf("base.html = %q, want a doctype", content)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := assets.DefaultTemplate("nope.html")
		if !errors.Is(err, assets.ErrTemplateNotFound) {
			t.Errorf("error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestDefaultStylesheet(t *testing.T) {
	t.Parallel()

	t.Run("custom.css", func(t *testing.T) {
		t.Parallel()

		content, err := assets.DefaultStylesheet("custom.css")
		if err != nil {
			t.Fatalf("DefaultStylesheet() error = %v", err)
		}
		if content == "" {
			t.Error("DefaultStylesheet() = empty")
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := assets.DefaultStylesheet("nope.css")
		if !errors.Is(err, assets.ErrStylesheetNotFound) {
			t.Errorf("error = %v, want ErrStylesheetNotFound", err)
		}
	})
}
