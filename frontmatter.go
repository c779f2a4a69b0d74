package mdsite

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/alnah/go-mdsite/internal/tomlutil"
)

// dateLayout is the calendar date format used by the `date` front matter field.
const dateLayout = "2006-01-02"

// frontMatterRe matches a `+++` delimited TOML block at the start of a
// document. The match is anchored to the whole input: the closing delimiter,
// its trailing newlines, and the remaining body must extend to end-of-input,
// so stray `+++` triples inside the block belong to the metadata body rather
// than closing it early.
var frontMatterRe = regexp.MustCompile(`(?s)\A\s*\+\+\+(.*)\+\+\+(\r?\n)+(.*)\z`)

// FrontMatter is the TOML front matter of a Markdown document. Recognized
// fields are strongly typed; everything else is preserved in Rest so a
// document's metadata survives a parse/serialize round trip.
type FrontMatter struct {
	// Title is the title for this page.
	Title string
	// Description is the description for this page.
	Description string
	// Date is the day this page was written.
	Date *time.Time
	// Kind is the type of page this is, e.g. "post".
	Kind string
	// Rest holds all front matter fields not explicitly modeled.
	Rest map[string]any
}

// defaultFrontMatter returns an all-empty FrontMatter.
func defaultFrontMatter() FrontMatter {
	return FrontMatter{Rest: map[string]any{}}
}

// parseFrontMatter splits a raw document into front matter and body.
//
// A document without a `+++` block yields a default FrontMatter and the full
// input as body. A block that is present but malformed is an error: the
// returned message names the failure and cites the fault's line and column
// relative to the metadata block.
func parseFrontMatter(raw string) (FrontMatter, string, error) {
	fm := defaultFrontMatter()

	m := frontMatterRe.FindStringSubmatch(raw)
	if m == nil {
		return fm, raw, nil
	}
	meta, body := m[1], m[3]

	var fields map[string]any
	if err := tomlutil.Unmarshal([]byte(meta), &fields); err != nil {
		return fm, "", fmt.Errorf("%w: %s", ErrFrontMatter, tomlutil.Describe([]byte(meta), err))
	}

	for key, value := range fields {
		switch key {
		case "title":
			s, ok := value.(string)
			if !ok {
				return fm, "", fmt.Errorf("%w: field `title` must be a string", ErrFrontMatter)
			}
			fm.Title = s
		case "description":
			s, ok := value.(string)
			if !ok {
				return fm, "", fmt.Errorf("%w: field `description` must be a string", ErrFrontMatter)
			}
			fm.Description = s
		case "kind":
			s, ok := value.(string)
			if !ok {
				return fm, "", fmt.Errorf("%w: field `kind` must be a string", ErrFrontMatter)
			}
			fm.Kind = s
		case "date":
			date, err := parseDateField(value)
			if err != nil {
				return fm, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
			}
			fm.Date = date
		default:
			fm.Rest[key] = value
		}
	}

	return fm, body, nil
}

// parseDateField accepts either a "YYYY-MM-DD" string or a native TOML date.
func parseDateField(value any) (*time.Time, error) {
	switch v := value.(type) {
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("field `date` must be a YYYY-MM-DD date: %q", v)
		}
		return &t, nil
	case time.Time:
		t := time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return &t, nil
	default:
		return nil, fmt.Errorf("field `date` must be a YYYY-MM-DD date")
	}
}

// frontMatterFields is the serialization shape of the recognized fields.
type frontMatterFields struct {
	Title       string `toml:"title,omitempty"`
	Description string `toml:"description,omitempty"`
	Date        string `toml:"date,omitempty"`
	Kind        string `toml:"kind,omitempty"`
}

// Encode serializes the front matter back into a `+++` delimited block.
// Recognized fields are emitted first, then everything in Rest.
func (fm FrontMatter) Encode() (string, error) {
	fields := frontMatterFields{
		Title:       fm.Title,
		Description: fm.Description,
		Kind:        fm.Kind,
	}
	if fm.Date != nil {
		fields.Date = fm.Date.Format(dateLayout)
	}

	var buf bytes.Buffer
	buf.WriteString("+++\n")
	if err := tomlutil.Encode(&buf, fields); err != nil {
		return "", err
	}
	if len(fm.Rest) > 0 {
		if err := tomlutil.Encode(&buf, fm.Rest); err != nil {
			return "", err
		}
	}
	buf.WriteString("+++\n")
	return buf.String(), nil
}

// Context returns the template-facing view of the front matter: one flat map
// holding the recognized fields and everything in Rest. Recognized fields win
// on a key collision. The date is rendered as a YYYY-MM-DD string so
// templates can compare and sort lexicographically.
func (fm FrontMatter) Context() map[string]any {
	ctx := make(map[string]any, len(fm.Rest)+4)
	for k, v := range fm.Rest {
		ctx[k] = v
	}
	ctx["title"] = fm.Title
	ctx["description"] = fm.Description
	ctx["kind"] = fm.Kind
	if fm.Date != nil {
		ctx["date"] = fm.Date.Format(dateLayout)
	} else {
		ctx["date"] = ""
	}
	return ctx
}
