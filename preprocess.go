package mdsite

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// directiveRe matches an inline preprocessing directive such as
//
//	{{ #include listing.go:5:10 }}
//
// Group 1 is the directive name, group 2 its argument string.
var directiveRe = regexp.MustCompile(`\{\{\s*#([a-zA-Z0-9_]+)\s+(.*?)\s*\}\}`)

// lineRange selects lines of an included file. The zero value selects the
// whole file. Bounds are 0-based; end is exclusive and only meaningful when
// hasEnd is set.
type lineRange struct {
	start  int
	end    int
	hasEnd bool
}

// parseLineNumber parses a non-negative integer line number.
func parseLineNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative line number %d", n)
	}
	return n, nil
}

// parseLineRange parses the `start:end` portion of an include argument.
// Line numbers are 1-based on input; only the start is shifted to 0-based, so
// `5:10` selects lines five through ten, spans 4..10 internally.
func parseLineRange(s string) (lineRange, error) {
	if s == "" {
		return lineRange{}, nil
	}

	parts := strings.SplitN(s, ":", 2)
	var start int
	hasStart := parts[0] != ""
	if hasStart {
		n, err := parseLineNumber(parts[0])
		if err != nil {
			return lineRange{}, fmt.Errorf("failed to parse start line number: %w", err)
		}
		if n > 0 {
			// 1-based on input; 0 and 1 both mean the first line.
			n--
		}
		start = n
	}

	if len(parts) == 1 {
		// No colon: a single line, e.g. "5".
		return lineRange{start: start, end: start + 1, hasEnd: true}, nil
	}
	if parts[1] == "" {
		if hasStart {
			// Trailing colon: from start to end of file, e.g. "5:".
			return lineRange{start: start}, nil
		}
		return lineRange{}, fmt.Errorf("failed to parse end line number: empty")
	}

	end, err := parseLineNumber(parts[1])
	if err != nil {
		return lineRange{}, fmt.Errorf("failed to parse end line number: %w", err)
	}
	return lineRange{start: start, end: end, hasEnd: true}, nil
}

// splitLines splits contents into lines the way the range arithmetic expects:
// no entry for a trailing newline, and no carriage returns.
func splitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// extract returns the selected lines joined with newlines, without a trailing
// newline. Out-of-range bounds clamp to the file rather than failing.
func (r lineRange) extract(contents string) string {
	lines := splitLines(contents)
	if r.start >= len(lines) {
		return ""
	}
	lines = lines[r.start:]
	if r.hasEnd {
		n := r.end - r.start
		if n < 0 {
			n = 0
		}
		if n < len(lines) {
			lines = lines[:n]
		}
	}
	return strings.Join(lines, "\n")
}

// include is a parsed `{{ #include path[:start[:end]] }}` directive.
type include struct {
	path string
	rng  lineRange
}

// parseInclude parses an include argument string of the form
// `path[:start[:end]]`.
func parseInclude(args string) (include, error) {
	parts := strings.SplitN(args, ":", 2)
	inc := include{path: parts[0]}
	if len(parts) == 1 {
		return inc, nil
	}
	rng, err := parseLineRange(parts[1])
	if err != nil {
		return include{}, err
	}
	inc.rng = rng
	return inc, nil
}

// read resolves the include against the directory containing the current
// page and returns the selected lines.
func (inc include) read(pageDir string) (string, error) {
	p := filepath.Join(pageDir, filepath.FromSlash(inc.path))
	contents, err := os.ReadFile(p) // #nosec G304 -- include paths are authored in the project's own pages
	if err != nil {
		return "", fmt.Errorf("%w `%s`: %v", ErrIncludeRead, p, err)
	}
	return inc.rng.extract(string(contents)), nil
}

// includeMatch is one successfully parsed include directive together with the
// byte span it occupies in the page contents.
type includeMatch struct {
	inc        include
	start, end int
}

// findIncludeDirectives scans contents for directives, in document order.
// Malformed include arguments and unrecognized directive names are logged as
// warnings and omitted from the result, which leaves their source text
// untouched during substitution.
func findIncludeDirectives(contents string, logger *slog.Logger) []includeMatch {
	var matches []includeMatch
	for _, m := range directiveRe.FindAllStringSubmatchIndex(contents, -1) {
		name := contents[m[2]:m[3]]
		args := contents[m[4]:m[5]]
		switch name {
		case "include":
			inc, err := parseInclude(args)
			if err != nil {
				logger.Warn("failed to parse include directive",
					"directive", contents[m[0]:m[1]], "error", err)
				continue
			}
			matches = append(matches, includeMatch{inc: inc, start: m[0], end: m[1]})
		default:
			logger.Warn("unrecognized directive", "name", name)
		}
	}
	return matches
}

// preprocessContents substitutes every recognized directive in contents,
// copying the gaps between matches verbatim. The only hard failure is an
// include whose target file cannot be read.
func preprocessContents(contents, pageDir string, logger *slog.Logger) (string, error) {
	matches := findIncludeDirectives(contents, logger)
	if len(matches) == 0 {
		return contents, nil
	}

	var b strings.Builder
	prev := 0
	for _, m := range matches {
		b.WriteString(contents[prev:m.start])
		text, err := m.inc.read(pageDir)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
		prev = m.end
	}
	b.WriteString(contents[prev:])
	return b.String(), nil
}
