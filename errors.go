package mdsite

import "errors"

// Sentinel errors for library operations.
var (
	// ErrFrontMatter indicates a metadata block was present but could not be
	// parsed, or a recognized field had the wrong type.
	ErrFrontMatter = errors.New("failed to parse front matter")

	// ErrConfigParse indicates the project configuration file is malformed.
	ErrConfigParse = errors.New("failed to parse config")

	// ErrPathEncoding indicates a page path is not valid UTF-8 and therefore
	// cannot be turned into a URL.
	ErrPathEncoding = errors.New("page path (and subsequently the URL) is not valid UTF-8")

	// ErrThemeRead indicates an I/O failure while reading a theme override
	// file. A missing override is not an error; it falls back to the default.
	ErrThemeRead = errors.New("failed to read file")

	// ErrIncludeRead indicates an include directive referenced a file that
	// could not be read. Fatal for the page being preprocessed.
	ErrIncludeRead = errors.New("failed to read include file")

	// ErrTemplateRender indicates the template engine rejected a template or
	// failed while executing it.
	ErrTemplateRender = errors.New("template rendering failed")
)
