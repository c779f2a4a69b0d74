package mdsite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-mdsite/internal/tomlutil"
)

// ConfigFile is the well-known configuration file name at a project root.
const ConfigFile = "mdsite.toml"

// ProjectConfig is the `[project]` section of the configuration file.
type ProjectConfig struct {
	// Title is the title of the project.
	Title string
	// Authors are the project's authors.
	Authors []string
}

// Config is the project-wide configuration. Like FrontMatter it models the
// recognized fields explicitly and preserves everything else in Rest.
type Config struct {
	// Project holds project-specific configuration.
	Project ProjectConfig
	// Rest holds all configuration not explicitly modeled, e.g. plugin or
	// site-specific tables consumed by theme templates.
	Rest map[string]any
}

// defaultConfig returns an all-empty Config.
func defaultConfig() *Config {
	return &Config{Rest: map[string]any{}}
}

// loadConfig reads the configuration file at path. A missing file is not an
// error and yields the default configuration; a malformed file is fatal.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the project's own config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return parseConfig(data)
}

// parseConfig parses raw TOML configuration.
func parseConfig(data []byte) (*Config, error) {
	var fields map[string]any
	if err := tomlutil.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, tomlutil.Describe(data, err))
	}

	cfg := defaultConfig()
	for key, value := range fields {
		if key != "project" {
			cfg.Rest[key] = value
			continue
		}
		section, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: `project` must be a table", ErrConfigParse)
		}
		project, err := parseProjectSection(section)
		if err != nil {
			return nil, err
		}
		cfg.Project = project
	}
	return cfg, nil
}

// parseProjectSection validates the recognized `[project]` fields.
func parseProjectSection(section map[string]any) (ProjectConfig, error) {
	var project ProjectConfig
	for key, value := range section {
		switch key {
		case "title":
			s, ok := value.(string)
			if !ok {
				return project, fmt.Errorf("%w: field `project.title` must be a string", ErrConfigParse)
			}
			project.Title = s
		case "authors":
			authors, err := stringSlice(value)
			if err != nil {
				return project, fmt.Errorf("%w: field `project.authors` must be a list of strings", ErrConfigParse)
			}
			project.Authors = authors
		default:
			return project, fmt.Errorf("%w: unrecognized field `project.%s`", ErrConfigParse, key)
		}
	}
	return project, nil
}

// stringSlice converts a decoded TOML array into []string.
func stringSlice(value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("not an array")
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		out[i] = s
	}
	return out, nil
}

// configFields is the serialization shape of the recognized fields.
type configFields struct {
	Project projectFields `toml:"project"`
}

type projectFields struct {
	Title   string   `toml:"title,omitempty"`
	Authors []string `toml:"authors,omitempty"`
}

// Encode serializes the configuration back to TOML, recognized fields first.
func (c *Config) Encode() (string, error) {
	var buf []byte
	fields, err := tomlutil.Marshal(configFields{
		Project: projectFields{Title: c.Project.Title, Authors: c.Project.Authors},
	})
	if err != nil {
		return "", err
	}
	buf = append(buf, fields...)
	if len(c.Rest) > 0 {
		rest, err := tomlutil.Marshal(c.Rest)
		if err != nil {
			return "", err
		}
		buf = append(buf, rest...)
	}
	return string(buf), nil
}

// Context returns the template-facing view of the configuration: the
// `project` section plus everything in Rest, as one map.
func (c *Config) Context() map[string]any {
	ctx := make(map[string]any, len(c.Rest)+1)
	for k, v := range c.Rest {
		ctx[k] = v
	}
	authors := make([]any, len(c.Project.Authors))
	for i, a := range c.Project.Authors {
		authors[i] = a
	}
	ctx["project"] = map[string]any{
		"title":   c.Project.Title,
		"authors": authors,
	}
	return ctx
}
