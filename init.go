package mdsite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// InitOptions configures Init.
type InitOptions struct {
	// RootDir is the directory to scaffold the project into.
	RootDir string
	// Title is the project title written to the configuration file.
	Title string
	// Authors are the project authors written to the configuration file.
	Authors []string
	// Gitignore controls whether a .gitignore covering the output directory
	// is created.
	Gitignore bool
}

// helloWorldContents is the body of the scaffolded first page.
const helloWorldContents = `Hello World! This is the first page on my site.

I wrote some Go code for the occasion:

` + "```go" + `
func main() {
	fmt.Println("Hello, world!")
}
` + "```" + `
`

// helloWorldPage returns the scaffolded first page, dated today.
func helloWorldPage() (string, error) {
	today := time.Now()
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	fm := FrontMatter{
		Title: "Hello World!",
		Date:  &date,
		Kind:  "post",
		Rest:  map[string]any{},
	}
	block, err := fm.Encode()
	if err != nil {
		return "", err
	}
	return block + "\n" + helloWorldContents, nil
}

// Init scaffolds a new project: the src directory, the configuration file,
// a hello-world page, and optionally a .gitignore. Existing files are never
// overwritten; scaffolding into a directory that already holds a project
// fails with fileutil.ErrExists.
func Init(opts InitOptions) error {
	srcDir := filepath.Join(opts.RootDir, srcDirName)
	if err := os.MkdirAll(srcDir, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("failed to create src directory `%s`: %w", srcDir, err)
	}

	if opts.Gitignore {
		path := filepath.Join(opts.RootDir, ".gitignore")
		if err := fileutil.WriteNew(path, []byte(outputDirName+"\n")); err != nil {
			return err
		}
	}

	cfg := defaultConfig()
	cfg.Project.Title = opts.Title
	cfg.Project.Authors = opts.Authors
	encoded, err := cfg.Encode()
	if err != nil {
		return err
	}
	if err := fileutil.WriteNew(filepath.Join(opts.RootDir, ConfigFile), []byte(encoded)); err != nil {
		return err
	}

	page, err := helloWorldPage()
	if err != nil {
		return err
	}
	return fileutil.WriteNew(filepath.Join(srcDir, "hello-world.md"), []byte(page))
}
