package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic", err: errors.New("boom"), want: ExitGeneral},
		{name: "config parse", err: mdsite.ErrConfigParse, want: ExitUsage},
		{name: "front matter", err: mdsite.ErrFrontMatter, want: ExitUsage},
		{name: "path encoding", err: mdsite.ErrPathEncoding, want: ExitUsage},
		{name: "theme read", err: mdsite.ErrThemeRead, want: ExitIO},
		{name: "include read", err: mdsite.ErrIncludeRead, want: ExitIO},
		{name: "file exists", err: fileutil.ErrExists, want: ExitIO},
		{name: "not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "wrapped still matches", err: fmt.Errorf("context: %w", mdsite.ErrConfigParse), want: ExitUsage},
		{name: "deeply wrapped", err: fmt.Errorf("a: %w", fmt.Errorf("b: %w", mdsite.ErrIncludeRead)), want: ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
