// Package tomlutil wraps TOML parsing to isolate the external dependency.
// This allows swapping the underlying TOML library without modifying callers.
package tomlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// MaxInputSize limits TOML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilDestination = errors.New("tomlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("tomlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal parses TOML data into v. Parse failures are returned unwrapped so
// callers can recover the fault position with Describe.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	return toml.Unmarshal(data, v)
}

// Marshal encodes v as TOML.
func Marshal(v any) ([]byte, error) {
	result, err := toml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("tomlutil: %w", err)
	}
	return result, nil
}

// Encode appends the TOML encoding of v to buf. Sequential calls build one
// document, which keeps simple keys ahead of tables when encoding in parts.
func Encode(buf *bytes.Buffer, v any) error {
	if err := toml.NewEncoder(buf).Encode(v); err != nil {
		return fmt.Errorf("tomlutil: %w", err)
	}
	return nil
}

// Describe renders a parse error as a message citing its line and column
// within data. Non-parse errors are rendered verbatim.
func Describe(data []byte, err error) string {
	var pe toml.ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	line, col := position(data, pe)
	return fmt.Sprintf("line %d, column %d: %s", line, col, pe.Message)
}

// position derives a 1-based line and column from the parse error's byte
// offset. Both come from the same offset: the parser's reported line can
// refer to a different line than the offset it blames, and mixing the two
// produces positions that point nowhere.
func position(data []byte, pe toml.ParseError) (line, col int) {
	start := pe.Position.Start
	if start < 0 || start > len(data) {
		line = pe.Position.Line
		if line < 1 {
			line = 1
		}
		return line, 1
	}
	line = 1 + bytes.Count(data[:start], []byte{'\n'})
	lineStart := bytes.LastIndexByte(data[:start], '\n') + 1
	return line, start - lineStart + 1
}
