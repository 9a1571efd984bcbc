package project

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ferrors "github.com/forgekit/cli/internal/errors"
)

// Built-in defaults used when neither flags nor config provide a value.
const (
	// DefaultWidth is the fallback window width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the fallback window height in pixels.
	DefaultHeight = 600

	// DefaultTheme is the fallback theme name.
	DefaultTheme = "dark"

	// DefaultArrangement is the fallback widget arrangement.
	DefaultArrangement = "grid"
)

// Themes lists the valid theme selections.
func Themes() []string { return []string{"dark", "light"} }

// Arrangements lists the valid layout selections.
func Arrangements() []string { return []string{"grid", "tabs"} }

// Descriptor captures the choices made at project-generation time. It is
// created once and persisted implicitly through the rendered source tree; the
// module path is re-read from the descriptor file on every feature addition.
type Descriptor struct {
	// Name is the raw project name as typed by the user.
	Name string

	// Module is the sanitized module path written to the descriptor file.
	Module string

	// Width is the window width in pixels (positive).
	Width int

	// Height is the window height in pixels (positive).
	Height int

	// Theme is the theme selection ("dark" or "light").
	Theme string

	// Arrangement is the layout selection ("grid" or "tabs").
	Arrangement string
}

// WithDefaults fills zero-valued fields with the built-in defaults.
func (d Descriptor) WithDefaults() Descriptor {
	if d.Width <= 0 {
		d.Width = DefaultWidth
	}
	if d.Height <= 0 {
		d.Height = DefaultHeight
	}
	if d.Theme == "" {
		d.Theme = DefaultTheme
	}
	if d.Arrangement == "" {
		d.Arrangement = DefaultArrangement
	}
	return d
}

// ReadModule re-derives the module path from the descriptor file in dir: the
// second whitespace-delimited token of the first line. A missing descriptor
// file means the caller is outside a generated project root.
func ReadModule(dir string, paths Paths) (string, error) {
	target := filepath.Join(dir, paths.DescriptorFile)

	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ferrors.NewMissingDescriptorError(dir)
		}
		return "", ferrors.NewFileSystemError("reading project descriptor", target, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", ferrors.NewMissingDescriptorError(dir)
	}

	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 || fields[0] != "module" {
		return "", &ferrors.DetailError{
			Type:     "missing project descriptor",
			Message:  fmt.Sprintf("first line of %s does not declare a module path", paths.DescriptorFile),
			Location: target,
			Hint:     "The descriptor file may have been edited; its first line must read 'module <path>'.",
			Cause:    ferrors.ErrMissingDescriptor,
		}
	}

	return fields[1], nil
}

// ParseDimension parses a window dimension supplied as free text. A
// non-numeric or non-positive value falls back to the given default so the
// invalid input never reaches generated output.
func ParseDimension(raw string, fallback int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback, false
	}
	return n, true
}
