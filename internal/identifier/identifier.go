// Package identifier derives code identifiers from free-form display text.
package identifier

import (
	"fmt"
	"strings"
	"unicode"

	ferrors "github.com/forgekit/cli/internal/errors"
)

// Set holds the identifier forms derived from one display name.
// All fields are deterministic pure functions of the raw input.
type Set struct {
	// Package is the lower-case package identifier (e.g. "myclock").
	Package string

	// FileStem is the snake_case file name stem (e.g. "my_clock").
	FileStem string

	// Exported is the PascalCase exported identifier (e.g. "MyClock").
	Exported string

	// Variable is the camelCase variable identifier with the feature-kind
	// suffix appended (e.g. "myClockWidget").
	Variable string
}

// Derive computes the identifier set for raw display text. The suffix is the
// feature-kind word appended to the variable identifier ("Widget", "Service",
// "Model", "Page").
//
// If any derived form reduces to the empty string the input is unusable and a
// validation error is returned; callers must not touch the file system in
// that case.
func Derive(raw, suffix string) (Set, error) {
	s := Set{
		Package:  derivePackage(raw),
		FileStem: deriveFileStem(raw),
		Exported: deriveExported(raw),
	}

	if s.Package == "" || s.FileStem == "" || s.Exported == "" {
		return Set{}, ferrors.NewValidationError(
			fmt.Sprintf("name %q contains no usable characters", raw),
			"Use letters and digits; spaces, dashes and underscores separate words.",
		)
	}

	// Exported contains only ASCII letters and digits, so byte slicing is safe.
	s.Variable = strings.ToLower(s.Exported[:1]) + s.Exported[1:] + suffix
	return s, nil
}

// derivePackage lower-cases the input, collapses whitespace, and strips
// characters outside [a-z0-9._-].
func derivePackage(raw string) string {
	lower := strings.ToLower(strings.Join(strings.Fields(raw), " "))

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// deriveFileStem lower-cases the input, maps spaces and dashes to
// underscores, and drops every other character outside [a-z0-9_].
func deriveFileStem(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case r == ' ' || r == '-':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// deriveExported splits the original text on dash/underscore/space
// boundaries, upper-cases each word's first character, and concatenates,
// keeping only ASCII letters and digits.
func deriveExported(raw string) string {
	words := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, w := range words {
		first := true
		for _, r := range w {
			if !isASCIIAlnum(r) {
				continue
			}
			if first {
				b.WriteRune(unicode.ToUpper(r))
				first = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
