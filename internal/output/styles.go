package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, anchors.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" and "patched" outcomes.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "duplicate" patch outcome.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" outcome (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// OutcomeStyle returns the lipgloss style for a file or patch outcome word.
// Unknown outcomes return an unstyled default.
func OutcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case "created", "patched":
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case "skipped":
		return lipgloss.NewStyle().Faint(true)
	case "duplicate":
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case "failed":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width for the path column before the
// outcome suffix, so outcome words align consistently.
const minPathColumnWidth = 40

// FormatOutcomeLine renders a file path with a right-aligned, color-coded
// outcome suffix.
func FormatOutcomeLine(path, outcome string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleNoun.Render(path) + strings.Repeat(" ", padding) + OutcomeStyle(outcome).Render(outcome)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
