package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/woozymasta/lox"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorKind  = lipgloss.Color("#F59E0B")
	colorMuted = lipgloss.Color("#6B7280")
)

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	kindStyle = lipgloss.NewStyle().
			Foreground(colorKind)

	posStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// printDiagnostics renders syntax errors to stderr, one per line.
func printDiagnostics(name string, errs []lox.ParseError) {
	for _, e := range errs {
		pos := fmt.Sprintf("%s:%d:%d", name, e.Line, e.Col)
		kind := string(e.Kind)

		if noColor {
			fmt.Fprintf(os.Stderr, "%s: error[%s]: %s\n", pos, kind, e.Message)
			continue
		}

		fmt.Fprintf(os.Stderr, "%s %s %s %s\n",
			posStyle.Render(pos+":"),
			errorStyle.Render("error"),
			kindStyle.Render("["+kind+"]"),
			e.Message,
		)
	}
}

// diagnosticsError summarizes a non-empty error list as a command failure.
func diagnosticsError(errs []lox.ParseError) error {
	if len(errs) == 1 {
		return fmt.Errorf("1 syntax error")
	}

	return fmt.Errorf("%d syntax errors", len(errs))
}
