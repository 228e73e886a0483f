package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles
var (
	pkgStyle = lipgloss.NewStyle().
			Bold(true)

	revStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	directStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FA9A"))

	transitiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	dedupedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Italic(true)

	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

// plain disables styling when stdout is not a terminal.
var plain = !isatty.IsTerminal(os.Stdout.Fd())

func styled(s lipgloss.Style, text string) string {
	if plain {
		return text
	}
	return s.Render(text)
}
