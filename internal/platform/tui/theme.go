package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the menu and scoreboard screens and
// the palette the game screen is rendered with.
type Theme struct {
	// Title screen
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Version  lipgloss.Style

	// Level picker
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemFinal   lipgloss.Style
	ItemDetail  lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style

	// Scoreboard
	Border   lipgloss.Style
	Stat     lipgloss.Style
	StatName lipgloss.Style
	Empty    lipgloss.Style

	// Board colours
	Board Palette
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // Beam cyan
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Version:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemFinal:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Orb magenta
		ItemDetail:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Stat:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		StatName: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),

		Board: ColorPalette(),
	}
}

// MonochromeTheme returns a grayscale theme for the ascii board style.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.ItemFinal = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Board = MonochromePalette()
	return theme
}

// ThemeFor returns the theme matching a board style name.
func ThemeFor(style string) Theme {
	if style == "ascii" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return theme
}
