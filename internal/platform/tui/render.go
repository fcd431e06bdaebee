package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mirrorb/internal/core"
)

// Palette maps the board colours a game draws with to terminal styles.
type Palette map[core.Color]lipgloss.Style

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// ColorPalette renders the board in the ANSI 256-colour range.
func ColorPalette() Palette {
	return Palette{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           fg("1"),
		core.ColorGreen:         fg("2"),
		core.ColorYellow:        fg("3"),
		core.ColorBlue:          fg("4"),
		core.ColorMagenta:       fg("5"),
		core.ColorCyan:          fg("6"),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9"),
		core.ColorBrightGreen:   fg("10"),
		core.ColorBrightYellow:  fg("11"),
		core.ColorBrightBlue:    fg("12"),
		core.ColorBrightMagenta: fg("13"),
		core.ColorBrightCyan:    fg("14").Bold(true), // Lit beam
		core.ColorBrightWhite:   fg("15"),
		core.ColorOrange:        fg("208"),
		core.ColorGray:          fg("245"),
		core.ColorDarkGray:      fg("238"),
	}
}

// MonochromePalette keeps only brightness: bright colours render bold,
// dim ones faint, so a fading beam still reads on a plain terminal.
func MonochromePalette() Palette {
	p := Palette{core.ColorDefault: lipgloss.NewStyle()}
	for c := core.ColorRed; c <= core.ColorDarkGray; c++ {
		switch {
		case c >= core.ColorBrightRed && c <= core.ColorBrightWhite:
			p[c] = lipgloss.NewStyle().Bold(true)
		case c == core.ColorGray || c == core.ColorDarkGray:
			p[c] = lipgloss.NewStyle().Faint(true)
		default:
			p[c] = lipgloss.NewStyle()
		}
	}
	return p
}

// RenderScreen converts a Screen buffer to a styled string using the
// current theme's board palette.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(s, GetTheme().Board)
}

// RenderScreenWith converts a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreenWith(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := p[color]
			if !ok || color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
