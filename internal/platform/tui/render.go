package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Palette maps core colors to lipgloss styles.
// Colors missing from a palette render unstyled.
type Palette map[core.Color]lipgloss.Style

// DefaultPalette returns the ANSI 256-color palette.
func DefaultPalette() Palette {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           fg("167"), // Indian red
		core.ColorGreen:         fg("2"),
		core.ColorYellow:        fg("173"), // Peru
		core.ColorBlue:          fg("4"),
		core.ColorMagenta:       fg("5"),
		core.ColorCyan:          fg("6"),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9"),
		core.ColorBrightGreen:   fg("10"),
		core.ColorBrightYellow:  fg("11"),
		core.ColorBrightBlue:    fg("12"),
		core.ColorBrightMagenta: fg("13"),
		core.ColorBrightCyan:    fg("117"), // Sky blue
		core.ColorBrightWhite:   fg("15"),
		core.ColorOrange:        fg("208"),
		core.ColorGray:          fg("245"),
	}
}

// MonoPalette renders every cell unstyled.
func MonoPalette() Palette {
	return Palette{}
}

// style returns the style for c.
func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color are rendered as one run to keep the
// number of escape sequences down.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		runColor := s.GetCell(0, y).Color
		run.Reset()
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(p.style(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			if cell.Rune != 0 {
				run.WriteRune(cell.Rune)
			}
		}
		sb.WriteString(p.style(runColor).Render(run.String()))
	}
	return sb.String()
}
