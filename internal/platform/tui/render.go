package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-trouble/internal/core"
)

// palette is the ANSI color for each core.Color. Empty means terminal default.
var palette = [...]string{
	core.ColorDefault:      "",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorGray:         "245",
}

var cellStyles = buildCellStyles()

// Footer under the field: the game title, then dimmed key help.
var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).PaddingLeft(1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(2)
)

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, code := range palette {
		st := lipgloss.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[i] = st
	}
	styles[core.ColorBrightWhite] = styles[core.ColorBrightWhite].Bold(true)
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run strings.Builder
	for y := range rows {
		rows[y] = renderRow(s, y, &run)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles one row with one escape sequence per same-colored run.
func renderRow(s *core.Screen, y int, run *strings.Builder) string {
	if s.Width() == 0 {
		return ""
	}

	var line strings.Builder
	run.Reset()
	current := s.GetCell(0, y).Color
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			line.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
			current = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	line.WriteString(styleFor(current).Render(run.String()))
	return line.String()
}
