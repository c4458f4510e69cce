package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// ansiCodes holds the 256-color code for each core.Color. An empty entry
// renders unstyled.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var palette = buildPalette()

func buildPalette() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the screen buffer into the string Bubble Tea prints.
// Each row is split into same-colored runs so a whole run of hidden cells
// costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out strings.Builder
	out.Grow(w*h*2 + h)

	row := make([]rune, 0, w)
	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}

		start := 0
		for start < w {
			color := s.GetCell(start, y).Color
			row = row[:0]
			end := start
			for ; end < w; end++ {
				cell := s.GetCell(end, y)
				if cell.Color != color {
					break
				}
				row = append(row, cell.Rune)
			}
			out.WriteString(styleFor(color).Render(string(row)))
			start = end
		}
	}
	return out.String()
}
