package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/mines"
)

// boardTop is the first screen row used by the grid; rows above it hold the HUD.
const boardTop = 2

// Cell glyphs.
const (
	glyphHidden   = '■'
	glyphCursor   = '□'
	glyphEmpty    = '·'
	glyphMine     = '*'
	glyphExploded = 'X'
)

// HUD carries the values shown above the board.
type HUD struct {
	Solver     string // empty when autoplay is off
	Paused     bool
	LastScore  float64
	HasScore   bool
	Mines      int // expected mines before the first move
	Wins       int
	Losses     int
	ShowCursor bool
}

// cellGlyph returns the rune and color for one cell.
// Mines stay hidden until the game is lost.
func cellGlyph(g *mines.Game, p core.Point) (rune, core.Color) {
	st, err := g.StateAt(p)
	if err != nil {
		return ' ', core.ColorDefault
	}
	switch st {
	case mines.Exploded:
		return glyphExploded, core.ColorBrightRed
	case mines.HiddenMine:
		if g.Status() == mines.Lost {
			return glyphMine, core.ColorRed
		}
		return glyphHidden, core.ColorGray
	case mines.Hidden:
		return glyphHidden, core.ColorGray
	}

	n, ok := g.Known(p)
	if !ok || n == 0 {
		return glyphEmpty, core.ColorGray
	}
	return rune('0' + n), core.CountColors[n]
}

// DrawBoard draws the grid into s below the HUD rows.
// Each cell spans cellWidth screen columns; the glyph sits in the first one.
func DrawBoard(s *core.Screen, g *mines.Game, cellWidth int, cursor core.Point, showCursor bool) {
	for y := range g.Height() {
		for x := range g.Width() {
			p := core.Pt(x, y)
			r, c := cellGlyph(g, p)
			if showCursor && p == cursor {
				if r == glyphHidden {
					r = glyphCursor
				}
				c = core.ColorBrightYellow
			}
			s.SetColored(x*cellWidth, boardTop+y, r, c)
		}
	}
}

// statusText returns the status label and its color.
func statusText(st mines.Status) (string, core.Color) {
	switch st {
	case mines.AwaitingFirstMove:
		return "pick a cell", core.ColorWhite
	case mines.InProgress:
		return "in progress", core.ColorBrightCyan
	case mines.Lost:
		return "BOOM", core.ColorBrightRed
	case mines.Won:
		return "cleared", core.ColorBrightGreen
	default:
		return st.String(), core.ColorDefault
	}
}

// DrawHUD draws the two status rows above the board.
func DrawHUD(s *core.Screen, g *mines.Game, h HUD) {
	label, color := statusText(g.Status())
	line := fmt.Sprintf("SWEEPER %dx%d  ", g.Width(), g.Height())
	s.DrawTextColored(0, 0, line, core.ColorBrightWhite)
	x := len([]rune(line))
	s.DrawTextColored(x, 0, label, color)
	x += len([]rune(label))

	if h.Solver != "" {
		mode := fmt.Sprintf("  [auto: %s]", h.Solver)
		if h.Paused {
			mode = fmt.Sprintf("  [auto: %s, paused]", h.Solver)
		}
		s.DrawTextColored(x, 0, mode, core.ColorBrightMagenta)
	}

	mineCount := g.Mines()
	if g.Status() == mines.AwaitingFirstMove {
		mineCount = h.Mines
	}
	stats := fmt.Sprintf("mines %d  open %d/%d  moves %d  session %dW/%dL",
		mineCount, g.RevealedCount(), g.Width()*g.Height()-mineCount, g.Moves(), h.Wins, h.Losses)
	if h.HasScore {
		stats += fmt.Sprintf("  score %.3f", h.LastScore)
	}
	s.DrawTextColored(0, 1, stats, core.ColorGray)
}
