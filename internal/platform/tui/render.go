package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starcatch/internal/catch"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Visual characters for rendering
const (
	StarChar       = '*'
	BasketChar     = '▄'
	BasketLeft     = '╲'
	BasketRight    = '╱'
	HUDLineChar    = '─'
	hudRows        = 2
	lowTimeSeconds = 10
	minFieldRows   = 4
	minFieldColumn = 10
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorViolet:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// fieldView maps field pixels onto the cells below the HUD.
type fieldView struct {
	cols, rows     int
	fieldW, fieldH float64
}

func newFieldView(dst *core.Screen, s catch.State) fieldView {
	return fieldView{
		cols:   core.Max(dst.Width(), minFieldColumn),
		rows:   core.Max(dst.Height()-hudRows, minFieldRows),
		fieldW: s.FieldW,
		fieldH: s.FieldH,
	}
}

func (v fieldView) col(x float64) int {
	return core.Clamp(int(x/v.fieldW*float64(v.cols)), 0, v.cols-1)
}

func (v fieldView) row(y float64) int {
	return hudRows + core.Clamp(int(y/v.fieldH*float64(v.rows)), 0, v.rows-1)
}

// HUDScores are the board figures shown next to the round score.
type HUDScores struct {
	Best     int // Best score on the board
	Personal int // Best score of the current player
}

// DrawField draws a round snapshot: HUD, stars, basket and any overlay.
func DrawField(dst *core.Screen, s catch.State, scores HUDScores) {
	dst.Clear()
	v := newFieldView(dst, s)

	drawHUD(dst, s, scores)

	for _, o := range s.Objects {
		if o.Y+o.Size < 0 {
			continue // Still above the visible field
		}
		cx, cy := o.Rect().Center()
		dst.SetColor(v.col(cx), v.row(cy), StarChar, core.ColorGold)
	}

	drawBasket(dst, v, s.Collector)

	switch s.Phase {
	case catch.PhaseIdle:
		drawOverlay(dst, "STAR CATCH", "Catch the falling stars!", "Press Enter to start")
	case catch.PhaseEnded:
		drawOverlay(dst, "TIME'S UP", fmt.Sprintf("Final score: %d", s.Score), "Press Enter to play again")
	}
}

func drawHUD(dst *core.Screen, s catch.State, scores HUDScores) {
	score := fmt.Sprintf(" Score: %d   ", s.Score)
	dst.DrawText(0, 0, score, core.ColorWhite)

	clock := core.ColorWhite
	if s.Phase == catch.PhaseRunning && s.TimeRemaining <= lowTimeSeconds {
		clock = core.ColorOrange
	}
	timeText := fmt.Sprintf("Time: %d", s.TimeRemaining)
	dst.DrawText(len(score), 0, timeText, clock)

	best := fmt.Sprintf("   Best: %d   You: %d", scores.Best, scores.Personal)
	dst.DrawText(len(score)+len(timeText), 0, best, core.ColorWhite)

	right := fmt.Sprintf("Speed: %.1f ", s.Speed)
	dst.DrawText(dst.Width()-len(right), 0, right, core.ColorCyan)

	dst.DrawHLine(0, 1, dst.Width(), HUDLineChar, core.ColorGray)
}

func drawBasket(dst *core.Screen, v fieldView, c catch.Collector) {
	x0 := v.col(c.X)
	x1 := core.Max(v.col(c.X+c.W)-1, x0)
	y := v.row(c.Y + c.H/2)

	dst.SetColor(x0, y, BasketLeft, core.ColorViolet)
	for x := x0 + 1; x < x1; x++ {
		dst.SetColor(x, y, BasketChar, core.ColorBlue)
	}
	if x1 > x0 {
		dst.SetColor(x1, y, BasketRight, core.ColorViolet)
	}
	if mid := (x0 + x1) / 2; mid > x0 && mid < x1 {
		dst.SetColor(mid, y, BasketChar, core.ColorCyan)
	}
}

func drawOverlay(dst *core.Screen, lines ...string) {
	top := (dst.Height() - len(lines)*2) / 2
	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorGold
		}
		dst.DrawTextCentered(top+i*2, line, c)
	}
}
