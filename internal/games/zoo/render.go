package zoo

import (
	"fmt"

	"github.com/vovakirdan/tui-zoo/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	frame := g.layout.Frame()
	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderTiles(dst)
	g.renderCursor(dst)
	g.renderFooter(dst, frame)
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := g.layout.MinSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderHUD draws the title, score and clock.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCenteredColor(0, "ZOO MATCH", core.ColorBrightYellow)

	dst.DrawText(frame.X, 1, fmt.Sprintf("Score: %d", g.score))

	var clock string
	if g.mode == ModeTimed {
		clock = fmt.Sprintf("Time: %4.1f", g.remaining)
	} else {
		clock = "Endless"
	}
	color := core.ColorDefault
	if g.mode == ModeTimed && g.remaining < 10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(frame.Right()-len(clock), 1, clock, color)

	status := ""
	switch {
	case g.engine.Populating():
		status = "Filling..."
	case !g.engine.Board().IsReady():
		status = "Settling..."
	case g.combo > 1:
		status = fmt.Sprintf("Combo x%d", g.combo)
	}
	if status != "" {
		dst.DrawTextCenteredColor(2, status, core.ColorCyan)
	}
}

// renderTiles draws every live tile at its interpolated position.
// Tiles still above the board are not drawn.
func (g *Game) renderTiles(dst *core.Screen) {
	glyphX := (g.layout.CellW - minCellW) / 2
	glyphY := (g.layout.CellH - 1) / 2

	for _, t := range g.engine.Tiles() {
		if t.Phase() == Matched {
			continue
		}
		sx, sy := g.layout.ToScreen(t.Position())
		if sy < g.layout.OriginY {
			continue
		}
		dst.DrawTextColor(sx+glyphX, sy+glyphY, "["+t.Type().Glyph()+"]", t.Type().Color())
	}
}

// renderCursor brackets the keyboard cursor cell. A grabbed tile, or one
// held by a mouse drag, gets the heavy brackets.
func (g *Game) renderCursor(dst *core.Screen) {
	r := g.layout.CellRect(g.cursor)
	y := r.Y + (r.H-1)/2
	left, right, color := '>', '<', core.ColorYellow
	if g.grabbed || g.resolver.Pressing() {
		left, right, color = '»', '«', core.ColorBrightMagenta
	}
	dst.SetColor(r.X, y, left, color)
	dst.SetColor(r.Right()-1, y, right, color)
}

// renderFooter draws the control hint under the board.
func (g *Game) renderFooter(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCenteredColor(frame.Bottom(), g.Controls(), core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	centerX, centerY := frame.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY,
			"TIME UP",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Best combo: %d", g.bestCombo),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Drag or Arrows/YUBN + Space: Swap | P: Pause | Q: Quit"
}
