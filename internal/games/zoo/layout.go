package zoo

import (
	"math"

	"github.com/vovakirdan/tui-zoo/internal/core"
)

// Screen rows reserved around the board.
const (
	hudHeight    = 3
	footerHeight = 2
	minCellW     = 4 // a tile glyph needs "[Pa]"
)

// Layout maps world positions (cells, Y up) to screen cells (Y down) and back.
// OriginX/OriginY is the top-left screen cell of board cell (0, Height-1).
type Layout struct {
	OriginX int
	OriginY int
	CellW   int
	CellH   int
}

// NewLayout centers the board horizontally below the HUD.
func NewLayout(screenW, cellW, cellH int) Layout {
	if cellW < minCellW {
		cellW = minCellW
	}
	if cellH < 1 {
		cellH = 1
	}
	return Layout{
		OriginX: (screenW - Width*cellW) / 2,
		OriginY: hudHeight + 1,
		CellW:   cellW,
		CellH:   cellH,
	}
}

// Frame returns the rectangle of the board border.
func (l Layout) Frame() core.Rect {
	return core.NewRect(l.OriginX-1, l.OriginY-1, Width*l.CellW+2, Height*l.CellH+2)
}

// MinSize returns the smallest screen that fits the board, HUD and footer.
func (l Layout) MinSize() (w, h int) {
	f := l.Frame()
	return f.W + 2, f.Bottom() + footerHeight
}

// ToScreen returns the top-left screen cell for a world position.
func (l Layout) ToScreen(v Vec) (int, int) {
	sx := l.OriginX + int(math.Round(v.X*float64(l.CellW)))
	sy := l.OriginY + int(math.Round((Height-1-v.Y)*float64(l.CellH)))
	return sx, sy
}

// CellRect returns the screen rectangle covered by board cell p.
func (l Layout) CellRect(p Pos) core.Rect {
	sx, sy := l.ToScreen(p.Vec())
	return core.NewRect(sx, sy, l.CellW, l.CellH)
}

// ToWorld converts a screen cell to a world point. The middle of a board
// cell on screen maps to (about) the cell's integer coordinates.
func (l Layout) ToWorld(sx, sy int) Vec {
	cx := float64(l.CellW-1) / 2
	cy := float64(l.CellH-1) / 2
	return Vec{
		X: (float64(sx-l.OriginX) - cx) / float64(l.CellW),
		Y: float64(Height-1) - (float64(sy-l.OriginY)-cy)/float64(l.CellH),
	}
}
