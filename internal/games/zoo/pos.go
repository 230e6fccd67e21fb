// Package zoo implements a match-4 tile puzzle: animal tiles fall into a
// 5x7 board, the player swaps neighbours (including diagonals) and runs of
// four or more identical animals along any axis are cleared.
//
// The package holds pure game logic. Rendering, audio and input devices
// reach it only through hooks and the registry.Game interface.
package zoo

import (
	"fmt"
	"math"
)

// Board dimensions and rules. Board size is fixed at compile time.
const (
	Width    = 5
	Height   = 7
	MinMatch = 4
	SpawnRow = 9 // row above the visible board where new tiles appear
)

// Pos is a cell coordinate on the board.
// X grows to the right, Y grows upward (row 0 is the bottom row).
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Equal returns true if two positions are the same.
func (p Pos) Equal(other Pos) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns p offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the position n cells away in the given direction.
func (p Pos) Step(d Direction, n int) Pos {
	dx, dy := d.Delta()
	return p.Add(dx*n, dy*n)
}

// Distance returns the Euclidean distance between two positions.
func (p Pos) Distance(other Pos) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// Vec returns the position as a world-space point (cell centers sit on integers).
func (p Pos) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// InBounds reports whether p lies on the board.
func InBounds(p Pos) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Vec is a point in world space, measured in cells.
type Vec struct {
	X float64
	Y float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b Vec, t float64) Vec {
	return Vec{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Cell truncates the point to the cell that holds it, the same way the
// board truncates a tile's resting position.
func (v Vec) Cell() Pos {
	return Pos{X: int(v.X), Y: int(v.Y)}
}

// Nearest rounds the point to the closest cell center.
func (v Vec) Nearest() Pos {
	return Pos{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
