package zoo

import (
	"fmt"

	"github.com/vovakirdan/tui-zoo/internal/core"
)

// TileType is the animal shown on a tile. Types only decide which tiles match.
type TileType int

const (
	Parrot TileType = iota
	Giraffe
	Snake
	Hippo
	Panda
)

// TileTypeCount is the number of tile types spawners pick from.
const TileTypeCount = 5

// String returns the animal name.
func (t TileType) String() string {
	switch t {
	case Parrot:
		return "Parrot"
	case Giraffe:
		return "Giraffe"
	case Snake:
		return "Snake"
	case Hippo:
		return "Hippo"
	case Panda:
		return "Panda"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the tile type by name.
func (t TileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Glyph returns the two-character label drawn inside a tile.
func (t TileType) Glyph() string {
	switch t {
	case Parrot:
		return "Pa"
	case Giraffe:
		return "Gi"
	case Snake:
		return "Sn"
	case Hippo:
		return "Hi"
	case Panda:
		return "Pd"
	default:
		return "??"
	}
}

// Color returns the display color for the tile type.
func (t TileType) Color() core.Color {
	switch t {
	case Parrot:
		return core.ColorBrightRed
	case Giraffe:
		return core.ColorBrightYellow
	case Snake:
		return core.ColorBrightGreen
	case Hippo:
		return core.ColorBrightMagenta
	case Panda:
		return core.ColorBrightWhite
	default:
		return core.ColorGray
	}
}

// Phase is the lifecycle phase of a tile.
type Phase int

const (
	Moving Phase = iota
	Idle
	Matched
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Moving:
		return "Moving"
	case Idle:
		return "Idle"
	case Matched:
		return "Matched"
	default:
		return "Unknown"
	}
}

// TileID identifies a tile for the lifetime of a board.
type TileID uint64

// Reporter is the part of the board a tile talks to.
// Tiles never run match checks themselves; they only leave messages.
type Reporter interface {
	EnqueueMatchCheck(p Pos)
	ClearOccupant(p Pos)
	FlagColumnDirty(x int)
}

// Interpolation constants.
const (
	minLerpDistance  = 0.0001 // below this a move is skipped entirely
	unitLerpDistance = 0.01   // below this the duration is computed for one cell
)

// Tile is a single animal on (or falling into) the board.
type Tile struct {
	id       TileID
	kind     TileType
	phase    Phase
	reporter Reporter
	removed  bool

	// Interpolation state
	pos       Vec
	start     Vec
	end       Vec
	startTime float64
	distance  float64
	duration  float64
}

// NewTile creates an idle tile resting at the given cell.
func NewTile(id TileID, kind TileType, at Pos, reporter Reporter) *Tile {
	v := at.Vec()
	return &Tile{
		id:       id,
		kind:     kind,
		phase:    Idle,
		reporter: reporter,
		pos:      v,
		start:    v,
		end:      v,
	}
}

// ID returns the tile identifier.
func (t *Tile) ID() TileID { return t.id }

// Type returns the tile's animal.
func (t *Tile) Type() TileType { return t.kind }

// Phase returns the current lifecycle phase.
func (t *Tile) Phase() Phase { return t.phase }

// Removed reports whether the tile has left the board for good.
func (t *Tile) Removed() bool { return t.removed }

// Position returns the tile's current world position.
func (t *Tile) Position() Vec { return t.pos }

// Target returns the cell the tile rests at or is moving to.
func (t *Tile) Target() Pos { return t.end.Cell() }

// Progress returns how far the current move has come, in [0, 1].
func (t *Tile) Progress(now float64) float64 {
	if t.phase != Moving || t.duration <= 0 {
		return 1
	}
	return core.ClampF((now-t.startTime)/t.duration, 0, 1)
}

// MoveTo starts a move from the cell the tile currently occupies to target.
func (t *Tile) MoveTo(target Pos, now, baseSpeed float64) {
	t.MoveBetween(t.pos.Cell(), target, now, baseSpeed)
}

// MoveBetween starts a move from begin to target. The duration scales with
// the distance; moves shorter than minLerpDistance leave the tile as it is.
func (t *Tile) MoveBetween(begin, target Pos, now, baseSpeed float64) {
	distance := begin.Distance(target)
	if distance < minLerpDistance {
		return
	}

	t.startTime = now
	t.distance = distance
	t.start = begin.Vec()
	t.end = target.Vec()
	t.pos = t.start

	scale := distance
	if scale < unitLerpDistance || scale < 1 {
		scale = 1
	}
	t.duration = baseSpeed * scale
	t.phase = Moving
}

// Advance runs the interpolation step. When the tile arrives it turns Idle
// and asks the board to check its new cell on a later tick.
func (t *Tile) Advance(now float64) {
	if t.phase != Moving {
		return
	}

	f := t.Progress(now)
	t.pos = Lerp(t.start, t.end, f)

	if f >= 1 {
		t.phase = Idle
		if t.reporter != nil {
			t.reporter.EnqueueMatchCheck(t.end.Cell())
		}
	}
}

// Update runs the logic step. A matched tile frees its cell, asks for its
// column to be compacted and is gone afterwards.
func (t *Tile) Update() {
	if t.phase != Matched || t.removed {
		return
	}
	cell := t.end.Cell()
	if t.reporter != nil {
		t.reporter.ClearOccupant(cell)
		t.reporter.FlagColumnDirty(cell.X)
	}
	t.removed = true
}

// String describes the tile for logs.
func (t *Tile) String() string {
	return fmt.Sprintf("%s#%d %s at %.2f,%.2f", t.kind, t.id, t.phase, t.pos.X, t.pos.Y)
}
