package zoo

import (
	"io"

	"github.com/charmbracelet/log"
)

// Default interpolation speeds, in seconds per cell travelled.
const (
	DefaultLerpSpeed      = 0.15
	DefaultReadyLerpSpeed = 0.117
)

// CellKind tells whether a grid cell holds a tile.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellOccupied
)

// Cell is a read-only view of one grid cell.
type Cell struct {
	Kind  CellKind
	ID    TileID
	Type  TileType
	Phase Phase
}

// Vacant reports whether the cell counts as "no tile here" for board
// queries. A tile that is still moving is treated exactly like an empty cell.
func (c Cell) Vacant() bool {
	return c.Kind == CellEmpty || c.Phase == Moving
}

// Run is a line of at least MinMatch matching tiles.
// Start is the far end of the negative side; the run extends Length cells
// from Start in Direction.
type Run struct {
	Start     Pos       `json:"start"`
	Length    int       `json:"length"`
	Direction Direction `json:"direction"`
	Type      TileType  `json:"type"`
}

// Cells returns every position covered by the run.
func (r Run) Cells() []Pos {
	cells := make([]Pos, 0, r.Length)
	for i := range r.Length {
		cells = append(cells, r.Start.Step(r.Direction, i))
	}
	return cells
}

// Clock supplies the current simulation time in seconds.
type Clock interface {
	Now() float64
}

// Filler receives requests to spawn a tile into an empty cell.
type Filler interface {
	RequestFill(p Pos)
}

// Hooks are optional callbacks fired by the board. Nil hooks are skipped.
type Hooks struct {
	Score   func(run Run)           // a run was matched
	Swap    func(a, b Pos)          // a swap started
	Ready   func()                  // the board filled up for the first time
	Settled func()                  // the board is full again after a cascade
	Spawn   func(t *Tile)           // a tile was created and needs a visual
	Remove  func(t *Tile)           // a matched tile left the board
	Reject  func(p Pos, msg string) // an invariant check failed
}

// BoardOptions configure a board.
type BoardOptions struct {
	LerpSpeed      float64
	ReadyLerpSpeed float64
	Clock          Clock
	Hooks          Hooks
	Logger         *log.Logger
}

// Board is the authoritative grid of tiles. It owns match detection,
// column compaction and the one-match-check-per-tick policy.
type Board struct {
	grid   [Width][Height]*Tile
	queue  []Pos
	dirty  [Width]bool
	filler Filler

	ready    bool
	settling bool

	lerpSpeed      float64
	readyLerpSpeed float64

	clock  Clock
	hooks  Hooks
	logger *log.Logger
	nextID TileID
}

// NewBoard creates an empty, not-ready board.
func NewBoard(opts BoardOptions) *Board {
	if opts.LerpSpeed <= 0 {
		opts.LerpSpeed = DefaultLerpSpeed
	}
	if opts.ReadyLerpSpeed <= 0 {
		opts.ReadyLerpSpeed = DefaultReadyLerpSpeed
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = &StepClock{}
	}

	return &Board{
		lerpSpeed:      opts.LerpSpeed,
		readyLerpSpeed: opts.ReadyLerpSpeed,
		clock:          opts.Clock,
		hooks:          opts.Hooks,
		logger:         opts.Logger,
	}
}

// Attach sets the collaborator that refills empty cells after compaction.
func (b *Board) Attach(f Filler) {
	b.filler = f
}

// Now returns the board's simulation time.
func (b *Board) Now() float64 {
	return b.clock.Now()
}

// LerpSpeed returns the current base interpolation speed.
func (b *Board) LerpSpeed() float64 {
	return b.lerpSpeed
}

// IsReady reports whether the board has been completely filled once.
func (b *Board) IsReady() bool {
	return b.ready
}

// Settling reports whether a match happened and the board has not yet
// filled up again.
func (b *Board) Settling() bool {
	return b.settling
}

// Pending returns the number of positions waiting for a match check.
func (b *Board) Pending() int {
	return len(b.queue)
}

// Cell returns the view of the cell at p. Out-of-range cells are empty.
func (b *Board) Cell(p Pos) Cell {
	t := b.raw(p)
	if t == nil {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellOccupied, ID: t.id, Type: t.kind, Phase: t.phase}
}

// Occupant returns the tile resting at p. Empty cells, out-of-range
// positions and cells whose tile is still moving all return false.
func (b *Board) Occupant(p Pos) (*Tile, bool) {
	t := b.resting(p)
	return t, t != nil
}

// SetOccupant stores t as the occupant of p. Returns false for invalid positions.
func (b *Board) SetOccupant(t *Tile, p Pos) bool {
	if !InBounds(p) {
		return false
	}
	if cur := b.grid[p.X][p.Y]; cur != nil && cur != t {
		b.assertInvariant(p, "cell already claimed by "+cur.String())
	}
	b.grid[p.X][p.Y] = t
	return true
}

// ClearOccupant empties the cell at p.
func (b *Board) ClearOccupant(p Pos) {
	if InBounds(p) {
		b.grid[p.X][p.Y] = nil
	}
}

// FlagColumnDirty schedules column x for compaction on the next tick.
func (b *Board) FlagColumnDirty(x int) {
	if x >= 0 && x < Width {
		b.dirty[x] = true
	}
}

// EnqueueMatchCheck queues p to be checked for matches on a later tick.
func (b *Board) EnqueueMatchCheck(p Pos) {
	if !InBounds(p) {
		return
	}
	b.queue = append(b.queue, p)
}

// Full reports whether every cell holds a tile that is not moving.
func (b *Board) Full() bool {
	for x := range Width {
		for y := range Height {
			if b.Cell(P(x, y)).Vacant() {
				return false
			}
		}
	}
	return true
}

// Tick runs one logic step: readiness, compaction of dirty columns and at
// most one match check. Resolving a single settle event per tick keeps
// overlapping matches from fighting over shared cells.
func (b *Board) Tick() {
	full := b.Full()
	if !b.ready && full {
		b.ready = true
		b.lerpSpeed = b.readyLerpSpeed
		b.logger.Debug("board ready", "lerp_speed", b.lerpSpeed)
		if b.hooks.Ready != nil {
			b.hooks.Ready()
		}
	}
	if b.settling && full {
		b.settling = false
		if b.hooks.Settled != nil {
			b.hooks.Settled()
		}
	}

	for x := range Width {
		if b.dirty[x] {
			b.Compact(x)
			b.dirty[x] = false
		}
	}

	if b.ready && len(b.queue) > 0 {
		p := b.queue[0]
		b.queue = b.queue[1:]
		b.CheckMatches(p)
	}
}

// TrySwap exchanges the tiles at a and c. Both must be resting idle tiles;
// anything else is silently ignored. The cells are released before either
// tile claims its destination.
func (b *Board) TrySwap(a, c Pos) bool {
	if a.Equal(c) {
		return false
	}
	ta, tc := b.resting(a), b.resting(c)
	if ta == nil || tc == nil || ta.phase != Idle || tc.phase != Idle {
		return false
	}

	b.grid[a.X][a.Y] = nil
	b.grid[c.X][c.Y] = nil

	now := b.clock.Now()
	ta.MoveTo(c, now, b.lerpSpeed)
	tc.MoveTo(a, now, b.lerpSpeed)

	b.SetOccupant(ta, c)
	b.SetOccupant(tc, a)

	b.logger.Debug("swap", "a", a, "b", c)
	if b.hooks.Swap != nil {
		b.hooks.Swap(a, c)
	}
	return true
}

// newTile creates a tile wired to this board.
func (b *Board) newTile(kind TileType, at Pos) *Tile {
	b.nextID++
	return NewTile(b.nextID, kind, at, b)
}

// raw returns whatever is stored at p, including moving tiles.
func (b *Board) raw(p Pos) *Tile {
	if !InBounds(p) {
		return nil
	}
	return b.grid[p.X][p.Y]
}

// resting returns the tile at p unless the cell is vacant.
func (b *Board) resting(p Pos) *Tile {
	t := b.raw(p)
	if t == nil || t.phase == Moving {
		return nil
	}
	return t
}
