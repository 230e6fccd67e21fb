package zoo

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// StepClock is a simulation clock advanced explicitly by the game loop.
type StepClock struct {
	now float64
}

// Now returns the elapsed simulation time in seconds.
func (c *StepClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by dt seconds.
func (c *StepClock) Advance(dt float64) {
	c.now += dt
}

// EngineOptions configure an Engine. Zero values fall back to defaults.
type EngineOptions struct {
	Seed             int64
	LerpSpeed        float64
	ReadyLerpSpeed   float64
	SpawnInterval    float64
	PopulateRowDelay float64
	Hooks            Hooks
	Logger           *log.Logger
}

// Engine wires the board, the spawners and the live tiles together and
// runs them in a fixed order every step.
type Engine struct {
	clock    *StepClock
	board    *Board
	spawners Spawners
	populate PopulationState
	tiles    []*Tile
	hooks    Hooks
}

// NewEngine creates an engine with an empty board that starts filling on
// the first Step.
func NewEngine(opts EngineOptions) *Engine {
	e := &Engine{
		clock:    &StepClock{},
		populate: NewPopulation(opts.PopulateRowDelay),
		hooks:    opts.Hooks,
	}

	// The board reports removals through the engine, which owns the tiles.
	boardHooks := opts.Hooks
	boardHooks.Spawn = nil
	boardHooks.Remove = nil

	e.board = NewBoard(BoardOptions{
		LerpSpeed:      opts.LerpSpeed,
		ReadyLerpSpeed: opts.ReadyLerpSpeed,
		Clock:          e.clock,
		Hooks:          boardHooks,
		Logger:         opts.Logger,
	})

	rng := rand.New(rand.NewSource(opts.Seed))
	for x := range Width {
		e.spawners[x] = NewSpawner(x, e.board, rng, opts.SpawnInterval, e.adopt)
	}
	e.board.Attach(&e.spawners)
	return e
}

// Board returns the engine's board.
func (e *Engine) Board() *Board {
	return e.board
}

// Spawner returns the spawner for column x, or nil.
func (e *Engine) Spawner(x int) *Spawner {
	if x < 0 || x >= Width {
		return nil
	}
	return e.spawners[x]
}

// Tiles returns the live tiles. The slice must not be modified.
func (e *Engine) Tiles() []*Tile {
	return e.tiles
}

// Now returns the simulation time.
func (e *Engine) Now() float64 {
	return e.clock.Now()
}

// Populating reports whether the initial fill is still being requested.
func (e *Engine) Populating() bool {
	return !e.populate.Done()
}

// SkipPopulation cancels the staged initial fill. Used when a layout is
// placed directly.
func (e *Engine) SkipPopulation() {
	e.populate.RowsRemaining = 0
}

// Place puts an idle tile of the given type at p, bypassing spawners.
// Returns nil if p is invalid or already taken.
func (e *Engine) Place(kind TileType, p Pos) *Tile {
	if !InBounds(p) || e.board.raw(p) != nil {
		return nil
	}
	t := e.board.newTile(kind, p)
	e.adopt(t)
	e.board.SetOccupant(t, p)
	return t
}

// Step advances the simulation by dt seconds: staged fill, spawners, tile
// logic, one board tick, then tile interpolation.
func (e *Engine) Step(dt float64) {
	e.clock.Advance(dt)
	e.populate.Advance(dt, &e.spawners)
	e.spawners.Update(dt)

	live := e.tiles[:0]
	for _, t := range e.tiles {
		t.Update()
		if t.Removed() {
			if e.hooks.Remove != nil {
				e.hooks.Remove(t)
			}
			continue
		}
		live = append(live, t)
	}
	for i := len(live); i < len(e.tiles); i++ {
		e.tiles[i] = nil
	}
	e.tiles = live

	e.board.Tick()

	now := e.clock.Now()
	for _, t := range e.tiles {
		t.Advance(now)
	}
}

// Pick returns the tile whose current position covers the point.
// Tiles are one cell wide; the closest one wins.
func (e *Engine) Pick(at Vec) (*Tile, bool) {
	var best *Tile
	bestDist := math.MaxFloat64
	for _, t := range e.tiles {
		d := t.Position().Sub(at)
		if math.Abs(d.X) > 0.5 || math.Abs(d.Y) > 0.5 {
			continue
		}
		if l := d.Len(); l < bestDist {
			best, bestDist = t, l
		}
	}
	return best, best != nil
}

// adopt registers a newly created tile.
func (e *Engine) adopt(t *Tile) {
	e.tiles = append(e.tiles, t)
	if e.hooks.Spawn != nil {
		e.hooks.Spawn(t)
	}
}
