package zoo

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-zoo/internal/config"
	"github.com/vovakirdan/tui-zoo/internal/core"
	"github.com/vovakirdan/tui-zoo/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeTimed   Mode = "timed"   // the round ends when the clock runs out
	ModeEndless Mode = "endless" // no clock, play until you quit
)

// snapshotEvery is how often, in ticks, a snapshot is published to the observer.
const snapshotEvery = 15

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	cuePlayer        core.CuePlayer
	observer         core.Observer
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by every new game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = parsePreset(preset)
}

// parsePreset maps a preset name to its value. Unknown names mean no preset.
func parsePreset(name string) config.DifficultyPreset {
	switch name {
	case "easy":
		return config.DifficultyEasy
	case "normal":
		return config.DifficultyNormal
	case "hard":
		return config.DifficultyHard
	case "fixed":
		return config.DifficultyFixed
	}
	return ""
}

// SetCuePlayer sets where sound cues go. Nil disables them.
func SetCuePlayer(p core.CuePlayer) {
	cuePlayer = p
}

// SetObserver sets the receiver of snapshots and events. Nil disables publishing.
func SetObserver(o core.Observer) {
	observer = o
}

// SetLogger sets the logger handed to the board. Nil discards logs.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts the board engine to the registry.Game interface.
type Game struct {
	mode   Mode
	preset *config.DifficultyPreset // per-game override of difficultyPreset
	tick   uint64
	dt     float64

	cfg        config.ZooConfig
	difficulty *config.DifficultyManager
	engine     *Engine
	resolver   *Resolver
	layout     Layout

	// Scoring
	score     int
	matches   int
	combo     int // matches since the board last settled
	bestCombo int
	remaining float64 // seconds left, timed mode only

	// Keyboard cursor
	cursor  Pos
	grabbed bool

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused   bool
	gameOver bool
	tooSmall bool

	cues    core.CuePlayer
	observe core.Observer
	logger  *log.Logger
}

// New creates a new timed zoo game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewEndless creates a new endless zoo game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("zoo", func() registry.Game {
		return New()
	})
	registry.Register("zoo_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "zoo_endless"
	}
	return "zoo"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Zoo Match (Endless)"
	}
	return "Zoo Match"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.logger = logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.cues = cuePlayer
	g.observe = observer

	cfg, err := config.LoadZoo(configPath)
	if err != nil {
		g.logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.Sanitize(cfg)
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	config.ApplyZooPreset(&cfg, preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = 1 / float64(tickRate)

	g.tick = 0
	g.score = 0
	g.matches = 0
	g.combo = 0
	g.bestCombo = 0
	g.remaining = cfg.Gameplay.TimeLimit
	g.cursor = P(Width/2, Height/2)
	g.grabbed = false
	g.paused = false
	g.gameOver = false

	g.engine = NewEngine(EngineOptions{
		Seed:             rc.Seed,
		LerpSpeed:        cfg.Timing.LerpSpeed,
		ReadyLerpSpeed:   cfg.Timing.ReadyLerpSpeed,
		SpawnInterval:    cfg.Timing.SpawnInterval,
		PopulateRowDelay: cfg.Timing.PopulateRowDelay,
		Hooks: Hooks{
			Score:   g.onScore,
			Swap:    g.onSwap,
			Ready:   g.onReady,
			Settled: g.onSettled,
			Remove:  g.onRemove,
			Reject:  g.onReject,
		},
		Logger: g.logger,
	})
	g.resolver = NewResolver(g.engine, g.engine.Board(), cfg.Input.DragThreshold)

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.layout = NewLayout(rc.ScreenW, cfg.Layout.CellWidth, cfg.Layout.CellHeight)
	g.checkScreenSize()

	g.logger.Info("round started", "mode", g.mode, "seed", rc.Seed, "preset", preset)
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := g.layout.MinSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		g.resolver.Cancel()
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.engine.Board().IsReady() {
		g.handlePointer(in.Pointer)
		g.handleKeys(in)
	}

	g.engine.Step(g.dt)

	if g.mode == ModeTimed && g.engine.Board().IsReady() {
		g.remaining -= g.dt
		if g.remaining <= 0 {
			g.remaining = 0
			g.endRound()
		}
	}

	if g.observe != nil && g.tick%snapshotEvery == 0 {
		g.observe("snapshot", g.Snapshot())
	}

	return core.StepResult{State: g.State()}
}

// handlePointer feeds mouse presses and releases to the gesture resolver.
func (g *Game) handlePointer(events []core.PointerEvent) {
	for _, ev := range events {
		at := g.layout.ToWorld(ev.X, ev.Y)
		switch ev.Kind {
		case core.PointerPress:
			if g.resolver.Press(at) {
				g.grabbed = false
				if p := at.Nearest(); InBounds(p) {
					g.cursor = p
				}
			}
		case core.PointerRelease:
			if gesture, ok := g.resolver.Release(at); ok {
				g.applyGesture(gesture)
			}
		}
	}
}

// handleKeys moves the cursor, grabs tiles and swaps the grabbed tile.
func (g *Game) handleKeys(in core.InputFrame) {
	if in.Has(core.ActionSelect) {
		if _, ok := g.engine.Board().Occupant(g.cursor); ok || g.grabbed {
			g.grabbed = !g.grabbed
		}
	}

	dir, ok := directionFor(in)
	if !ok {
		return
	}

	if g.grabbed {
		g.grabbed = false
		if gesture, ok := g.resolver.ResolveKey(g.cursor, dir); ok {
			g.applyGesture(gesture)
		}
		return
	}

	if next := g.cursor.Step(dir, 1); InBounds(next) {
		g.cursor = next
	}
}

// applyGesture follows a successful swap with the cursor.
func (g *Game) applyGesture(gesture Gesture) {
	if !gesture.Swapped {
		return
	}
	g.cursor = gesture.To
}

// directionFor maps the first direction action in the frame to a compass direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return North, true
	case in.Has(core.ActionUpRight):
		return NorthEast, true
	case in.Has(core.ActionRight):
		return East, true
	case in.Has(core.ActionDownRight):
		return SouthEast, true
	case in.Has(core.ActionDown):
		return South, true
	case in.Has(core.ActionDownLeft):
		return SouthWest, true
	case in.Has(core.ActionLeft):
		return West, true
	case in.Has(core.ActionUpLeft):
		return NorthWest, true
	}
	return North, false
}

// endRound finishes a timed round.
func (g *Game) endRound() {
	g.gameOver = true
	g.grabbed = false
	g.resolver.Cancel()
	g.play(core.CueGameOver)
	g.emit(Event{Kind: EventGameOver})
	if g.observe != nil {
		g.observe("snapshot", g.Snapshot())
	}
	g.logger.Info("round over", "score", g.score, "matches", g.matches, "best_combo", g.bestCombo)
}

func (g *Game) onScore(run Run) {
	g.score += run.Length * g.cfg.Gameplay.PointsPerTile
	g.matches++
	g.combo++
	if g.combo > g.bestCombo {
		g.bestCombo = g.combo
	}
	if g.mode == ModeTimed {
		g.remaining += g.difficulty.TimeBonus(g.cfg.Gameplay.TimeBonus, g.score, int(g.tick))
	}
	g.play(core.CueMatch)
	r := run
	g.emit(Event{Kind: EventMatch, Run: &r})
}

func (g *Game) onSwap(a, b Pos) {
	g.play(core.CueSwap)
	g.emit(Event{Kind: EventSwap, From: &a, To: &b})
}

func (g *Game) onReady() {
	g.play(core.CueReady)
	g.emit(Event{Kind: EventReady})
}

func (g *Game) onSettled() {
	g.emit(Event{Kind: EventSettled, Combo: g.combo})
	g.combo = 0
}

func (g *Game) onRemove(*Tile) {
	g.play(core.CueRemove)
}

func (g *Game) onReject(p Pos, msg string) {
	g.emit(Event{Kind: EventReject, From: &p, Message: msg})
}

func (g *Game) play(c core.Cue) {
	if g.cues != nil {
		g.cues.Play(c)
	}
}

func (g *Game) emit(ev Event) {
	if g.observe == nil {
		return
	}
	ev.Tick = g.tick
	g.observe("event", ev)
}

// Engine returns the board engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Cursor returns the keyboard cursor cell and whether a tile is grabbed.
func (g *Game) Cursor() (Pos, bool) {
	return g.cursor, g.grabbed
}

// Remaining returns the seconds left in a timed round.
func (g *Game) Remaining() float64 {
	return g.remaining
}

// Layout returns the screen layout of the board.
func (g *Game) Layout() Layout {
	return g.layout
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary reports round statistics for the scoreboard.
func (g *Game) Summary() core.Summary {
	return core.Summary{
		Matches:   g.matches,
		BestCombo: g.bestCombo,
		Seconds:   float64(g.tick) * g.dt,
	}
}

// Resize recomputes the layout for a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = NewLayout(w, g.cfg.Layout.CellWidth, g.cfg.Layout.CellHeight)
	if g.resolver != nil {
		g.resolver.Cancel()
	}
	g.checkScreenSize()
}

// Endless reports whether the round has no clock.
func (g *Game) Endless() bool {
	return g.mode == ModeEndless
}

// SetDifficulty overrides the package preset for this game only.
// It takes effect on the next Reset.
func (g *Game) SetDifficulty(name string) {
	p := parsePreset(name)
	g.preset = &p
}
