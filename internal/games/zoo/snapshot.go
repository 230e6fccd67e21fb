package zoo

// GameStateType represents the current game state.
type GameStateType string

const (
	StateFilling     GameStateType = "filling"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// CellSnapshot is one grid cell. An empty Type means no tile.
type CellSnapshot struct {
	Type  string `json:"type,omitempty"`
	Phase string `json:"phase,omitempty"`
}

// Snapshot captures the game state for tests and spectators.
// Grid is indexed [y][x] with row 0 at the bottom.
type Snapshot struct {
	Tick      uint64                      `json:"tick"`
	Mode      string                      `json:"mode"`
	Score     int                         `json:"score"`
	Matches   int                         `json:"matches"`
	Combo     int                         `json:"combo"`
	Remaining float64                     `json:"remaining,omitempty"`
	Ready     bool                        `json:"ready"`
	Settling  bool                        `json:"settling"`
	State     GameStateType               `json:"state"`
	Grid      [Height][Width]CellSnapshot `json:"grid"`
}

// EventKind names a game event.
type EventKind string

const (
	EventReady    EventKind = "ready"
	EventSwap     EventKind = "swap"
	EventMatch    EventKind = "match"
	EventSettled  EventKind = "settled"
	EventReject   EventKind = "reject"
	EventGameOver EventKind = "game_over"
)

// Event is published to the observer as it happens.
type Event struct {
	Kind    EventKind `json:"kind"`
	Tick    uint64    `json:"tick"`
	Run     *Run      `json:"run,omitempty"`
	From    *Pos      `json:"from,omitempty"`
	To      *Pos      `json:"to,omitempty"`
	Combo   int       `json:"combo,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.engine.Board()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case !board.IsReady():
		state = StateFilling
	}

	s := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.score,
		Matches:  g.matches,
		Combo:    g.combo,
		Ready:    board.IsReady(),
		Settling: board.Settling(),
		State:    state,
	}
	if g.mode == ModeTimed {
		s.Remaining = g.remaining
	}
	for y := range Height {
		for x := range Width {
			c := board.Cell(P(x, y))
			if c.Kind == CellEmpty {
				continue
			}
			s.Grid[y][x] = CellSnapshot{Type: c.Type.String(), Phase: c.Phase.String()}
		}
	}
	return s
}
