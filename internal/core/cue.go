package core

// Cue is a short sound effect a game asks the platform to play.
type Cue int

const (
	CueMatch Cue = iota
	CueRemove
	CueSwap
	CueReady
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueMatch:
		return "match"
	case CueRemove:
		return "remove"
	case CueSwap:
		return "swap"
	case CueReady:
		return "ready"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CuePlayer plays cues. Implementations must not block the game loop.
type CuePlayer interface {
	Play(c Cue)
}

// Observer receives published game data (snapshots and events) keyed by kind.
type Observer func(kind string, v any)
