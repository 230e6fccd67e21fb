package zoo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// patternType gives every cell a type that differs from all eight
// neighbours, so a patterned board holds no runs at all.
func patternType(p Pos) TileType {
	return TileType((p.X + 2*p.Y) % TileTypeCount)
}

// newFilledEngine returns an engine whose board is full and ready, laid out
// with patternType except for the overrides.
func newFilledEngine(t *testing.T, overrides map[Pos]TileType, hooks Hooks) *Engine {
	t.Helper()

	e := NewEngine(EngineOptions{Seed: 42, Hooks: hooks})
	e.SkipPopulation()
	for x := range Width {
		for y := range Height {
			p := P(x, y)
			kind, ok := overrides[p]
			if !ok {
				kind = patternType(p)
			}
			require.NotNil(t, e.Place(kind, p), "place %v", p)
		}
	}

	e.Step(stepDT)
	require.True(t, e.Board().IsReady(), "board should be ready once full")
	return e
}

// stepDT is one 60 Hz tick.
const stepDT = 1.0 / 60

// stepFor runs the engine for the given number of seconds.
func stepFor(e *Engine, seconds float64) {
	for n := int(seconds / stepDT); n > 0; n-- {
		e.Step(stepDT)
	}
}

// recordingFiller remembers fill requests.
type recordingFiller struct {
	requests []Pos
}

func (f *recordingFiller) RequestFill(p Pos) {
	f.requests = append(f.requests, p)
}

// recordingReporter remembers what a tile reported.
type recordingReporter struct {
	checks  []Pos
	cleared []Pos
	dirty   []int
}

func (r *recordingReporter) EnqueueMatchCheck(p Pos) { r.checks = append(r.checks, p) }
func (r *recordingReporter) ClearOccupant(p Pos)     { r.cleared = append(r.cleared, p) }
func (r *recordingReporter) FlagColumnDirty(x int)   { r.dirty = append(r.dirty, x) }
