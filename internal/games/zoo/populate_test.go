package zoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopulationRows(t *testing.T) {
	f := &recordingFiller{}
	ps := NewPopulation(0.2)
	assert.False(t, ps.Done())

	ps.Advance(stepDT, f)
	assert.Equal(t, []Pos{P(0, 0), P(1, 0), P(2, 0), P(3, 0), P(4, 0)}, f.requests, "first row drops at once")

	ps.Advance(0.1, f)
	assert.Len(t, f.requests, Width, "waits for the row delay")

	ps.Advance(0.1, f)
	assert.Len(t, f.requests, 2*Width)
	assert.Equal(t, P(4, 1), f.requests[len(f.requests)-1])

	for range Height {
		ps.Advance(0.2, f)
	}
	assert.True(t, ps.Done())
	assert.Len(t, f.requests, Width*Height)
}

func TestPopulationDefaultDelay(t *testing.T) {
	ps := NewPopulation(0)
	assert.Equal(t, DefaultPopulateRowDelay, ps.Delay)
	assert.Equal(t, Height, ps.RowsRemaining)
}

func TestEngineSkipPopulation(t *testing.T) {
	e := NewEngine(EngineOptions{})
	assert.True(t, e.Populating())
	e.SkipPopulation()
	assert.False(t, e.Populating())

	stepFor(e, 1)
	assert.Empty(t, e.Tiles())
	assert.False(t, e.Board().IsReady())
}
