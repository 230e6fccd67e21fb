package zoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileInterpolation(t *testing.T) {
	r := &recordingReporter{}
	tile := NewTile(1, Snake, P(0, 3), r)
	assert.Equal(t, Idle, tile.Phase())

	tile.MoveTo(P(0, 0), 0, 0.15)
	assert.Equal(t, Moving, tile.Phase())
	assert.Equal(t, P(0, 0), tile.Target())

	tile.Advance(0.225)
	assert.InDelta(t, 1.5, tile.Position().Y, 1e-9, "halfway after half of 3 x 0.15s")
	assert.InDelta(t, 0.5, tile.Progress(0.225), 1e-9)
	assert.Empty(t, r.checks)

	tile.Advance(0.45)
	assert.Equal(t, Idle, tile.Phase())
	assert.Equal(t, P(0, 0).Vec(), tile.Position())
	assert.Equal(t, []Pos{P(0, 0)}, r.checks, "arrival asks for one match check")

	// Idle tiles ignore further physics steps.
	tile.Advance(1)
	assert.Len(t, r.checks, 1)
}

func TestTileDiagonalMoveDuration(t *testing.T) {
	tile := NewTile(1, Parrot, P(2, 2), nil)
	tile.MoveTo(P(3, 3), 0, 0.1)

	// Diagonal distance is about 1.41 cells, so the move lasts 0.141s.
	tile.Advance(0.1)
	assert.Equal(t, Moving, tile.Phase())
	tile.Advance(0.15)
	assert.Equal(t, Idle, tile.Phase())
}

func TestTileZeroDistanceMove(t *testing.T) {
	r := &recordingReporter{}
	tile := NewTile(1, Panda, P(4, 4), r)

	tile.MoveTo(P(4, 4), 2, 0.15)
	assert.Equal(t, Idle, tile.Phase())
	assert.Equal(t, 1.0, tile.Progress(2))

	tile.Advance(3)
	assert.Empty(t, r.checks)
}

func TestTileUpdateRemovesMatched(t *testing.T) {
	r := &recordingReporter{}
	tile := NewTile(1, Giraffe, P(3, 1), r)

	tile.Update()
	assert.False(t, tile.Removed(), "idle tiles stay")

	tile.phase = Matched
	tile.Update()
	tile.Update()
	assert.True(t, tile.Removed())
	assert.Equal(t, []Pos{P(3, 1)}, r.cleared)
	assert.Equal(t, []int{3}, r.dirty)
}
