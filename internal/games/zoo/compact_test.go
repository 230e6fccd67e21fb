package zoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(f Filler) *Board {
	b := NewBoard(BoardOptions{})
	b.Attach(f)
	return b
}

// put places an idle tile directly on the board.
func put(b *Board, kind TileType, p Pos) *Tile {
	t := b.newTile(kind, p)
	b.SetOccupant(t, p)
	return t
}

func TestCompactGravity(t *testing.T) {
	f := &recordingFiller{}
	b := newTestBoard(f)

	low := put(b, Parrot, P(0, 1))
	high := put(b, Snake, P(0, 3))
	other := put(b, Hippo, P(1, 4))

	b.Compact(0)

	assert.Same(t, low, b.raw(P(0, 0)))
	assert.Same(t, high, b.raw(P(0, 1)))
	assert.Nil(t, b.raw(P(0, 2)))
	assert.Nil(t, b.raw(P(0, 3)))
	assert.Equal(t, Moving, low.Phase())
	assert.Equal(t, Moving, high.Phase())
	assert.Equal(t, P(0, 1), high.Target())

	// Other columns are untouched.
	assert.Same(t, other, b.raw(P(1, 4)))
	assert.Equal(t, Idle, other.Phase())

	assert.Equal(t, []Pos{P(0, 2), P(0, 3), P(0, 4), P(0, 5), P(0, 6)}, f.requests)
}

func TestCompactKeepsReservedCells(t *testing.T) {
	f := &recordingFiller{}
	b := newTestBoard(f)

	// A tile on its way into row 0 holds that cell.
	inbound := b.newTile(Giraffe, P(0, SpawnRow))
	inbound.MoveTo(P(0, 0), b.Now(), b.LerpSpeed())
	b.SetOccupant(inbound, P(0, 0))

	idle := put(b, Panda, P(0, 2))

	b.Compact(0)

	assert.Same(t, inbound, b.raw(P(0, 0)), "reservation survives compaction")
	assert.Same(t, idle, b.raw(P(0, 1)))
	assert.Nil(t, b.raw(P(0, 2)))
	assert.NotContains(t, f.requests, P(0, 0))
	assert.Contains(t, f.requests, P(0, 2))
}

func TestCompactStableOrder(t *testing.T) {
	b := newTestBoard(nil)

	var ids []TileID
	for _, y := range []int{1, 2, 4, 6} {
		ids = append(ids, put(b, patternType(P(0, y)), P(0, y)).ID())
	}

	b.Compact(0)

	for y, id := range ids {
		got := b.Cell(P(0, y))
		require.Equal(t, CellOccupied, got.Kind, "row %d", y)
		assert.Equal(t, id, got.ID, "row %d", y)
	}
	for y := len(ids); y < Height; y++ {
		assert.Equal(t, CellEmpty, b.Cell(P(0, y)).Kind, "row %d", y)
	}
}

func TestTickCompactsDirtyColumns(t *testing.T) {
	f := &recordingFiller{}
	b := newTestBoard(f)
	put(b, Parrot, P(3, 5))

	b.Tick()
	assert.Empty(t, f.requests, "clean columns are left alone")

	b.FlagColumnDirty(3)
	b.FlagColumnDirty(Width) // ignored
	b.Tick()
	assert.Len(t, f.requests, Height-1)
	assert.NotNil(t, b.raw(P(3, 0)))
}
