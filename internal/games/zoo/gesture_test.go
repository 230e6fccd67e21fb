package zoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorFor(t *testing.T) {
	tests := []struct {
		angle float64
		want  Direction
	}{
		{0, East},
		{22.5, East},
		{-22.4, East},
		{22.6, NorthEast},
		{45, NorthEast},
		{67.5, NorthEast},
		{67.6, North},
		{90, North},
		{112.5, North},
		{135, NorthWest},
		{157.5, NorthWest},
		{157.6, West},
		{180, West},
		{-180, West},
		{-157.5, West},
		{-157.4, SouthWest},
		{-135, SouthWest},
		{-112.5, SouthWest},
		{-90, South},
		{-67.5, South},
		{-45, SouthEast},
		{-22.5, SouthEast},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SectorFor(tc.angle), "angle %.1f", tc.angle)
	}
}

func TestAngleBetween(t *testing.T) {
	origin := Vec{X: 1, Y: 1}
	assert.InDelta(t, 0, AngleBetween(origin, Vec{X: 2, Y: 1}), 1e-9)
	assert.InDelta(t, 90, AngleBetween(origin, Vec{X: 1, Y: 2}), 1e-9)
	assert.InDelta(t, -45, AngleBetween(origin, Vec{X: 2, Y: 0}), 1e-9)
	assert.InDelta(t, 180, AngleBetween(origin, Vec{X: 0, Y: 1}), 1e-9)
}

func TestValidMove(t *testing.T) {
	tests := []struct {
		name string
		p    Pos
		d    Direction
		want bool
	}{
		{"center any", P(2, 3), NorthWest, true},
		{"east edge outward", P(Width-1, 3), East, false},
		{"east edge diagonal outward", P(Width-1, 3), SouthEast, false},
		{"east edge inward", P(Width-1, 3), West, true},
		{"west edge outward", P(0, 3), NorthWest, false},
		{"top edge up", P(2, Height-1), North, false},
		{"top edge down", P(2, Height-1), SouthWest, true},
		{"bottom edge down", P(2, 0), South, false},
		{"corner", P(0, 0), NorthEast, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidMove(tc.p, tc.d))
		})
	}
}

func newResolverEngine(t *testing.T) (*Engine, *Resolver, *int) {
	t.Helper()
	swaps := 0
	e := newFilledEngine(t, nil, Hooks{Swap: func(a, b Pos) { swaps++ }})
	return e, NewResolver(e, e.Board(), DefaultDragThreshold), &swaps
}

func TestResolverSwipe(t *testing.T) {
	_, r, swaps := newResolverEngine(t)

	require.True(t, r.Press(Vec{X: 2.1, Y: 3}))
	assert.True(t, r.Pressing())

	g, ok := r.Release(Vec{X: 2.6, Y: 3.6})
	require.True(t, ok)
	assert.False(t, r.Pressing())
	assert.Equal(t, P(2, 3), g.From)
	assert.Equal(t, P(3, 4), g.To)
	assert.Equal(t, NorthEast, g.Direction)
	assert.True(t, g.Swapped)
	assert.Equal(t, 1, *swaps)
}

func TestResolverEastEdgeRejected(t *testing.T) {
	e, r, swaps := newResolverEngine(t)

	require.True(t, r.Press(Vec{X: 4, Y: 2}))
	_, ok := r.Release(Vec{X: 4.6, Y: 2})
	assert.False(t, ok)
	assert.Equal(t, 0, *swaps)
	assert.True(t, e.Board().Full())
}

func TestResolverBelowThreshold(t *testing.T) {
	_, r, swaps := newResolverEngine(t)

	require.True(t, r.Press(Vec{X: 1, Y: 1}))
	_, ok := r.Release(Vec{X: 1.05, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, 0, *swaps)
}

func TestResolverPressMiss(t *testing.T) {
	_, r, _ := newResolverEngine(t)

	assert.False(t, r.Press(Vec{X: -3, Y: 2}))
	assert.False(t, r.Pressing())

	_, ok := r.Release(Vec{X: 0, Y: 2})
	assert.False(t, ok, "release without a press does nothing")
}

func TestResolverSwipeWhileMoving(t *testing.T) {
	e, r, swaps := newResolverEngine(t)
	require.True(t, e.Board().TrySwap(P(0, 0), P(1, 0)))
	require.Equal(t, 1, *swaps)

	// The tile now heading to (1,0) still sits at (0,0) on screen.
	require.True(t, r.Press(Vec{X: 0, Y: 0}))
	g, ok := r.Release(Vec{X: 0, Y: 0.8})
	require.True(t, ok)
	assert.False(t, g.Swapped, "tiles in flight cannot be swapped")
	assert.Equal(t, 1, *swaps)
}

func TestResolveKey(t *testing.T) {
	_, r, swaps := newResolverEngine(t)

	g, ok := r.ResolveKey(P(1, 1), SouthWest)
	require.True(t, ok)
	assert.Equal(t, P(0, 0), g.To)
	assert.True(t, g.Swapped)

	_, ok = r.ResolveKey(P(0, 3), West)
	assert.False(t, ok)
	_, ok = r.ResolveKey(P(-1, 3), East)
	assert.False(t, ok)
	assert.Equal(t, 1, *swaps)
}

func TestResolverPickedTileNoLongerResting(t *testing.T) {
	tests := []struct {
		name  string
		spoil func(t *testing.T, e *Engine, picked *Tile)
	}{
		{"swapped away", func(t *testing.T, e *Engine, _ *Tile) {
			require.True(t, e.Board().TrySwap(P(2, 3), P(2, 4)))
		}},
		{"matched", func(_ *testing.T, _ *Engine, picked *Tile) {
			picked.phase = Matched
		}},
		{"removed", func(t *testing.T, e *Engine, picked *Tile) {
			picked.phase = Matched
			e.Step(stepDT)
			require.True(t, picked.Removed())
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, r, swaps := newResolverEngine(t)

			require.True(t, r.Press(Vec{X: 2, Y: 3}))
			picked, ok := e.Board().Occupant(P(2, 3))
			require.True(t, ok)
			tc.spoil(t, e, picked)
			spoiled := *swaps

			_, ok = r.Release(Vec{X: 2.6, Y: 3})
			assert.False(t, ok)
			assert.False(t, r.Pressing())
			assert.Equal(t, spoiled, *swaps, "release must not swap")
		})
	}
}
