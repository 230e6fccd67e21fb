package zoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvert(t *testing.T) {
	pairs := map[Direction]Direction{
		North:     South,
		NorthEast: SouthWest,
		East:      West,
		SouthEast: NorthWest,
	}
	for d, opposite := range pairs {
		assert.Equal(t, opposite, Invert(d), "Invert(%s)", d)
		assert.Equal(t, d, Invert(opposite), "Invert(%s)", opposite)
	}

	for _, d := range Directions {
		assert.Equal(t, d, Invert(Invert(d)), "double invert of %s", d)

		dx, dy := d.Delta()
		ix, iy := Invert(d).Delta()
		assert.Equal(t, 0, dx+ix, "%s dx", d)
		assert.Equal(t, 0, dy+iy, "%s dy", d)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{North, 0, 1},
		{NorthEast, 1, 1},
		{East, 1, 0},
		{SouthEast, 1, -1},
		{South, 0, -1},
		{SouthWest, -1, -1},
		{West, -1, 0},
		{NorthWest, -1, 1},
	}
	for _, tc := range tests {
		dx, dy := tc.d.Delta()
		assert.Equal(t, tc.dx, dx, "%s dx", tc.d)
		assert.Equal(t, tc.dy, dy, "%s dy", tc.d)
	}
}

func TestPosStep(t *testing.T) {
	p := P(2, 3)
	assert.Equal(t, P(2, 5), p.Step(North, 2))
	assert.Equal(t, P(0, 1), p.Step(SouthWest, 2))
	assert.True(t, p.Equal(P(2, 3)))
	assert.InDelta(t, 5.0, P(0, 0).Distance(P(3, 4)), 1e-9)
	assert.False(t, InBounds(P(Width, 0)))
	assert.False(t, InBounds(P(0, SpawnRow)))
}
