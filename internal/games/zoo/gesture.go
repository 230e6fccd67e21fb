package zoo

import "math"

// DefaultDragThreshold is the shortest drag, in cells, that counts as a swipe.
const DefaultDragThreshold = 0.1

// Picker finds the tile under a world-space point.
type Picker interface {
	Pick(at Vec) (*Tile, bool)
}

// Swapper performs a swap between two cells.
type Swapper interface {
	TrySwap(a, b Pos) bool
}

// Gesture is the outcome of a completed drag.
type Gesture struct {
	From      Pos
	To        Pos
	Direction Direction
	Angle     float64
	Swapped   bool
}

// Resolver turns drags into swap requests.
type Resolver struct {
	picker    Picker
	swapper   Swapper
	threshold float64

	pressing bool
	start    Vec
	picked   *Tile
}

// NewResolver creates a gesture resolver.
func NewResolver(picker Picker, swapper Swapper, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Resolver{
		picker:    picker,
		swapper:   swapper,
		threshold: threshold,
	}
}

// Pressing reports whether a drag is in progress.
func (r *Resolver) Pressing() bool {
	return r.pressing
}

// Press starts a drag at the given point. Returns false, and starts
// nothing, when there is no tile under the point.
func (r *Resolver) Press(at Vec) bool {
	r.Cancel()
	t, ok := r.picker.Pick(at)
	if !ok {
		return false
	}
	r.pressing = true
	r.start = at
	r.picked = t
	return true
}

// Cancel abandons the current drag.
func (r *Resolver) Cancel() {
	r.pressing = false
	r.picked = nil
}

// Release finishes the drag. The second result is false when no gesture
// was recognised: no press, a pressed tile that is no longer resting, a
// drag below the threshold or an outward swipe at the board edge.
func (r *Resolver) Release(at Vec) (Gesture, bool) {
	if !r.pressing {
		return Gesture{}, false
	}
	picked := r.picked
	r.Cancel()

	// The pressed tile went away or started moving during the drag.
	if picked.Removed() || picked.Phase() != Idle {
		return Gesture{}, false
	}
	if at.Sub(r.start).Len() < r.threshold {
		return Gesture{}, false
	}

	origin := picked.Position()
	angle := AngleBetween(origin, at)
	dir := SectorFor(angle)
	from := origin.Cell()
	if !ValidMove(from, dir) {
		return Gesture{}, false
	}

	to := from.Step(dir, 1)
	return Gesture{
		From:      from,
		To:        to,
		Direction: dir,
		Angle:     angle,
		Swapped:   r.swapper.TrySwap(from, to),
	}, true
}

// ResolveKey requests a swap of the tile at cell with its neighbour in
// direction d, applying the same edge rules as a drag.
func (r *Resolver) ResolveKey(cell Pos, d Direction) (Gesture, bool) {
	if !InBounds(cell) || !ValidMove(cell, d) {
		return Gesture{}, false
	}
	to := cell.Step(d, 1)
	return Gesture{
		From:      cell,
		To:        to,
		Direction: d,
		Swapped:   r.swapper.TrySwap(cell, to),
	}, true
}

// AngleBetween returns the angle of the vector from a to b against the
// positive x axis, in degrees within [-180, 180].
func AngleBetween(a, b Vec) float64 {
	d := b.Sub(a)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// SectorFor maps an angle in degrees to the compass direction whose
// 45-degree sector contains it. Sectors are open at the lower bound and
// closed at the upper one; West wraps around ±180.
func SectorFor(angle float64) Direction {
	switch {
	case angle > -22.5 && angle <= 22.5:
		return East
	case angle > 22.5 && angle <= 67.5:
		return NorthEast
	case angle > 67.5 && angle <= 112.5:
		return North
	case angle > 112.5 && angle <= 157.5:
		return NorthWest
	case angle > -67.5 && angle <= -22.5:
		return SouthEast
	case angle > -112.5 && angle <= -67.5:
		return South
	case angle > -157.5 && angle <= -112.5:
		return SouthWest
	default:
		return West
	}
}

// ValidMove reports whether a swap from p toward d stays on the board.
// Edge columns cannot swap outward and edge rows cannot swap further up or down.
func ValidMove(p Pos, d Direction) bool {
	dx, dy := d.Delta()
	if p.X == Width-1 && dx > 0 {
		return false
	}
	if p.X == 0 && dx < 0 {
		return false
	}
	if p.Y == Height-1 && dy > 0 {
		return false
	}
	if p.Y == 0 && dy < 0 {
		return false
	}
	return true
}
