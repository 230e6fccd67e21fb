package zoo

// DefaultPopulateRowDelay is the pause between two rows of the initial fill, in seconds.
const DefaultPopulateRowDelay = 0.2

// PopulationState drops the initial tiles into the board one row at a
// time, bottom row first.
type PopulationState struct {
	Row           int
	RowsRemaining int
	WaitElapsed   float64
	Delay         float64
}

// NewPopulation returns a population that fills the whole board.
// The first row drops on the first Advance.
func NewPopulation(delay float64) PopulationState {
	if delay <= 0 {
		delay = DefaultPopulateRowDelay
	}
	return PopulationState{
		RowsRemaining: Height,
		WaitElapsed:   delay,
		Delay:         delay,
	}
}

// Done reports whether every row has been requested.
func (ps *PopulationState) Done() bool {
	return ps.RowsRemaining <= 0
}

// Advance moves the population forward by dt and requests the next row
// from f once the delay has passed.
func (ps *PopulationState) Advance(dt float64, f Filler) {
	if ps.Done() {
		return
	}
	ps.WaitElapsed += dt
	if ps.WaitElapsed < ps.Delay {
		return
	}
	ps.WaitElapsed = 0

	for x := range Width {
		f.RequestFill(P(x, ps.Row))
	}
	ps.Row++
	ps.RowsRemaining--
}
