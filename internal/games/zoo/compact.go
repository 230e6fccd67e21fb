package zoo

// Compact applies gravity to column x. Idle tiles slide down into the
// lowest empty rows, keeping their order. Cells reserved by tiles still in
// flight are left alone: they are neither emptied nor filled. Every cell
// that is still empty afterwards is handed to the filler.
func (b *Board) Compact(x int) {
	if x < 0 || x >= Width {
		return
	}

	now := b.clock.Now()
	dst := -1
	moved := 0

	for y := range Height {
		t := b.grid[x][y]
		switch {
		case t == nil:
			if dst == -1 {
				dst = y
			}
		case t.phase != Idle:
			// Reserved by a moving tile or about to be removed.
		case dst != -1:
			target := P(x, dst)
			b.grid[x][y] = nil
			t.MoveTo(target, now, b.lerpSpeed)
			b.SetOccupant(t, target)
			moved++
			dst = b.lowestEmpty(x, dst+1, y)
		}
	}

	requested := 0
	for y := range Height {
		if b.grid[x][y] == nil {
			requested++
			if b.filler != nil {
				b.filler.RequestFill(P(x, y))
			}
		}
	}

	if moved > 0 || requested > 0 {
		b.logger.Debug("compact", "column", x, "moved", moved, "refill", requested)
	}
}

// lowestEmpty returns the lowest empty row of column x in [from, to],
// or -1 if there is none.
func (b *Board) lowestEmpty(x, from, to int) int {
	for y := from; y <= to && y < Height; y++ {
		if b.grid[x][y] == nil {
			return y
		}
	}
	return -1
}
