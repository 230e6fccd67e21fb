package zoo

// CheckMatches looks for runs through center along all four axes and
// marks every run of MinMatch or more as matched. A run whose tiles are all
// matched already is skipped so it is never scored twice.
func (b *Board) CheckMatches(center Pos) []Run {
	origin := b.resting(center)
	if origin == nil {
		return nil
	}

	var counts [len(Directions)]int
	for _, d := range Directions {
		p := center.Step(d, 1)
		for {
			t := b.resting(p)
			if t == nil || t.kind != origin.kind {
				break
			}
			counts[d]++
			p = p.Step(d, 1)
		}
	}

	var runs []Run
	for _, d := range Directions[:4] {
		back := Invert(d)
		run := Run{
			Start:     center.Step(back, counts[back]),
			Length:    1 + counts[d] + counts[back],
			Direction: d,
			Type:      origin.kind,
		}
		if run.Length < MinMatch || !b.hasUnmatched(run) {
			continue
		}

		b.settling = true
		b.markMatched(run)
		runs = append(runs, run)

		b.logger.Debug("match", "type", run.Type, "start", run.Start, "length", run.Length, "direction", run.Direction)
		if b.hooks.Score != nil {
			b.hooks.Score(run)
		}
	}
	return runs
}

// hasUnmatched reports whether any tile in the run is not yet matched.
func (b *Board) hasUnmatched(run Run) bool {
	for _, p := range run.Cells() {
		if t := b.resting(p); t != nil && t.phase != Matched {
			return true
		}
	}
	return false
}

// markMatched flags every resting tile of the run as matched.
func (b *Board) markMatched(run Run) {
	for _, p := range run.Cells() {
		if t := b.resting(p); t != nil {
			t.phase = Matched
		}
	}
}
