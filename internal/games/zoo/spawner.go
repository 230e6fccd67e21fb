package zoo

import "math/rand"

// DefaultSpawnInterval is the cooldown between two spawns of one column, in seconds.
const DefaultSpawnInterval = 0.15

// Blueprint is a pending tile creation.
type Blueprint struct {
	Target Pos
	Type   TileType
}

// Spawner creates tiles for one column, one per cooldown interval.
type Spawner struct {
	column   int
	board    *Board
	rng      *rand.Rand
	interval float64
	timer    float64
	queue    []Blueprint
	queued   [Height]bool // targets already waiting in queue
	spawned  func(t *Tile)
}

// NewSpawner creates the spawner for column x. spawned is called with every
// tile the spawner creates, before the tile is placed on the board.
func NewSpawner(x int, board *Board, rng *rand.Rand, interval float64, spawned func(t *Tile)) *Spawner {
	if interval <= 0 {
		interval = DefaultSpawnInterval
	}
	return &Spawner{
		column:   x,
		board:    board,
		rng:      rng,
		interval: interval,
		spawned:  spawned,
	}
}

// Column returns the column this spawner feeds.
func (s *Spawner) Column() int {
	return s.column
}

// Pending returns the number of blueprints waiting to be spawned.
func (s *Spawner) Pending() int {
	return len(s.queue)
}

// Enqueue adds a tile of random type targeting the given cell.
func (s *Spawner) Enqueue(target Pos) {
	s.EnqueueBlueprint(Blueprint{
		Target: target,
		Type:   TileType(s.rng.Intn(TileTypeCount)),
	})
}

// EnqueueBlueprint adds an explicit blueprint. A target that is already
// waiting in the queue is not queued a second time.
func (s *Spawner) EnqueueBlueprint(bp Blueprint) {
	if bp.Target.X != s.column || !InBounds(bp.Target) {
		return
	}
	if s.queued[bp.Target.Y] {
		return
	}
	s.queued[bp.Target.Y] = true
	s.queue = append(s.queue, bp)
}

// Update advances the cooldown and materializes one blueprint when it expires.
// Blueprints whose target was taken while they waited, typically by a tile
// that compaction slid down, are dropped without spending the cooldown.
func (s *Spawner) Update(dt float64) {
	s.timer += dt
	if s.timer < s.interval {
		return
	}

	for len(s.queue) > 0 {
		bp := s.queue[0]
		s.queue = s.queue[1:]
		s.queued[bp.Target.Y] = false
		if s.board.Cell(bp.Target).Kind != CellEmpty {
			continue
		}
		s.timer = 0
		s.spawn(bp)
		return
	}
}

// spawn creates the tile above the board and reserves its destination
// right away, long before the tile arrives there.
func (s *Spawner) spawn(bp Blueprint) {
	t := s.board.newTile(bp.Type, P(s.column, SpawnRow))
	t.MoveTo(bp.Target, s.board.Now(), s.board.LerpSpeed())
	if s.spawned != nil {
		s.spawned(t)
	}
	s.board.SetOccupant(t, bp.Target)
}

// Spawners holds one spawner per column and routes fill requests.
type Spawners [Width]*Spawner

// RequestFill queues a random tile for p in the owning column.
func (ss *Spawners) RequestFill(p Pos) {
	if p.X < 0 || p.X >= Width || ss[p.X] == nil {
		return
	}
	ss[p.X].Enqueue(p)
}

// Update advances every spawner.
func (ss *Spawners) Update(dt float64) {
	for _, s := range ss {
		if s != nil {
			s.Update(dt)
		}
	}
}

// Pending returns the number of blueprints waiting across all columns.
func (ss *Spawners) Pending() int {
	n := 0
	for _, s := range ss {
		if s != nil {
			n += s.Pending()
		}
	}
	return n
}
