package invaders

// Snapshot captures the complete simulation state for determinism testing
// and replay. Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lives    int
	PlayerX  int
	Dir      Direction
	LastBomb int64 // nanoseconds of logical time
	Over     bool
	Cause    EndCause

	// Entity positions flattened as x,y pairs.
	ShotData    []int
	BombData    []int
	InvaderData []int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	return Snapshot{
		Tick:        g.tick,
		Score:       w.Score,
		Lives:       w.Lives,
		PlayerX:     w.Player.X,
		Dir:         w.Dir,
		LastBomb:    w.LastBomb.Nanoseconds(),
		Over:        w.Over,
		Cause:       w.Cause,
		ShotData:    flattenPoints(w.Shots),
		BombData:    flattenPoints(w.Bombs),
		InvaderData: flattenPoints(w.Invaders),
	}
}

func flattenPoints(pts []Point) []int {
	data := make([]int, 0, len(pts)*2)
	for _, p := range pts {
		data = append(data, p.X, p.Y)
	}
	return data
}

// Hash folds the snapshot into a single comparable value.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dir)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastBomb) //#nosec G115 -- hash computation
	if snap.Over {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Cause) //#nosec G115 -- hash computation

	for _, v := range snap.ShotData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BombData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.InvaderData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
