package invaders

import "time"

// Advance runs one simulation tick at logical time now. A terminal world
// is frozen: the call is a no-op until the driver resets or exits.
//
// Step order matters and each step operates on the result of the previous
// one: projectiles move, the player is checked against bombs, shots are
// checked against invaders, the swarm fires, an emptied swarm respawns
// (ending the tick), and finally the swarm marches.
func (w *World) Advance(now time.Duration) {
	if w.Over {
		return
	}

	w.moveProjectiles()

	if w.resolveBombHits() {
		// Lives ran out; the rest of the tick is not evaluated.
		return
	}

	w.resolveShotHits()
	w.dropBomb(now)

	if len(w.Invaders) == 0 {
		// A new wave spawns in place of movement this tick.
		w.SpawnWave()
		return
	}

	w.marchSwarm()
}

// moveProjectiles advances every shot one cell up and every bomb one cell
// down, then discards whatever left the board before any collision is
// checked. Shots die at the top margin (y <= 1); bombs die one row below
// the player's sprite.
func (w *World) moveProjectiles() {
	kept := w.Shots[:0]
	for _, s := range w.Shots {
		s.Y--
		if s.Y > 1 {
			kept = append(kept, s)
		}
	}
	w.Shots = kept

	bottom := w.Rules.PlayerRow() + SpriteH
	keptBombs := w.Bombs[:0]
	for _, b := range w.Bombs {
		b.Y++
		if b.Y < bottom {
			keptBombs = append(keptBombs, b)
		}
	}
	w.Bombs = keptBombs
}

// resolveBombHits consumes every bomb overlapping the player's box.
// Any number of simultaneous hits cost exactly one life; the player
// respawns at the board mid-point. Returns true when the hit ended the
// game, which aborts the remainder of the tick.
func (w *World) resolveBombHits() bool {
	player := w.playerBox()
	hit := false

	kept := w.Bombs[:0]
	for _, b := range w.Bombs {
		if player.Contains(b.X, b.Y) {
			hit = true
			continue
		}
		kept = append(kept, b)
	}
	w.Bombs = kept

	if !hit {
		return false
	}

	w.Lives--
	w.Player.X = w.Rules.Width / 2
	if w.Lives == 0 {
		w.Over = true
		w.Cause = EndShotDown
		return true
	}
	return false
}

// resolveShotHits runs the shot-versus-invader pass: each live shot is
// tested against invaders in order, kills the first one it overlaps, and
// is consumed. An invader dies to at most one shot per tick. Kills and
// consumed shots are marked first and compacted after the full pass so
// iteration order stays stable.
func (w *World) resolveShotHits() {
	if len(w.Shots) == 0 || len(w.Invaders) == 0 {
		return
	}

	alive := make([]bool, len(w.Invaders))
	for i := range alive {
		alive[i] = true
	}
	keep := make([]bool, len(w.Shots))
	for i := range keep {
		keep[i] = true
	}

	for i, shot := range w.Shots {
		for j, inv := range w.Invaders {
			if !alive[j] {
				continue
			}
			if spriteBox(inv).Contains(shot.X, shot.Y) {
				alive[j] = false
				keep[i] = false
				w.Score += w.Rules.KillPoints
				break // shot is used up
			}
		}
	}

	keptInvaders := w.Invaders[:0]
	for j, inv := range w.Invaders {
		if alive[j] {
			keptInvaders = append(keptInvaders, inv)
		}
	}
	w.Invaders = keptInvaders

	keptShots := w.Shots[:0]
	for i, shot := range w.Shots {
		if keep[i] {
			keptShots = append(keptShots, shot)
		}
	}
	w.Shots = keptShots
}

// frontRank collects the invaders with a clear line of fire: an invader
// is in the front rank when no other invader in an overlapping column
// range sits strictly below it.
func (w *World) frontRank() []Point {
	var front []Point
	for _, a := range w.Invaders {
		shadowed := false
		for _, b := range w.Invaders {
			if a.X >= b.X && a.X < b.X+SpriteW && a.Y < b.Y {
				shadowed = true
				break
			}
		}
		if !shadowed {
			front = append(front, a)
		}
	}
	return front
}

// dropBomb lets the swarm fire at most one bomb per tick once the
// cooldown elapsed. The shooter is picked from the front rank by the
// elapsed time in nanoseconds modulo the candidate count: not a real RNG,
// just a deterministic jitter source driven by the clock.
func (w *World) dropBomb(now time.Duration) {
	if len(w.Invaders) == 0 {
		return
	}
	elapsed := now - w.LastBomb
	if elapsed <= w.Rules.FireInterval {
		return
	}

	front := w.frontRank()
	if len(front) == 0 {
		return
	}

	shooter := front[int(elapsed.Nanoseconds()%int64(len(front)))]
	w.Bombs = append(w.Bombs, Point{X: shooter.X + 1, Y: shooter.Y + SpriteH})
	w.LastBomb = now
}

// marchSwarm moves the formation. When any invader stands at the
// horizontal boundary for the current direction the whole swarm reverses
// and descends one row instead of stepping sideways; a descent that
// reaches the player's row ends the game on the spot.
//
// The rightward boundary triggers one cell before the wall on purpose:
// the original behavior lets the formation stack visibly short of the
// right edge, and the asymmetry with the player clamp is intentional.
func (w *World) marchSwarm() {
	atWall := false
	for _, inv := range w.Invaders {
		switch w.Dir {
		case DirLeft:
			if inv.X == 0 {
				atWall = true
			}
		case DirRight:
			if inv.X >= w.Rules.Width-2 {
				atWall = true
			}
		}
		if atWall {
			break
		}
	}

	if atWall {
		if w.Dir == DirLeft {
			w.Dir = DirRight
		} else {
			w.Dir = DirLeft
		}
		for i := range w.Invaders {
			w.Invaders[i].Y++
			if w.Invaders[i].Y+1 >= w.Player.Y {
				w.Over = true
				w.Cause = EndInvasion
				return
			}
		}
		return
	}

	for i := range w.Invaders {
		if w.Dir == DirLeft {
			w.Invaders[i].X--
		} else {
			w.Invaders[i].X++
		}
	}
}
