package invaders

import (
	"testing"
	"time"
)

// simTick mirrors the default simulation cadence for tests that drive the
// world directly.
const simTick = 200 * time.Millisecond

func newTestWorld() World {
	return NewWorld(DefaultRules())
}

func TestNewWorldSpawnsFirstWave(t *testing.T) {
	w := newTestWorld()

	if len(w.Invaders) != 12 {
		t.Fatalf("expected 2x6 wave, got %d invaders", len(w.Invaders))
	}
	if w.Lives != 3 {
		t.Errorf("starting lives = %d, expected 3", w.Lives)
	}
	if w.Player.X != 19 || w.Player.Y != 20 {
		t.Errorf("player spawned at (%d, %d), expected (19, 20)", w.Player.X, w.Player.Y)
	}
	if w.Dir != DirRight {
		t.Errorf("initial direction = %s, expected right", w.Dir)
	}

	// Row-major formation offset (2,2) with spacing 5x4
	expectFirst := Point{X: 2, Y: 2}
	expectLast := Point{X: 27, Y: 6}
	if w.Invaders[0] != expectFirst {
		t.Errorf("first invader at %+v, expected %+v", w.Invaders[0], expectFirst)
	}
	if w.Invaders[len(w.Invaders)-1] != expectLast {
		t.Errorf("last invader at %+v, expected %+v", w.Invaders[len(w.Invaders)-1], expectLast)
	}
}

func TestSpawnWaveClearsProjectiles(t *testing.T) {
	w := newTestWorld()
	w.Shots = append(w.Shots, Point{X: 5, Y: 10})
	w.Bombs = append(w.Bombs, Point{X: 6, Y: 12})

	w.SpawnWave()

	if len(w.Shots) != 0 || len(w.Bombs) != 0 {
		t.Errorf("new wave should start clean, got %d shots and %d bombs", len(w.Shots), len(w.Bombs))
	}
	if len(w.Invaders) != 12 {
		t.Errorf("wave size = %d, expected 12", len(w.Invaders))
	}
}

func TestProjectileCulling(t *testing.T) {
	w := newTestWorld()
	w.Shots = []Point{{X: 5, Y: 2}, {X: 6, Y: 10}}
	w.Bombs = []Point{{X: 7, Y: 21}, {X: 8, Y: 10}}

	w.Advance(simTick)

	// Off-board projectiles are discarded after moving, before collisions.
	for _, s := range w.Shots {
		if s.Y <= 1 {
			t.Errorf("shot at y=%d survived the top margin", s.Y)
		}
	}
	for _, b := range w.Bombs {
		if b.Y >= 22 {
			t.Errorf("bomb at y=%d survived the bottom margin", b.Y)
		}
	}
	if len(w.Shots) != 1 {
		t.Errorf("expected 1 surviving shot, got %d", len(w.Shots))
	}
	if len(w.Bombs) != 1 {
		t.Errorf("expected 1 surviving bomb, got %d", len(w.Bombs))
	}
}

func TestShotKillsInvader(t *testing.T) {
	w := newTestWorld()
	// One invader under fire, one far away so the wave does not respawn.
	w.Invaders = []Point{{X: 2, Y: 2}, {X: 30, Y: 2}}
	// Shot moves up to (3, 2) this tick, inside the 3x2 box of (2, 2).
	w.Shots = []Point{{X: 3, Y: 3}}

	w.Advance(simTick)

	if w.Score != 10 {
		t.Errorf("score = %d, expected 10", w.Score)
	}
	if len(w.Shots) != 0 {
		t.Errorf("shot should be consumed, %d remain", len(w.Shots))
	}
	for _, inv := range w.Invaders {
		if inv.X <= 5 && inv.Y <= 3 {
			t.Errorf("hit invader still alive at %+v", inv)
		}
	}
}

func TestShotKillsAtMostOneInvader(t *testing.T) {
	w := newTestWorld()
	// Overlapping column footprints: the shot cell is inside both boxes.
	w.Invaders = []Point{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 30, Y: 2}}
	w.Shots = []Point{{X: 4, Y: 3}} // moves to (4, 2)

	w.Advance(simTick)

	if w.Score != 10 {
		t.Errorf("score = %d, expected exactly one kill worth 10", w.Score)
	}
	// First invader in iteration order wins, not nearest.
	found := false
	for _, inv := range w.Invaders {
		if inv.Y == 2 && inv.X >= 4 && inv.X <= 6 {
			found = true
		}
	}
	if !found {
		t.Error("second overlapping invader should survive the tick")
	}
}

func TestInvaderDiesToAtMostOneShot(t *testing.T) {
	w := newTestWorld()
	w.Invaders = []Point{{X: 2, Y: 2}, {X: 30, Y: 2}}
	// Both shots end up inside the same invader's box.
	w.Shots = []Point{{X: 2, Y: 3}, {X: 3, Y: 3}}

	w.Advance(simTick)

	if w.Score != 10 {
		t.Errorf("score = %d, expected 10 for a single kill", w.Score)
	}
	if len(w.Shots) != 1 {
		t.Errorf("second shot should fly on, got %d shots", len(w.Shots))
	}
}

func TestFireCapIdempotentRejection(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 15; i++ {
		w.Fire()
	}
	if len(w.Shots) != 10 {
		t.Fatalf("shot cap should hold at 10, got %d", len(w.Shots))
	}

	before := make([]Point, len(w.Shots))
	copy(before, w.Shots)
	w.Fire()
	if len(w.Shots) != 10 {
		t.Errorf("firing at cap should leave the shot set unchanged")
	}
	for i, s := range w.Shots {
		if s != before[i] {
			t.Errorf("shot %d changed after rejected fire", i)
		}
	}
}

func TestFireSpawnPosition(t *testing.T) {
	w := newTestWorld()
	w.Fire()

	want := Point{X: w.Player.X + 1, Y: w.Player.Y - 1}
	if len(w.Shots) != 1 || w.Shots[0] != want {
		t.Errorf("shot spawned at %+v, expected %+v", w.Shots, want)
	}
}

func TestSimultaneousBombHitsCostOneLife(t *testing.T) {
	w := newTestWorld()
	// Both bombs move into the player's 3x2 box this tick.
	w.Bombs = []Point{{X: 19, Y: 19}, {X: 20, Y: 19}}

	w.Advance(simTick)

	if w.Lives != 2 {
		t.Errorf("lives = %d, expected single decrement to 2", w.Lives)
	}
	if len(w.Bombs) != 0 {
		t.Errorf("overlapping bombs should be consumed, %d remain", len(w.Bombs))
	}
	if w.Player.X != 19 {
		t.Errorf("player should respawn at mid-point 19, got %d", w.Player.X)
	}
}

func TestBombHitIgnoresNonOverlapping(t *testing.T) {
	w := newTestWorld()
	w.Player.X = 10
	w.Bombs = []Point{{X: 11, Y: 19}, {X: 30, Y: 10}}

	w.Advance(simTick)

	if w.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.Lives)
	}
	if len(w.Bombs) != 1 {
		t.Errorf("non-overlapping bomb should survive, got %d bombs", len(w.Bombs))
	}
}

func TestLastLifeEndsTickImmediately(t *testing.T) {
	w := newTestWorld()
	w.Lives = 1
	w.Bombs = []Point{{X: 20, Y: 19}}
	// Cooldown long elapsed; a bomb would drop if the tick continued.
	w.LastBomb = -10 * time.Second

	invadersBefore := make([]Point, len(w.Invaders))
	copy(invadersBefore, w.Invaders)

	w.Advance(simTick)

	if !w.Over {
		t.Fatal("world should be terminal after the last life is lost")
	}
	if w.Cause != EndShotDown {
		t.Errorf("cause = %d, expected EndShotDown", w.Cause)
	}
	if w.Lives != 0 {
		t.Errorf("lives = %d, expected 0", w.Lives)
	}
	// No firing and no movement ran after the fatal hit.
	if len(w.Bombs) != 0 {
		t.Error("no bomb should drop on the tick the game ends")
	}
	for i, inv := range w.Invaders {
		if inv != invadersBefore[i] {
			t.Fatalf("invader %d moved on the terminal tick", i)
		}
	}
}

func TestKillingLastInvaderRespawnsWave(t *testing.T) {
	w := newTestWorld()
	w.Invaders = []Point{{X: 2, Y: 2}}
	w.Shots = []Point{{X: 3, Y: 3}, {X: 20, Y: 10}}
	w.Bombs = []Point{{X: 8, Y: 10}}

	w.Advance(simTick)

	if len(w.Invaders) != 12 {
		t.Fatalf("wave should respawn in the same tick, got %d invaders", len(w.Invaders))
	}
	if len(w.Shots) != 0 || len(w.Bombs) != 0 {
		t.Errorf("prior shots and bombs should be cleared, got %d/%d", len(w.Shots), len(w.Bombs))
	}
	// The respawn ends the tick: the fresh wave sits exactly at spawn.
	if w.Invaders[0] != (Point{X: 2, Y: 2}) {
		t.Errorf("new wave should not march on its spawn tick, first invader at %+v", w.Invaders[0])
	}
	if w.Score != 10 {
		t.Errorf("score = %d, expected 10", w.Score)
	}
}

func TestSwarmMarchesHorizontally(t *testing.T) {
	w := newTestWorld()
	before := make([]Point, len(w.Invaders))
	copy(before, w.Invaders)

	w.Advance(simTick)

	for i, inv := range w.Invaders {
		if inv.X != before[i].X+1 || inv.Y != before[i].Y {
			t.Fatalf("invader %d moved %+v -> %+v, expected one cell right", i, before[i], inv)
		}
	}
}

func TestEdgeTriggeredReversal(t *testing.T) {
	w := newTestWorld()
	w.Dir = DirRight
	w.Invaders = []Point{{X: 37, Y: 2}, {X: 30, Y: 2}}

	w.Advance(simTick)

	if w.Dir != DirLeft {
		t.Errorf("direction should flip to left, got %s", w.Dir)
	}
	for _, inv := range w.Invaders {
		if inv.Y != 3 {
			t.Errorf("invader should descend one row, got y=%d", inv.Y)
		}
		if inv.X != 37 && inv.X != 30 {
			t.Errorf("no horizontal movement expected on a reversal tick, got x=%d", inv.X)
		}
	}
}

func TestReversalTriggersOneCellEarly(t *testing.T) {
	w := newTestWorld()
	w.Dir = DirRight
	w.Invaders = []Point{{X: 36, Y: 2}}

	w.Advance(simTick)

	// One short of the threshold: the swarm keeps marching.
	if w.Dir != DirRight {
		t.Error("direction should not flip before the early boundary")
	}
	if w.Invaders[0].X != 37 {
		t.Errorf("invader at x=%d, expected 37", w.Invaders[0].X)
	}

	// Now sitting on the threshold: the next tick reverses.
	w.Advance(2 * simTick)
	if w.Dir != DirLeft {
		t.Error("direction should flip at x=37, one cell before the wall")
	}
}

func TestLeftWallReversal(t *testing.T) {
	w := newTestWorld()
	w.Dir = DirLeft
	w.Invaders = []Point{{X: 0, Y: 2}, {X: 10, Y: 2}}

	w.Advance(simTick)

	if w.Dir != DirRight {
		t.Errorf("direction should flip to right, got %s", w.Dir)
	}
	if w.Invaders[0].Y != 3 {
		t.Errorf("invader should descend, got y=%d", w.Invaders[0].Y)
	}
}

func TestInvasionEndsGame(t *testing.T) {
	w := newTestWorld()
	w.Dir = DirRight
	// At the boundary and two rows above the player: the descent lands
	// its bottom edge on the player's row.
	w.Invaders = []Point{{X: 37, Y: 18}}

	w.Advance(simTick)

	if !w.Over {
		t.Fatal("swarm reaching the player's row should end the game")
	}
	if w.Cause != EndInvasion {
		t.Errorf("cause = %d, expected EndInvasion", w.Cause)
	}
}

func TestBombCooldown(t *testing.T) {
	w := newTestWorld()

	// Within the cooldown nothing fires.
	w.Advance(simTick)
	if len(w.Bombs) != 0 {
		t.Errorf("no bomb should drop before the cooldown elapses, got %d", len(w.Bombs))
	}

	// First tick past 750ms drops exactly one bomb.
	w.Advance(4 * simTick)
	if len(w.Bombs) != 1 {
		t.Fatalf("expected exactly one bomb per tick after cooldown, got %d", len(w.Bombs))
	}
	if w.LastBomb != 4*simTick {
		t.Errorf("last-fired timestamp should reset to now, got %v", w.LastBomb)
	}
}

func TestBombSpawnPosition(t *testing.T) {
	w := newTestWorld()
	w.Invaders = []Point{{X: 2, Y: 6}}
	w.LastBomb = 0

	w.dropBomb(time.Second)

	want := Point{X: 3, Y: 8}
	if len(w.Bombs) != 1 || w.Bombs[0] != want {
		t.Errorf("bomb spawned at %+v, expected %+v", w.Bombs, want)
	}
}

func TestFrontRankNeverShadowed(t *testing.T) {
	w := newTestWorld()
	// Column-stacked pair: only the lower invader may ever fire.
	w.Invaders = []Point{{X: 2, Y: 2}, {X: 2, Y: 6}, {X: 3, Y: 2}}

	for i := 1; i <= 50; i++ {
		w.Bombs = w.Bombs[:0]
		w.LastBomb = 0
		now := time.Duration(i) * 777 * time.Millisecond
		w.dropBomb(now)

		if len(w.Bombs) != 1 {
			t.Fatalf("tick %d: expected one bomb, got %d", i, len(w.Bombs))
		}
		if got := w.Bombs[0]; got != (Point{X: 3, Y: 8}) {
			t.Fatalf("tick %d: shadowed invader fired, bomb at %+v", i, got)
		}
	}
}

func TestFrontRankDisjointColumns(t *testing.T) {
	w := newTestWorld()
	// Disjoint horizontal footprints: both are front rank.
	w.Invaders = []Point{{X: 2, Y: 2}, {X: 10, Y: 6}}

	front := w.frontRank()
	if len(front) != 2 {
		t.Errorf("expected 2 front-rank candidates, got %d", len(front))
	}
}

func TestFrontRankWholeWave(t *testing.T) {
	w := newTestWorld()

	// In the fresh 2x6 formation only the bottom row has a clear shot.
	front := w.frontRank()
	if len(front) != 6 {
		t.Fatalf("expected the 6 bottom-row invaders, got %d", len(front))
	}
	for _, p := range front {
		if p.Y != 6 {
			t.Errorf("front-rank invader at y=%d, expected bottom row y=6", p.Y)
		}
	}
}

func TestTerminalWorldIsFrozen(t *testing.T) {
	w := newTestWorld()
	w.Over = true
	w.Cause = EndInvasion
	snapshot := make([]Point, len(w.Invaders))
	copy(snapshot, w.Invaders)

	w.Advance(10 * time.Second)
	w.MoveLeft()
	w.MoveRight()
	w.Fire()

	for i, inv := range w.Invaders {
		if inv != snapshot[i] {
			t.Fatal("terminal world must not progress")
		}
	}
	if len(w.Shots) != 0 {
		t.Error("fire intent must be ignored in a terminal world")
	}
	if w.Player.X != 19 {
		t.Error("move intents must be ignored in a terminal world")
	}
}

func TestPlayerMovementClamps(t *testing.T) {
	w := newTestWorld()

	w.Player.X = 0
	w.MoveLeft()
	if w.Player.X != 0 {
		t.Errorf("left clamp failed, x=%d", w.Player.X)
	}

	w.Player.X = 36
	w.MoveRight()
	if w.Player.X != 36 {
		t.Errorf("right clamp at width-3 failed, x=%d", w.Player.X)
	}

	w.Player.X = 35
	w.MoveRight()
	if w.Player.X != 36 {
		t.Errorf("move right failed, x=%d", w.Player.X)
	}
}

func TestSpriteBoxHalfOpen(t *testing.T) {
	b := spriteBox(Point{X: 2, Y: 2})

	if !b.Contains(2, 2) || !b.Contains(4, 3) {
		t.Error("cells inside the 3x2 footprint should hit")
	}
	if b.Contains(5, 2) || b.Contains(2, 4) || b.Contains(1, 2) || b.Contains(2, 1) {
		t.Error("cells on the exclusive edges should miss")
	}
}

func TestShotCapHoldsAcrossTicks(t *testing.T) {
	w := newTestWorld()

	for tick := 1; tick <= 100; tick++ {
		w.Fire()
		w.Advance(time.Duration(tick) * simTick)
		if len(w.Shots) > 10 {
			t.Fatalf("tick %d: %d live shots exceed the cap", tick, len(w.Shots))
		}
		if w.Over {
			break
		}
	}
}
