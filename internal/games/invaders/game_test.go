package invaders

import (
	"strings"
	"testing"

	"github.com/ostrikov/tui-invaders/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 60,
		Seed:     12345,
	}
}

// scriptedInputs builds a deterministic input sequence: fire regularly
// while strafing left and right.
func scriptedInputs(n int) []core.InputFrame {
	seq := make([]core.InputFrame, n)
	for i := range seq {
		seq[i] = core.NewInputFrame()
		if i%7 == 0 {
			seq[i].Set(core.ActionFire)
		}
		if i%40 < 20 {
			seq[i].Set(core.ActionRight)
		} else {
			seq[i].Set(core.ActionLeft)
		}
	}
	return seq
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()
	inputs := scriptedInputs(900)

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.PlayerX != snap2.PlayerX {
		t.Errorf("Determinism failed: player positions differ. Run1=%d, Run2=%d", snap1.PlayerX, snap2.PlayerX)
	}
}

func TestGameReset(t *testing.T) {
	cfg := testConfig()

	g := New()
	g.Reset(cfg)

	// Play a while
	for _, in := range scriptedInputs(300) {
		g.Step(in)
	}

	g.Reset(cfg)

	if g.world.Score != 0 {
		t.Errorf("Reset should clear score, got %d", g.world.Score)
	}
	if g.world.Over {
		t.Error("Reset should clear the terminal flag")
	}
	if g.tick != 0 {
		t.Errorf("Reset should clear the tick counter, got %d", g.tick)
	}
	if len(g.world.Invaders) != 12 {
		t.Errorf("Reset should respawn the wave, got %d invaders", len(g.world.Invaders))
	}
	if g.world.Lives != 3 {
		t.Errorf("Reset should restore lives, got %d", g.world.Lives)
	}
}

func TestGameSimCadenceDecoupledFromDriver(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	before := g.world.Invaders[0]
	empty := core.NewInputFrame()

	// At 60 driver ticks per second the 200ms simulation fires on the
	// 12th tick, not before.
	for i := 0; i < 11; i++ {
		g.Step(empty)
		if g.world.Invaders[0] != before {
			t.Fatalf("world advanced on driver tick %d, before the sim interval", i+1)
		}
	}
	g.Step(empty)
	if g.world.Invaders[0] == before {
		t.Error("world should advance once the sim interval elapses")
	}
}

func TestGamePlayerInputEveryDriverTick(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	right := core.NewInputFrame()
	right.Set(core.ActionRight)

	startX := g.world.Player.X
	// Input applies every driver tick, faster than the sim cadence.
	g.Step(right)
	g.Step(right)
	g.Step(right)

	if g.world.Player.X != startX+3 {
		t.Errorf("player moved %d cells, expected 3", g.world.Player.X-startX)
	}
}

func TestGameShotCapProperty(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)

	for i := 0; i < 600; i++ {
		result := g.Step(fire)
		if len(g.world.Shots) > 10 {
			t.Fatalf("tick %d: %d live shots exceed the cap", i, len(g.world.Shots))
		}
		if result.State.GameOver {
			break
		}
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	before := make([]Point, len(g.world.Invaders))
	copy(before, g.world.Invaders)

	empty := core.NewInputFrame()
	for i := 0; i < 50; i++ {
		g.Step(empty)
	}
	for i, inv := range g.world.Invaders {
		if inv != before[i] {
			t.Fatal("paused game must not advance the world")
		}
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Force a loss.
	g.world.Over = true
	g.world.Cause = EndShotDown
	g.world.Lives = 0
	g.world.Score = 120

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	if res.State.GameOver {
		t.Error("restart should start a fresh game")
	}
	if res.State.Score != 0 {
		t.Errorf("restart should clear the score, got %d", res.State.Score)
	}
	if res.State.Lives != 3 {
		t.Errorf("restart should restore lives, got %d", res.State.Lives)
	}
}

func TestGameIgnoresIntentsWhenOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.world.Over = true

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionFire)
	for i := 0; i < 30; i++ {
		g.Step(in)
	}

	if g.world.Player.X != 19 {
		t.Errorf("move intents must be ignored after game over, x=%d", g.world.Player.X)
	}
	if len(g.world.Shots) != 0 {
		t.Error("fire intents must be ignored after game over")
	}
}

func TestGameRenderHUDAndSprites(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0 | Lives: 3") {
		t.Error("HUD should show score and lives")
	}
	if !strings.Contains(out, "<O>") {
		t.Error("invader sprites should be drawn")
	}
	if !strings.Contains(out, `/A\`) {
		t.Error("player sprite should be drawn")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.world.Over = true
	g.world.Cause = EndShotDown
	g.world.Score = 250

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	if strings.Contains(out, `/A\`) {
		t.Error("player sprite should be suppressed when the game is over")
	}
	if !strings.Contains(out, "GAME OVER!") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(out, "Final Score: 250") {
		t.Error("final score missing from overlay")
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("a 30x10 screen cannot fit the 39x21 board")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small overlay missing")
	}

	// The world stays frozen until the window fits.
	before := g.world.Invaders[0]
	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}
	if g.world.Invaders[0] != before {
		t.Error("simulation should not run while the window is too small")
	}
}
