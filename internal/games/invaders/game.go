package invaders

import (
	"time"

	"github.com/ostrikov/tui-invaders/internal/config"
	"github.com/ostrikov/tui-invaders/internal/core"
	"github.com/ostrikov/tui-invaders/internal/registry"
)

// Game adapts the World simulation to the platform's Game interface.
// The platform steps it once per driver tick; the simulation itself only
// advances on its own fixed cadence, so rendering and input stay
// responsive while the world moves at arcade speed.
type Game struct {
	rules   Rules
	world   World
	simTick time.Duration // fixed simulation interval
	tickDur time.Duration // duration of one driver tick
	tick    uint64
	lastSim time.Duration // logical time of the last simulation tick

	paused   bool
	tooSmall bool

	// Layout computed from screen size
	screenW   int
	screenH   int
	hudHeight int
	offsetX   int
	offsetY   int
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new invaders game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// rulesFromConfig maps the loaded YAML onto simulation rules.
func rulesFromConfig(cfg config.InvadersConfig) Rules {
	return Rules{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		WaveRows:     cfg.Wave.Rows,
		WaveCols:     cfg.Wave.Cols,
		WaveHSpacing: cfg.Wave.HSpacing,
		WaveVSpacing: cfg.Wave.VSpacing,
		WaveOffsetX:  cfg.Wave.OffsetX,
		WaveOffsetY:  cfg.Wave.OffsetY,
		Lives:        cfg.Player.Lives,
		ShotCap:      cfg.Player.ShotCap,
		KillPoints:   cfg.Player.KillPoints,
		FireInterval: time.Duration(cfg.Timing.FireIntervalMS) * time.Millisecond,
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadInvaders(configPath)
	if err != nil {
		gameCfg = config.DefaultInvadersConfig()
	}

	g.rules = rulesFromConfig(gameCfg)
	g.world = NewWorld(g.rules)

	g.simTick = time.Duration(gameCfg.Timing.SimTickMS) * time.Millisecond
	if g.simTick <= 0 {
		g.simTick = 200 * time.Millisecond
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDur = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.lastSim = 0

	g.paused = false
	g.layout(cfg.ScreenW, cfg.ScreenH)
}

// layout centers the board on the screen and decides whether it fits.
func (g *Game) layout(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.hudHeight = 2

	// One extra row below the player sprite plus the border frame.
	boardH := g.rules.Height + SpriteH + 1
	requiredW := g.rules.Width + 2
	requiredH := boardH + g.hudHeight
	if screenW < requiredW || screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (screenW - g.rules.Width) / 2
	g.offsetY = g.hudHeight + 1
}

// Step advances the game by one driver tick. Movement and firing react
// every driver tick; the world itself advances once per simulation tick
// of logical time. A delayed driver collapses missed ticks into one
// advance rather than running a catch-up loop.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.world.Over {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.tickDur),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.world.Over {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Intents mutate only the player between simulation ticks. Terminal
	// worlds ignore them inside the World methods.
	switch {
	case input.Has(core.ActionLeft):
		g.world.MoveLeft()
	case input.Has(core.ActionRight):
		g.world.MoveRight()
	}
	if input.Has(core.ActionFire) {
		g.world.Fire()
	}

	now := time.Duration(g.tick) * g.tickDur
	if now-g.lastSim >= g.simTick {
		g.world.Advance(now)
		g.lastSim = now
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Lives:    g.world.Lives,
		GameOver: g.world.Over,
		Paused:   g.paused,
	}
}

// World exposes the simulation state for inspection. Tests use it; the
// platform never mutates it.
func (g *Game) World() *World {
	return &g.world
}
