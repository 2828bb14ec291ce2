// Package invaders implements the fixed-timestep simulation behind the
// invaders game: a player vessel at the bottom of a cell grid defends
// against descending waves of invaders that march, reverse at the walls
// and drop bombs.
//
// The World type and its Advance method are pure state transitions with
// no I/O, no wall clock and no goroutines; the platform drives them on a
// fixed cadence and owns the World exclusively.
package invaders

import (
	"time"

	"github.com/ostrikov/tui-invaders/internal/core"
)

// Point is a cell coordinate on the board. Invaders and the player anchor
// a 3x2 sprite at their point; shots and bombs occupy the single cell.
type Point struct {
	X, Y int
}

// Direction is the horizontal march direction shared by the whole swarm.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// EndCause tags how a finished game ended. The engine itself only cares
// that the world is terminal; the cause exists for display.
type EndCause int

const (
	EndNone     EndCause = iota
	EndShotDown          // lives reached zero
	EndInvasion          // swarm reached the player's row
)

// Sprite dimensions shared by the player and every invader.
const (
	SpriteW = 3
	SpriteH = 2
)

// Rules holds the board layout and gameplay constants. A World carries its
// Rules so the transition function needs no other input besides time.
type Rules struct {
	Width  int // board width in cells
	Height int // board height in cells; the player's row is Height-1

	WaveRows     int // invader formation rows
	WaveCols     int // invader formation columns
	WaveHSpacing int // horizontal cell distance between formation columns
	WaveVSpacing int // vertical cell distance between formation rows
	WaveOffsetX  int // formation offset from the board origin
	WaveOffsetY  int

	Lives        int           // starting lives
	ShotCap      int           // max live player shots
	KillPoints   int           // score awarded per invader
	FireInterval time.Duration // swarm fire cooldown
}

// DefaultRules returns the classic layout: a 39x21 board with the player
// on row 20 and a 2x6 wave spaced 5 cells apart horizontally and 4
// vertically, offset (2,2) from the origin.
func DefaultRules() Rules {
	return Rules{
		Width:        39,
		Height:       21,
		WaveRows:     2,
		WaveCols:     6,
		WaveHSpacing: 5,
		WaveVSpacing: 4,
		WaveOffsetX:  2,
		WaveOffsetY:  2,
		Lives:        3,
		ShotCap:      10,
		KillPoints:   10,
		FireInterval: 750 * time.Millisecond,
	}
}

// PlayerRow returns the fixed row the player occupies.
func (r Rules) PlayerRow() int {
	return r.Height - 1
}

// World is the complete simulation state. It is a plain value owned by
// the driver loop and threaded through Advance; nothing in this package
// retains a reference to it.
type World struct {
	Rules Rules

	Player   Point
	Shots    []Point // player shots, travel up one cell per tick
	Bombs    []Point // invader shots, travel down one cell per tick
	Invaders []Point

	Dir      Direction
	LastBomb time.Duration // sim timestamp of the last invader shot

	Score int
	Lives int
	Over  bool
	Cause EndCause
}

// NewWorld creates a world with the player centered on the bottom row and
// the first wave already spawned.
func NewWorld(rules Rules) World {
	w := World{
		Rules: rules,
		Player: Point{
			X: rules.Width / 2,
			Y: rules.PlayerRow(),
		},
		Dir:   DirRight,
		Lives: rules.Lives,
	}
	w.SpawnWave()
	return w
}

// MoveLeft shifts the player one cell left, stopping at the wall.
// Ignored once the world is terminal.
func (w *World) MoveLeft() {
	if w.Over {
		return
	}
	if w.Player.X > 0 {
		w.Player.X--
	}
}

// MoveRight shifts the player one cell right, stopping where the 3-wide
// sprite would leave the board. Ignored once the world is terminal.
func (w *World) MoveRight() {
	if w.Over {
		return
	}
	if w.Player.X < w.Rules.Width-SpriteW {
		w.Player.X++
	}
}

// Fire spawns a player shot from the center of the vessel. Intents issued
// while the shot cap is reached, or after the game ended, are silently
// dropped.
func (w *World) Fire() {
	if w.Over || len(w.Shots) >= w.Rules.ShotCap {
		return
	}
	w.Shots = append(w.Shots, Point{X: w.Player.X + 1, Y: w.Player.Y - 1})
}

// playerBox returns the player's collision box.
func (w *World) playerBox() core.Rect {
	return spriteBox(w.Player)
}

// spriteBox returns the 3x2 footprint anchored at p. Single-cell
// projectiles are tested against it with half-open containment.
func spriteBox(p Point) core.Rect {
	return core.NewRect(p.X, p.Y, SpriteW, SpriteH)
}
