package invaders

import (
	"fmt"

	"github.com/ostrikov/tui-invaders/internal/core"
)

// Sprites, top row first.
var (
	invaderSprite = [SpriteH]string{"<O>", `/-\`}
	playerSprite  = [SpriteH]string{`/A\`, "==="}
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Playfield frame; the extra rows leave room for the player sprite
	// and bombs falling past it.
	frame := core.NewRect(g.offsetX-1, g.offsetY-1, g.rules.Width+2, g.rules.Height+SpriteH+1)
	dst.DrawBox(frame, core.ColorGray)

	// Player vessel, suppressed once the game ended.
	if !g.world.Over {
		g.drawSprite(dst, g.world.Player, playerSprite, core.ColorCyan)
	}

	for _, s := range g.world.Shots {
		dst.SetCell(g.offsetX+s.X, g.offsetY+s.Y, '|', core.ColorRed)
	}
	for _, b := range g.world.Bombs {
		dst.SetCell(g.offsetX+b.X, g.offsetY+b.Y, 'v', core.ColorMagenta)
	}
	for _, inv := range g.world.Invaders {
		g.drawSprite(dst, inv, invaderSprite, core.ColorGreen)
	}

	switch {
	case g.world.Over:
		g.renderGameOver(dst)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d | Lives: %d | Press 'q' to quit", g.world.Score, g.world.Lives)
	dst.DrawTextColored(0, 0, hud, core.ColorYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawSprite places a 3x2 sprite anchored at the board point p.
func (g *Game) drawSprite(dst *core.Screen, p Point, sprite [SpriteH]string, c core.Color) {
	for i, line := range sprite {
		for j, r := range line {
			dst.SetCell(g.offsetX+p.X+j, g.offsetY+p.Y+i, r, c)
		}
	}
}

// renderGameOver overlays the final result in the middle of the board.
func (g *Game) renderGameOver(dst *core.Screen) {
	midY := g.offsetY + g.rules.Height/2

	cause := "GAME OVER!"
	if g.world.Cause == EndInvasion {
		cause = "INVADED! GAME OVER!"
	}
	dst.DrawTextCentered(midY, cause, core.ColorBrightRed)
	dst.DrawTextCentered(midY+1, fmt.Sprintf("Final Score: %d", g.world.Score), core.ColorBrightRed)
	dst.DrawTextCentered(midY+2, "Press R to restart, Q to exit", core.ColorBrightRed)
}

// renderOverlay draws a centered two-line boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1, core.ColorWhite)
	dst.DrawTextCentered(boxY+3, line2, core.ColorGray)
}
