package runaway

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/runaway/internal/core"
	"github.com/vovakirdan/runaway/internal/games/runaway/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	GroundChar   = '▀'
	DirtChar     = '▓'
	CoinChar     = 'o'
	HeartChar    = '♥'
	HazardChar   = '▒'
	PursuerChar  = '█'
)

// blinkMs is the half period of the invincibility blink.
const blinkMs = 100

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		drawCenteredMessage(dst, "TERMINAL TOO SMALL", "Resize the window and restart")
		return
	}

	snap := g.session.Snapshot()
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight

	g.drawGround(dst, snap, cw, ch)

	for _, p := range snap.Platforms {
		dst.DrawRectColored(p.Box(snap.Scroll).Cells(cw, ch), PlatformChar, core.ColorOrange)
	}

	for _, c := range snap.Collectibles {
		x := int(math.Floor((c.X - snap.Scroll) / cw))
		y := int(math.Floor(c.Y / ch))
		if c.Kind == sim.KindHeart {
			dst.SetColored(x, y, HeartChar, core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, CoinChar, core.ColorBrightYellow)
		}
	}

	for _, h := range snap.Hazards {
		if h.Kind == sim.HazardPursuer {
			dst.DrawRectColored(h.Box(snap.Scroll).Cells(cw, ch), PursuerChar, core.ColorMagenta)
			continue
		}
		dst.DrawRectColored(h.Box(snap.Scroll).Cells(cw, ch), HazardChar, core.ColorRed)
	}

	g.drawPlayer(dst, snap, cw, ch)
	g.drawHUD(dst, snap)

	switch snap.State {
	case sim.StateHome:
		drawCenteredMessage(dst, strings.ToUpper(g.Title()), fmt.Sprintf("Best: %d  |  Space to start", snap.Best))
	case sim.StateCountdown:
		secs := int(math.Ceil(snap.CountdownLeft / 1000))
		drawCenteredMessage(dst, fmt.Sprintf("%d", secs), "Get ready")
	case sim.StatePlaying:
		if snap.Paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	case sim.StateGameOver:
		title := "GAME OVER"
		switch snap.Fatal {
		case sim.FatalFell:
			title = "YOU FELL"
		case sim.FatalCaught:
			title = "CAUGHT"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  Best: %d  |  Enter for home", snap.Score, snap.Best))
	}
}

// drawGround draws the ground line and the dirt below it, leaving pits open.
func (g *Game) drawGround(dst *core.Screen, snap sim.Snapshot, cw, ch float64) {
	row := int(math.Floor(snap.GroundY / ch))
	for x := 0; x < dst.Width(); x++ {
		center := (float64(x) + 0.5) * cw
		pit := false
		for _, p := range snap.Pits {
			if p.Covers(center, snap.Scroll) {
				pit = true
				break
			}
		}
		if pit {
			continue
		}
		dst.SetColored(x, row, GroundChar, core.ColorGreen)
		for y := row + 1; y < dst.Height(); y++ {
			dst.SetColored(x, y, DirtChar, core.ColorBrown)
		}
	}
}

// drawPlayer draws the player, blinking while invincible.
func (g *Game) drawPlayer(dst *core.Screen, snap sim.Snapshot, cw, ch float64) {
	if snap.Invincible && int(snap.Now/blinkMs)%2 == 1 {
		return
	}
	color := core.ColorBrightCyan
	if snap.Stunned {
		color = core.ColorYellow
	}
	dst.DrawRectColored(snap.Player.Box().Cells(cw, ch), PlayerChar, color)
}

// drawHUD draws score, best and lives on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best), core.ColorBrightWhite)

	lives := strings.Repeat(string(HeartChar), snap.Lives)
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-2, 0, lives, core.ColorBrightRed)

	if g.storeErr != nil {
		dst.DrawTextColored(1, 1, " best score not saved ", core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
