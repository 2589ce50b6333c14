package magma

import (
	"fmt"

	"github.com/jrichson/time-mission-magma-mayhem/internal/core"
	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
	"github.com/jrichson/time-mission-magma-mayhem/internal/level"
)

// hudRows is the height of the status bar plus its separator.
const hudRows = 2

// Board glyphs. Each board cell is two characters wide so the grid reads
// roughly square in a terminal.
const (
	glyphGround      = '.'
	glyphSafe        = '#'
	glyphCollectible = '*'
	glyphLava        = '~'
	glyphPlayer      = '@'
	glyphHop         = '^'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderPlayer(dst)

	switch {
	case g.phase == PhaseCountdown:
		g.renderCountdown(dst)
	case g.phase == PhaseLevelComplete:
		g.renderLevelComplete(dst)
	case g.phase == PhaseWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.totalScore))
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Magma (Endless) - Score: %d  Level: %d  Lives: %d  Gems: %d  Worth: %d",
			g.totalScore, g.levelNum, g.pl.lives, g.collectibles.Len(), g.levelScore)
	} else {
		hud = fmt.Sprintf(" Magma - Score: %d  Level: %d/%d  Lives: %d  Gems: %d  Worth: %d",
			g.totalScore, g.levelNum, level.Count, g.pl.lives, g.collectibles.Len(), g.levelScore)
	}
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// boardOffset returns the top-left screen position of the board.
func (g *Game) boardOffset(dst *core.Screen) (int, int) {
	ox := (dst.Width() - g.board.W*2) / 2
	oy := hudRows + (dst.Height()-hudRows-g.board.H)/2
	if oy < hudRows {
		oy = hudRows
	}
	return ox, oy
}

// renderBoard draws every cell by class: safe islands, collectibles,
// lava, plain ground.
func (g *Game) renderBoard(dst *core.Screen) {
	ox, oy := g.boardOffset(dst)
	for z := 0; z < g.board.H; z++ {
		for x := 0; x < g.board.W; x++ {
			c := grid.C(x, z)
			r, col := glyphGround, core.ColorGray
			switch {
			case g.safe.Has(c):
				r, col = glyphSafe, core.ColorGreen
			case g.collectibles.Has(c):
				r, col = glyphCollectible, core.ColorBrightYellow
			case g.hazards.Has(c):
				r, col = glyphLava, core.ColorOrange
			}
			dst.SetColored(ox+x*2, oy+z, r, col)
		}
	}
}

// renderPlayer draws the hopper. An airborne hop shows at the landing
// cell with a distinct glyph; an invincible player blinks.
func (g *Game) renderPlayer(dst *core.Screen) {
	ox, oy := g.boardOffset(dst)

	pos := g.pl.pos
	r := glyphPlayer
	if g.pl.hopping {
		r = glyphHop
	}

	col := core.ColorBrightWhite
	if g.nowMs() < g.pl.invincibleUntilMs && g.tick%8 < 4 {
		col = core.ColorGray
	}
	dst.SetColored(ox+pos.X*2, oy+pos.Z, r, col)
}

// renderCountdown overlays 3, 2, 1, GO! over the already-laid-out board.
func (g *Game) renderCountdown(dst *core.Screen) {
	step := float64(g.cfg.Timing.CountdownStepMs)
	idx := int(g.phaseMs / step)
	text := "GO!"
	if idx < 3 {
		text = fmt.Sprintf("%d", 3-idx)
	}
	y := dst.Height() / 2
	dst.DrawTextColored((dst.Width()-len(text))/2, y, text, core.ColorBrightYellow)
}

// renderLevelComplete shows the banked award once the popup delay passes.
func (g *Game) renderLevelComplete(dst *core.Screen) {
	if g.phaseMs < float64(g.cfg.Timing.CompleteDelayMs) {
		return
	}
	g.renderOverlay(dst,
		fmt.Sprintf("Level %d complete!", g.levelNum),
		fmt.Sprintf("Total Score: %d", g.totalScore))
}

// renderOverlay draws a centered two-line message box.
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

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextColored(boxX+(boxW-len(line1))/2, boxY+1, line1, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
