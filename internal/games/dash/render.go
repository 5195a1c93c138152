package dash

import (
	"fmt"

	"github.com/vovakirdan/gnu-dash/internal/core"
)

// Glyphs for terminal rendering.
const (
	FloorChar      = '▓'
	BlockChar      = '█'
	SourceCodeChar = '◆'
	PlayerChar     = '█'
)

// Render draws the world scaled to dst, then the HUD and any overlay box.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	vp := core.NewViewport(float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height), dst.Width(), dst.Height())
	colors := g.cfg.Colors

	floorColor := core.ParseColor(colors.Floor)
	blockColor := core.ParseColor(colors.Block)
	for _, o := range g.level.Obstacles() {
		x, y, w, h := vp.CellRect(o.Rect)
		if g.level.IsFloor(o) {
			dst.FillRect(x, y, w, h, FloorChar, floorColor)
		} else {
			dst.FillRect(x, y, w, h, BlockChar, blockColor)
		}
	}

	codeColor := core.ParseColor(colors.SourceCode)
	for _, c := range g.level.Collectibles() {
		x, y, w, h := vp.CellRect(c.Rect)
		dst.FillRect(x, y, w, h, SourceCodeChar, codeColor)
	}

	if g.player.Visible() {
		x, y, w, h := vp.CellRect(g.player.Rect())
		dst.FillRect(x, y, w, h, PlayerChar, core.ParseColor(colors.Player))
	}

	textColor := core.ParseColor(colors.Text)
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Freedom: %d ", g.player.Freedom()), textColor)
	shields := fmt.Sprintf(" Liberty Shields: %d ", g.player.LibertyShields())
	dst.DrawTextColored(dst.Width()-len(shields)-1, 0, shields, textColor)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Esc to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Freedom: %d  |  R to restart", g.player.Freedom()))
	}
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
