package dash

import "github.com/vovakirdan/gnu-dash/internal/core"

// autopilotLookahead is how many ticks of scrolling the autopilot looks
// ahead for a drop in the ground.
const autopilotLookahead = 3

// Autopilot picks input for the next frame of g: it holds no direction,
// jumps when the ground just ahead of the player's feet drops out, and
// double jumps when falling with nothing underneath.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	p := g.player
	if p == nil || g.gameOver {
		return in
	}

	r := p.Rect()
	feet := r.Bottom() + 1
	ahead := r.Right() + g.cfg.Level.ScrollSpeed*autopilotLookahead

	switch {
	case p.OnGround() && !g.solidAt(ahead, feet):
		in.Set(core.ActionJump)
	case !p.OnGround() && p.CanDoubleJump() && p.vy > 0 && !g.groundBelow(r):
		in.Set(core.ActionJump)
	}
	return in
}

func (g *Game) solidAt(x, y float64) bool {
	for _, o := range g.level.Obstacles() {
		if o.Rect.Contains(x, y) {
			return true
		}
	}
	return false
}

// groundBelow reports whether any obstacle lies under r's horizontal span.
func (g *Game) groundBelow(r core.Rect) bool {
	for _, o := range g.level.Obstacles() {
		if o.Rect.X < r.Right() && o.Rect.Right() > r.X && o.Rect.Y >= r.Bottom() {
			return true
		}
	}
	return false
}
