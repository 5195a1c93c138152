package dash

import "github.com/vovakirdan/gnu-dash/internal/core"

// addNewPlatform places an elevated block just past the frontier, possibly
// with a row of stepping stones and a collectible hovering above it.
func (g *Generator) addNewPlatform() {
	platform := g.generatePlatform()
	g.addObstacle(platform)
	g.frontier = platform.Right()

	if g.rng.Float64() < g.cfg.Level.Stones.Chance {
		stones := g.generateSteppingStones(platform)
		for _, s := range stones {
			g.addObstacle(s)
		}
		if n := len(stones); n > 0 {
			g.frontier = max(g.frontier, stones[n-1].Right())
		}
	}

	if g.rng.Float64() < g.cfg.SourceCode.PlatformChance {
		g.addNewCollectible(&platform)
	}
}

// generatePlatform picks the geometry of the next elevated block. It starts
// between a quarter and a half of the max jump distance past the frontier,
// and never before the right edge of the screen.
func (g *Generator) generatePlatform() core.Rect {
	l := g.cfg.Level
	mj := l.MaxJumpDistance

	x := max(g.screenW, g.frontier+float64(g.randRange(mj/4, mj/2)))
	y := float64(g.randRange(l.MinPlatformHeight, l.MaxPlatformHeight))
	w := float64(g.randRange(l.BlockMinWidth, l.BlockMaxWidth))
	h := float64(g.randRange(l.BlockMinHeight, l.BlockMaxHeight))
	return core.NewRect(x, y, w, h)
}

// generateSteppingStones builds a row of small blocks leading into or out
// of platform, evenly spaced with some vertical jitter around its top.
func (g *Generator) generateSteppingStones(platform core.Rect) []core.Rect {
	st := g.cfg.Level.Stones
	n := g.randRange(st.MinCount, st.MaxCount)
	w, h := float64(st.Width), float64(st.Height)
	spacing := float64(g.cfg.Level.MaxJumpDistance / 4)

	total := float64(n)*w + float64(n-1)*spacing
	x := platform.Right()
	if g.rng.Intn(2) == 0 {
		x = platform.X - total
	}

	stones := make([]core.Rect, 0, n)
	for range n {
		y := platform.Y + float64(g.randRange(-st.Jitter, st.Jitter))
		stones = append(stones, core.NewRect(x, y, w, h))
		x += w + spacing
	}
	return stones
}
