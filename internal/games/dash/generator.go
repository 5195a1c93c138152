package dash

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
)

// Generator owns the level: obstacles, collectibles and the generation
// frontier. Each Update scrolls the world left, drops what went off-screen,
// then extends the level to the right.
type Generator struct {
	cfg    config.DashConfig
	rng    *rand.Rand
	logger *log.Logger

	obstacles    []Obstacle
	collectibles []Collectible

	frontier     float64 // right edge of generated content, in screen coordinates
	trailingHole bool    // last floor sweep ended with a hole
	nextID       uint64

	screenW, screenH float64
}

// NewGenerator creates a generator and builds the initial level.
// Panics if cfg violates the config contract.
func NewGenerator(seed int64, cfg config.DashConfig) *Generator {
	cfg.MustValidate("dash")

	g := &Generator{
		cfg:          cfg,
		logger:       log.New(io.Discard),
		obstacles:    make([]Obstacle, 0, 32),
		collectibles: make([]Collectible, 0, 8),
		screenW:      float64(cfg.Screen.Width),
		screenH:      float64(cfg.Screen.Height),
	}
	g.Reset(seed)
	return g
}

// SetLogger routes generator diagnostics to l.
func (g *Generator) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Reset reseeds the RNG and rebuilds the initial level: a solid spawn
// block under the player, floor out to twice the screen width, then the
// minimum number of platforms and collectibles.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.obstacles = g.obstacles[:0]
	g.collectibles = g.collectibles[:0]
	g.frontier = 0
	g.trailingHole = false
	g.nextID = 0

	spawn := float64(g.cfg.Level.SpawnFloorWidth)
	g.addObstacle(core.NewRect(0, g.floorY(), spawn, float64(g.cfg.Level.FloorHeight)))
	g.frontier = spawn
	g.generateFloor(spawn, 2*g.screenW)

	for range g.cfg.Level.MinBlocks {
		g.addNewPlatform()
	}
	for range g.cfg.Level.MinSourceCodes {
		g.addNewCollectible(nil)
	}
}

// Update scrolls, prunes and extends the level by one tick.
func (g *Generator) Update() {
	speed := g.cfg.Level.ScrollSpeed

	for i := range g.obstacles {
		g.obstacles[i].Rect.X -= speed
	}
	for i := range g.collectibles {
		g.collectibles[i].Rect.X -= speed
	}
	g.frontier -= speed

	g.prune()

	limit := g.screenW * 1.5
	for g.frontier < limit {
		if g.rng.Float64() < g.cfg.Level.PlatformChance {
			g.addNewPlatform()
		} else {
			g.generateFloor(g.frontier, g.frontier+g.screenW)
		}
	}

	for len(g.collectibles) < g.cfg.Level.MinSourceCodes {
		g.addNewCollectible(nil)
	}
}

// prune drops everything whose right edge has left the screen.
func (g *Generator) prune() {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Rect.Right() > 0 {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept

	keptC := g.collectibles[:0]
	for _, c := range g.collectibles {
		if c.Rect.Right() > 0 {
			keptC = append(keptC, c)
		}
	}
	g.collectibles = keptC
}

// generateFloor lays floor segments over [startX, endX), occasionally
// leaving a hole. A hole is never followed directly by another hole, so
// every gap in the floor stays jumpable.
func (g *Generator) generateFloor(startX, endX float64) {
	l := g.cfg.Level
	y := g.floorY()
	x := startX

	for x < endX {
		if !g.trailingHole && g.rng.Float64() < l.HoleChance {
			x += float64(g.randRange(l.HoleMinWidth, g.cfg.EffectiveHoleMaxWidth()))
			g.trailingHole = true
			continue
		}
		w := float64(g.randRange(l.FloorMinWidth, l.FloorMaxWidth))
		g.addObstacle(core.NewRect(x, y, w, float64(l.FloorHeight)))
		x += w
		g.trailingHole = false
	}

	g.frontier = max(g.frontier, endX)
}

// addNewCollectible places one source code. With an anchor it hovers above
// that platform; otherwise it goes just past the frontier. Placement always
// succeeds: a spot inside an obstacle is moved on top of a nearby platform.
func (g *Generator) addNewCollectible(anchor *core.Rect) {
	sc := g.cfg.SourceCode
	w, h := float64(sc.Width), float64(sc.Height)

	var x, y float64
	if anchor != nil {
		x = anchor.X + float64(g.randRange(0, int(anchor.W)))
		y = anchor.Y - float64(g.randRange(sc.HoverMin, sc.HoverMax))
		if blocker, ok := g.obstacleAtPoint(x, y); ok {
			y = g.surfaceAbove(x, blocker) - h - float64(sc.Clearance)
		}
	} else {
		x = max(g.screenW, g.frontier+float64(g.randRange(sc.SpawnOffsetMin, sc.SpawnOffsetMax)))
		top := sc.Margin
		bottom := g.cfg.Screen.Height - g.cfg.Level.FloorHeight - sc.Margin
		y = float64(g.randRange(top, bottom))
		if blocker, ok := g.obstacleOverlapping(core.NewRect(x, y, w, h)); ok {
			y = g.surfaceAbove(x, blocker) - h - float64(sc.Clearance)
		}
	}

	g.nextID++
	g.collectibles = append(g.collectibles, Collectible{ID: g.nextID, Rect: core.NewRect(x, y, w, h)})
}

// surfaceAbove returns the top of the highest obstacle whose center lies
// within jump distance of x. The blocking obstacle is the fallback.
func (g *Generator) surfaceAbove(x float64, blocker core.Rect) float64 {
	reach := float64(g.cfg.Level.MaxJumpDistance)
	top := 0.0
	found := false
	for _, o := range g.obstacles {
		d := o.Rect.CenterX() - x
		if d < 0 {
			d = -d
		}
		if d >= reach {
			continue
		}
		if !found || o.Rect.Y < top {
			top = o.Rect.Y
			found = true
		}
	}
	if !found {
		g.logger.Debug("no platform near collectible, using blocker", "x", x)
		return blocker.Y
	}
	return top
}

func (g *Generator) obstacleAtPoint(x, y float64) (core.Rect, bool) {
	for _, o := range g.obstacles {
		if o.Rect.Contains(x, y) {
			return o.Rect, true
		}
	}
	return core.Rect{}, false
}

func (g *Generator) obstacleOverlapping(r core.Rect) (core.Rect, bool) {
	for _, o := range g.obstacles {
		if o.Rect.Intersects(r) {
			return o.Rect, true
		}
	}
	return core.Rect{}, false
}

// addObstacle appends a block. Blocks already fully off-screen are skipped.
func (g *Generator) addObstacle(r core.Rect) {
	if r.Right() <= 0 {
		return
	}
	g.nextID++
	g.obstacles = append(g.obstacles, Obstacle{ID: g.nextID, Rect: r})
}

// RemoveCollectible drops the collectible with the given ID.
// Reports whether it was present.
func (g *Generator) RemoveCollectible(id uint64) bool {
	for i, c := range g.collectibles {
		if c.ID == id {
			g.collectibles = append(g.collectibles[:i], g.collectibles[i+1:]...)
			return true
		}
	}
	return false
}

// Obstacles returns the current obstacles in creation order.
// The slice is owned by the generator and valid until the next Update.
func (g *Generator) Obstacles() []Obstacle {
	return g.obstacles
}

// Collectibles returns the current collectibles.
func (g *Generator) Collectibles() []Collectible {
	return g.collectibles
}

// Frontier returns the right edge of generated content.
func (g *Generator) Frontier() float64 {
	return g.frontier
}

// IsFloor reports whether o is a floor segment.
func (g *Generator) IsFloor(o Obstacle) bool {
	return o.IsFloor(g.screenH)
}

func (g *Generator) floorY() float64 {
	return g.screenH - float64(g.cfg.Level.FloorHeight)
}

// randRange returns a uniform integer in [lo, hi].
func (g *Generator) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
