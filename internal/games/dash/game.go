// Package dash implements GNU Dash, a side-scrolling platformer.
// The player runs over a procedurally generated level, jumping holes and
// climbing platforms to collect source code while liberty shields last.
package dash

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
	"github.com/vovakirdan/gnu-dash/internal/registry"
)

// Game is one GNU Dash session: a player and the level it runs through.
type Game struct {
	cfg     config.DashConfig
	fixed   bool // cfg was injected; Reset does not reload it
	pending *config.DashConfig
	player  *Player
	level   *Generator
	runtime core.RuntimeConfig
	logger  *log.Logger

	gameOver    bool
	paused      bool
	tickCount   int
	distance    float64
	shieldsLost int
	teleports   int
}

var (
	configPath string
	preset     config.Preset
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path used by new sessions.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects a difficulty preset applied on top of the loaded config.
func SetPreset(p config.Preset) {
	preset = p
}

// SetLogger sets the logger new sessions report to.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a session that loads its config on every Reset.
func New() *Game {
	return &Game{logger: logger}
}

// NewWithConfig creates a session bound to cfg. Panics if cfg is invalid.
func NewWithConfig(cfg config.DashConfig) *Game {
	cfg.MustValidate("dash")
	return &Game{cfg: cfg, fixed: true, logger: logger}
}

// ID returns the registry id "dash".
func (g *Game) ID() string {
	return "dash"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "GNU Dash"
}

// SetConfig queues cfg for the next Reset; the running session keeps its
// current config. The package preset is applied on top.
func (g *Game) SetConfig(cfg config.DashConfig) error {
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.pending = &cfg
	return nil
}

// Reset starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.pending != nil {
		g.cfg = *g.pending
		g.fixed = true
		g.pending = nil
	}
	if !g.fixed {
		cfg, err := config.Load(configPath)
		if err != nil {
			g.logger.Warn("falling back to default config", "err", err)
			cfg = config.DefaultDashConfig()
		}
		if preset != "" {
			config.ApplyPreset(&cfg, preset)
		}
		g.cfg = cfg
	}

	g.player = NewPlayer(g.cfg)
	g.level = NewGenerator(runtime.Seed, g.cfg)
	g.level.SetLogger(g.logger)

	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.distance = 0
	g.shieldsLost = 0
	g.teleports = 0

	g.logger.Debug("run started", "seed", runtime.Seed, "shields", g.player.LibertyShields())
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State(), Ticks: g.tickCount}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return core.StepResult{State: g.State(), Ticks: g.tickCount}
	}

	g.tickCount++

	g.HandleIntent(in.DX, in.Has(core.ActionJump), in.Has(core.ActionJumpRelease))
	g.player.Update(g.cfg.Physics.Gravity, g.level.Obstacles())
	g.level.Update()
	g.distance += g.cfg.Level.ScrollSpeed

	g.collectPickups()
	g.checkFall()
	g.keepOnScreen()

	if g.player.LibertyShields() <= 0 {
		g.gameOver = true
		g.logger.Info("game over",
			"freedom", g.player.Freedom(),
			"distance", int(g.distance),
			"ticks", g.tickCount)
	}

	return core.StepResult{State: g.State(), Ticks: g.tickCount}
}

// HandleIntent forwards one frame of player intent to the body.
func (g *Game) HandleIntent(dx int, jumpStart, jumpEnd bool) {
	g.player.SetHorizontalIntent(dx)
	if jumpStart {
		g.player.StartJump()
	}
	if jumpEnd {
		g.player.EndJump()
	}
}

func (g *Game) collectPickups() {
	pr := g.player.Rect()
	var hits []uint64
	for _, c := range g.level.Collectibles() {
		if pr.Intersects(c.Rect) {
			hits = append(hits, c.ID)
		}
	}
	for _, id := range hits {
		if g.level.RemoveCollectible(id) {
			g.player.CollectPickup()
			g.logger.Debug("source code collected", "freedom", g.player.Freedom())
		}
	}
}

// checkFall handles the player dropping below the world: one shield is lost
// (unless invincible) and the player reappears at the spawn column.
func (g *Game) checkFall() {
	_, y := g.player.Position()
	if y <= float64(g.cfg.Screen.Height) {
		return
	}

	if g.player.LoseShield() {
		g.shieldsLost++
		g.logger.Info("liberty shield lost", "remaining", g.player.LibertyShields())
	}

	x := float64(g.cfg.Player.InitialX)
	safeY := g.findSafeY(x)
	g.player.Teleport(x, safeY)
	g.teleports++
	g.logger.Debug("player teleported", "x", x, "y", safeY)
}

// findSafeY scans down from the top in player-height steps for a spot at x
// where the player overlaps nothing. Returns 0 if there is none.
func (g *Game) findSafeY(x float64) float64 {
	w, h := g.player.Size()
	limit := float64(g.cfg.Screen.Height) - h
	for y := 0.0; y <= limit; y += h {
		r := core.NewRect(x, y, w, h)
		if !g.overlapsObstacle(r) {
			return y
		}
	}
	return 0
}

func (g *Game) overlapsObstacle(r core.Rect) bool {
	for _, o := range g.level.Obstacles() {
		if r.Intersects(o.Rect) {
			return true
		}
	}
	return false
}

func (g *Game) keepOnScreen() {
	p := g.player
	p.x = core.Clamp(p.x, 0, float64(g.cfg.Screen.Width)-p.width)
	if p.y < 0 {
		p.y = 0
		p.vy = 0
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	st := core.GameState{GameOver: g.gameOver, Paused: g.paused}
	if g.player != nil {
		st.Freedom = g.player.Freedom()
		st.Shields = g.player.LibertyShields()
	}
	return st
}

// Player returns the session's player body.
func (g *Game) Player() *Player { return g.player }

// Level returns the session's level generator.
func (g *Game) Level() *Generator { return g.level }

// Config returns the config of the current run.
func (g *Game) Config() config.DashConfig { return g.cfg }

// Stats summarizes the current run.
type Stats struct {
	Freedom     int
	Distance    int
	Ticks       int
	ShieldsLost int
	Teleports   int
}

// Stats returns counters for the current run.
func (g *Game) Stats() Stats {
	s := Stats{
		Distance:    int(g.distance),
		Ticks:       g.tickCount,
		ShieldsLost: g.shieldsLost,
		Teleports:   g.teleports,
	}
	if g.player != nil {
		s.Freedom = g.player.Freedom()
	}
	return s
}

func init() {
	registry.Register("dash", func() registry.Game {
		return New()
	})
}
