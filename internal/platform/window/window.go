// Package window runs GNU Dash in a desktop window with Ebitengine.
// Unlike the terminal, the window sees real key releases, so held keys and
// jump cut-off work exactly as intended.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/gnu-dash/internal/core"
	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/storage"
)

// hudFace is the fixed-size bitmap font used for every label.
var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Options configures the window session.
type Options struct {
	Scale  float64
	Preset string
	Logger *log.Logger
}

// App adapts a dash session to ebiten.Game.
type App struct {
	game     *dash.Game
	store    *storage.Store
	runtime  core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	runSaved bool
}

// NewApp creates the window adapter and starts the first run.
func NewApp(game *dash.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) *App {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{game: game, store: store, runtime: runtime, opts: opts, logger: logger}
	a.game.Reset(runtime)
	return a
}

// Update reads input and advances the session by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if a.game.State().GameOver {
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.runtime.Seed = time.Now().UnixNano()
			a.game.Reset(a.runtime)
			a.runSaved = false
		}
		return nil
	}

	res := a.game.Step(frameFrom(readInput()))
	if res.State.GameOver && !a.runSaved {
		a.saveRun()
		a.runSaved = true
	}
	return nil
}

func (a *App) saveRun() {
	if a.store == nil {
		return
	}
	st := a.game.Stats()
	_, err := a.store.SaveRun(storage.Run{
		Seed:        a.runtime.Seed,
		Preset:      a.opts.Preset,
		Freedom:     st.Freedom,
		Distance:    st.Distance,
		Ticks:       st.Ticks,
		ShieldsLost: st.ShieldsLost,
	})
	if err != nil {
		a.logger.Warn("could not save run", "err", err)
	}
}

// Draw paints the world in world coordinates; Layout makes them pixels.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 20, A: 255})

	cfg := a.game.Config()
	level := a.game.Level()
	floor := rgba(core.ParseColor(cfg.Colors.Floor))
	blockC := rgba(core.ParseColor(cfg.Colors.Block))
	for _, o := range level.Obstacles() {
		c := blockC
		if level.IsFloor(o) {
			c = floor
		}
		fillRect(screen, o.Rect, c)
	}

	code := rgba(core.ParseColor(cfg.Colors.SourceCode))
	for _, c := range level.Collectibles() {
		fillRect(screen, c.Rect, code)
	}

	p := a.game.Player()
	if p.Visible() {
		fillRect(screen, p.Rect(), rgba(core.ParseColor(cfg.Colors.Player)))
	}

	textC := rgba(core.ParseColor(cfg.Colors.Text))
	drawLabel(screen, fmt.Sprintf("Freedom: %d", p.Freedom()), 10, 8, text.AlignStart, textC)
	drawLabel(screen, fmt.Sprintf("Liberty Shields: %d", p.LibertyShields()), 10, 28, text.AlignStart, textC)

	st := a.game.State()
	switch {
	case st.GameOver:
		drawBanner(screen, "GAME OVER", fmt.Sprintf("Freedom: %d - press any key", p.Freedom()))
	case st.Paused:
		drawBanner(screen, "PAUSED", "Esc to resume")
	}
}

// Layout keeps the logical screen at the world size; ebiten scales it to
// the window.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawBanner(dst *ebiten.Image, title, subtitle string) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	boxW, boxH := 320, 80
	x, y := (w-boxW)/2, (h-boxH)/2
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), color.RGBA{A: 200}, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), 2, color.White, false)
	cx := float64(x + boxW/2)
	drawLabel(dst, title, cx, float64(y+18), text.AlignCenter, color.White)
	drawLabel(dst, subtitle, cx, float64(y+46), text.AlignCenter, color.White)
}

// drawLabel draws s with its top edge at y; align picks whether x is the
// left edge or the center of the text.
func drawLabel(dst *ebiten.Image, s string, x, y float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, s, hudFace, op)
}

// Run opens the window and blocks until it is closed.
func Run(game *dash.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) error {
	app := NewApp(game, store, runtime, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cfg := game.Config()
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)*scale), int(float64(cfg.Screen.Height)*scale))
	ebiten.SetWindowTitle("GNU Dash")
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
