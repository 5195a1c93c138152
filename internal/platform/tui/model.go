package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/storage"
)

// demoRestartTicks is how long a finished demo run stays on screen.
const demoRestartTicks = 120

// Options configures a terminal session.
type Options struct {
	// Demo lets the autopilot play; any key returns to the menu.
	Demo bool
	// HoldTicks and JumpHoldTicks are the key latch windows, see KeyLatch.
	HoldTicks     int
	JumpHoldTicks int
	// Preset is recorded with each saved run.
	Preset string
	// ScreenshotDir receives ctrl+s frame dumps; empty means
	// ~/.gnudash/screenshots.
	ScreenshotDir string
	// Watcher, when set, hot-reloads the config file.
	Watcher *config.Watcher
	Logger  *log.Logger
}

// reloadMsg carries a config file change into the update loop.
type reloadMsg config.Reload

// Model is the Bubble Tea model for one GNU Dash session.
type Model struct {
	game       *dash.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	latch      *KeyLatch
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool
	demoWait   int
}

// NewModel creates a model driving game.
func NewModel(game *dash.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		latch:      NewKeyLatch(opts.HoldTicks, opts.JumpHoldTicks),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForReload(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-w.Events
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case reloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.opts.Demo {
		m.backToMenu = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Back) {
		m.backToMenu = true
		return m, tea.Quit
	}

	// Any other key starts a new run after game over.
	if m.gameState.GameOver {
		m.inputFrame.Set(core.ActionRestart)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.latch.PressDirection(-1)
	case key.Matches(msg, m.keys.Right):
		m.latch.PressDirection(1)
	case key.Matches(msg, m.keys.Jump):
		m.latch.PressJump()
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver && (m.inputFrame.Has(core.ActionRestart) || m.demoRestartDue()) {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.inputFrame
	if m.opts.Demo {
		frame = dash.Autopilot(m.game)
	} else {
		m.latch.Apply(&frame)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
		m.demoWait = demoRestartTicks
	}
	if m.demoWait > 0 {
		m.demoWait--
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) demoRestartDue() bool {
	return m.opts.Demo && m.demoWait == 0
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.demoWait = 0
	m.latch.Reset()
	m.inputFrame.Clear()
}

// saveRun records the finished run. Demo runs are not recorded.
func (m *Model) saveRun() {
	if m.store == nil || m.opts.Demo {
		return
	}
	st := m.game.Stats()
	_, err := m.store.SaveRun(storage.Run{
		Seed:        m.config.Seed,
		Preset:      m.opts.Preset,
		Freedom:     st.Freedom,
		Distance:    st.Distance,
		Ticks:       st.Ticks,
		ShieldsLost: st.ShieldsLost,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	next := waitForReload(m.opts.Watcher)
	if r.Err != nil {
		m.logger.Warn("config reload failed", "path", r.Path, "err", r.Err)
		return m, next
	}
	if err := m.game.SetConfig(r.Config); err != nil {
		m.logger.Warn("reloaded config rejected", "path", r.Path, "err", err)
		return m, next
	}
	m.logger.Info("config reloaded, applies on next run", "path", r.Path)
	return m, next
}

// saveScreenshot writes the current frame as plain text. It only runs when
// the player presses ctrl+s.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot: no home directory", "err", err)
			return
		}
		dir = filepath.Join(home, ".gnudash", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "err", err)
		return
	}

	name := fmt.Sprintf("dash_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the session ended by returning to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the user quits or goes back.
// Reports whether the user asked to return to the menu.
func Run(game *dash.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (bool, error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
