package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if opts.HoldTicks == 0 {
		opts.HoldTicks = 4
	}
	game := dash.NewWithConfig(config.DefaultDashConfig())
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(game, store, rc, opts)
	m.Init()
	return m, store
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelRightKeyMovesPlayer(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	x0, _ := m.game.Player().Position()

	m = step(t, m, keyMsg("right"))
	for range 3 {
		m = step(t, m, TickMsg{})
	}

	x1, _ := m.game.Player().Position()
	if x1 <= x0 {
		t.Errorf("player should move right: %v -> %v", x0, x1)
	}
}

func TestModelJumpKey(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	for range 60 {
		m = step(t, m, TickMsg{})
	}
	if !m.game.Player().OnGround() {
		t.Fatal("player should have landed on the spawn floor")
	}

	m = step(t, m, keyMsg(" "))
	m = step(t, m, TickMsg{})
	if _, vy := m.game.Player().Velocity(); vy >= 0 {
		t.Errorf("jump key should send the player up, vy = %v", vy)
	}
}

func TestModelPauseKey(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = step(t, m, keyMsg("esc"))
	m = step(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Error("esc should pause")
	}
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	m, store := newTestModel(t, Options{Preset: "hard"})

	for range 10000 {
		m = step(t, m, TickMsg{})
		if m.gameState.GameOver {
			break
		}
	}
	if !m.gameState.GameOver {
		t.Fatal("idle player should eventually run out of shields")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Preset != "hard" || runs[0].Seed != 7 {
		t.Fatalf("unexpected saved runs %+v", runs)
	}

	// Any key restarts.
	m = step(t, m, keyMsg("x"))
	m = step(t, m, TickMsg{})
	if m.gameState.GameOver {
		t.Error("key press after game over should restart")
	}
	if n, _ := store.RunCount(); n != 1 {
		t.Errorf("run saved %d times", n)
	}
}

func TestModelDemoKeyReturnsToMenu(t *testing.T) {
	m, _ := newTestModel(t, Options{Demo: true})
	m = step(t, m, TickMsg{})
	m = step(t, m, keyMsg("x"))
	if !m.BackToMenu() {
		t.Error("any key should leave the demo")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.QuitMsg")
	}
}

func TestModelReloadQueuesConfig(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	cfg := config.DefaultDashConfig()
	cfg.Level.ScrollSpeed = 5
	m.opts.Watcher = nil
	next, _ := m.handleReload(config.Reload{Path: "dash.yaml", Config: cfg})
	m = next.(Model)

	m.restart()
	if got := m.game.Config().Level.ScrollSpeed; got != 5 {
		t.Errorf("scroll speed after restart = %v, want 5", got)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = step(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "Freedom") {
		t.Error("view should contain the HUD")
	}
	if len(strings.Split(view, "\n")) != 24 {
		t.Errorf("view should have 24 rows")
	}
}

func TestModelScreenshotOnlyOnCtrlS(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})

	m = step(t, m, TickMsg{})
	m = step(t, m, keyMsg("right"))
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("screenshot directory created without ctrl+s: %v", err)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "dash_") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("unexpected screenshot name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Freedom") {
		t.Error("screenshot should contain the HUD")
	}
	if m.quitting {
		t.Error("ctrl+s should not end the session")
	}
}
