// Package registry lets game packages announce themselves from init so
// frontends can list and start them by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/gnu-dash/internal/core"
)

// Game is a fixed-tick simulation a frontend can drive and draw.
// Implementations must not depend on any frontend package.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new run. The seed in cfg fully determines the level.
	Reset(cfg core.RuntimeConfig)

	// Step advances the run by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the run into a cleared cell buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory creates a fresh game instance.
type Factory func() Game

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
