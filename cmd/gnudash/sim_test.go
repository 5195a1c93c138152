package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/storage"
)

func TestSimulateKeepsInvariants(t *testing.T) {
	cfg := config.DefaultDashConfig()
	for seed := int64(1); seed <= 5; seed++ {
		res := simulate(cfg, seed, 2000)
		if len(res.Violations) > 0 {
			t.Fatalf("seed %d: %v", seed, res.Violations[0])
		}
		if res.Stats.Ticks == 0 {
			t.Errorf("seed %d: no ticks simulated", seed)
		}
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultDashConfig()
	a := simulate(cfg, 42, 1500)
	b := simulate(cfg, 42, 1500)
	if a.Hash != b.Hash {
		t.Errorf("same seed gave hashes %x and %x", a.Hash, b.Hash)
	}
	if a.Stats != b.Stats {
		t.Errorf("same seed gave stats %+v and %+v", a.Stats, b.Stats)
	}
}

func TestSimulateHardPreset(t *testing.T) {
	cfg := config.DefaultDashConfig()
	config.ApplyPreset(&cfg, config.PresetHard)
	res := simulate(cfg, 3, 2000)
	if len(res.Violations) > 0 {
		t.Fatalf("hard preset: %v", res.Violations[0])
	}
}

func TestRenderSimSummary(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	results := []simResult{
		simulate(config.DefaultDashConfig(), 1, 300),
		{Seed: 2, Violations: []string{"tick 1: frontier 0.0 behind 1200.0"}},
	}
	if _, err := store.SaveRun(storage.Run{Seed: 1, Preset: "normal", Freedom: 4, Distance: 900}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	out := renderSimSummary(results, store)
	for _, want := range []string{"GNU Dash autopilot", "Seed", "1 violations", "best freedom 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
