package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Errorf("embedded defaults drifted from DefaultDashConfig():\n%+v\n%+v", cfg, DefaultDashConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	data := "level:\n  scroll_speed: 5\nplayer:\n  initial_liberty_shields: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Level.ScrollSpeed != 5 {
		t.Errorf("scroll_speed = %v, expected 5", cfg.Level.ScrollSpeed)
	}
	if cfg.Player.InitialLibertyShields != 7 {
		t.Errorf("initial_liberty_shields = %d, expected 7", cfg.Player.InitialLibertyShields)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != DefaultDashConfig().Physics.Gravity {
		t.Errorf("gravity = %v, expected default", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	data := "level:\n  hole_min_width: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject hole_min_width > hole_max_width")
	}
	if !strings.Contains(err.Error(), "hole_min_width") {
		t.Errorf("error should name the offending key, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DashConfig)
		field  string
	}{
		{"hole min over jump cap", func(c *DashConfig) { c.Level.MaxJumpDistance = 80 }, "hole_min_width"},
		{"inverted block widths", func(c *DashConfig) { c.Level.BlockMinWidth = 500 }, "block width"},
		{"zero gravity", func(c *DashConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"certain holes", func(c *DashConfig) { c.Level.HoleChance = 1 }, "hole_chance"},
		{"no stones", func(c *DashConfig) { c.Level.Stones.MinCount = 0 }, "stones"},
		{"spawn floor too short", func(c *DashConfig) { c.Level.SpawnFloorWidth = 10 }, "spawn_floor_width"},
		{"flash interval", func(c *DashConfig) { c.Player.FlashInterval = 0 }, "flash_interval"},
		{"unknown color", func(c *DashConfig) { c.Colors.Block = "chartreuse" }, "colors.block"},
		{"jump hold shorter than key hold", func(c *DashConfig) { c.Frontend.JumpHoldTicks = 4 }, "jump_hold_ticks"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDashConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestEffectiveHoleMaxWidth(t *testing.T) {
	cfg := DefaultDashConfig()
	cfg.Level.HoleMaxWidth = 150
	cfg.Level.MaxJumpDistance = 200
	if got := cfg.EffectiveHoleMaxWidth(); got != 100 {
		t.Errorf("EffectiveHoleMaxWidth() = %d, expected 100", got)
	}

	cfg.Level.HoleMaxWidth = 60
	if got := cfg.EffectiveHoleMaxWidth(); got != 60 {
		t.Errorf("EffectiveHoleMaxWidth() = %d, expected 60", got)
	}
}

func TestMustValidatePanics(t *testing.T) {
	cfg := DefaultDashConfig()
	cfg.Player.Width = 0

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustValidate should panic on invalid config")
		}
		if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "dash: invalid config") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	cfg.MustValidate("dash")
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDashConfig()
	ApplyPreset(&cfg, ParsePreset("hard"))
	if cfg.Player.InitialLibertyShields != 2 {
		t.Errorf("hard preset shields = %d, expected 2", cfg.Player.InitialLibertyShields)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultDashConfig()
	ApplyPreset(&cfg, ParsePreset("bogus"))
	if !reflect.DeepEqual(cfg, DefaultDashConfig()) {
		t.Error("unknown preset should not change the config")
	}
}

func TestMarshalRoundTripKeepsValidity(t *testing.T) {
	data, err := Marshal(DefaultDashConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("re-parsed config invalid: %v", err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	if err := os.WriteFile(path, []byte("level:\n  scroll_speed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("level:\n  scroll_speed: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case r := <-w.Events:
			if r.Err != nil {
				// A write may be observed while the file is still truncated
				continue
			}
			if r.Config.Level.ScrollSpeed == 6 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
