package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/gnu-dash/internal/core"
)

func TestFrameFrom(t *testing.T) {
	tests := []struct {
		name    string
		in      inputState
		dx      int
		jump    bool
		release bool
		pause   bool
	}{
		{name: "idle"},
		{name: "left", in: inputState{left: true}, dx: -1},
		{name: "right", in: inputState{right: true}, dx: 1},
		{name: "both cancel", in: inputState{left: true, right: true}},
		{name: "jump press", in: inputState{jumpPressed: true}, jump: true},
		{name: "jump release", in: inputState{jumpReleased: true}, release: true},
		{name: "pause while running", in: inputState{right: true, pause: true}, dx: 1, pause: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frameFrom(tt.in)
			if f.DX != tt.dx {
				t.Errorf("DX = %d, want %d", f.DX, tt.dx)
			}
			if f.Has(core.ActionJump) != tt.jump {
				t.Errorf("jump = %v, want %v", f.Has(core.ActionJump), tt.jump)
			}
			if f.Has(core.ActionJumpRelease) != tt.release {
				t.Errorf("release = %v, want %v", f.Has(core.ActionJumpRelease), tt.release)
			}
			if f.Has(core.ActionPause) != tt.pause {
				t.Errorf("pause = %v, want %v", f.Has(core.ActionPause), tt.pause)
			}
		})
	}
}

func TestPaletteCoversConfigColors(t *testing.T) {
	for _, name := range []string{"bright_cyan", "green", "gray", "bright_yellow", "bright_white", "orange"} {
		c := core.ParseColor(name)
		if _, ok := palette[c]; !ok {
			t.Errorf("no RGB value for %q", name)
		}
	}
	if got := rgba(core.ColorDefault); got.A != 255 {
		t.Errorf("default color should be opaque, got %+v", got)
	}
}

func TestHUDFaceIsMonospace(t *testing.T) {
	for _, s := range []string{"GAME OVER", "Liberty Shields: 3", ""} {
		if got, want := text.Advance(s, hudFace), float64(7*len(s)); got != want {
			t.Errorf("Advance(%q) = %v, want %v", s, got, want)
		}
	}
	m := hudFace.Metrics()
	if got := m.HAscent + m.HDescent; got != 13 {
		t.Errorf("line height = %v, want 13", got)
	}
}
