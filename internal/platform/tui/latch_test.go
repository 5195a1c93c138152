package tui

import (
	"testing"

	"github.com/vovakirdan/gnu-dash/internal/core"
)

func applyN(l *KeyLatch, n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		l.Apply(&frames[i])
	}
	return frames
}

func TestKeyLatchHoldsDirection(t *testing.T) {
	l := NewKeyLatch(3, 0)
	l.PressDirection(1)

	frames := applyN(l, 5)
	for i, f := range frames {
		want := 0
		if i < 3 {
			want = 1
		}
		if f.DX != want {
			t.Errorf("tick %d: DX = %d, want %d", i, f.DX, want)
		}
	}
}

func TestKeyLatchRepeatExtendsHold(t *testing.T) {
	l := NewKeyLatch(3, 0)
	l.PressDirection(-1)
	applyN(l, 2)
	l.PressDirection(-1)

	frames := applyN(l, 4)
	if frames[2].DX != -1 || frames[3].DX != 0 {
		t.Errorf("repeat should restart the window: %d %d", frames[2].DX, frames[3].DX)
	}
}

// driveJump presses the jump key on the given ticks and reports the ticks
// on which jumps start and are released.
func driveJump(l *KeyLatch, presses []int, ticks int) (starts, releases []int) {
	pressed := make(map[int]bool, len(presses))
	for _, p := range presses {
		pressed[p] = true
	}
	for tick := range ticks {
		if pressed[tick] {
			l.PressJump()
		}
		f := core.NewInputFrame()
		l.Apply(&f)
		if f.Has(core.ActionJump) {
			starts = append(starts, tick)
		}
		if f.Has(core.ActionJumpRelease) {
			releases = append(releases, tick)
		}
	}
	return starts, releases
}

func equalTicks(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKeyLatchJumpPressAndRelease(t *testing.T) {
	starts, releases := driveJump(NewKeyLatch(3, 6), []int{0}, 10)
	if !equalTicks(starts, []int{0}) {
		t.Errorf("starts = %v, want [0]", starts)
	}
	if !equalTicks(releases, []int{5}) {
		t.Errorf("releases = %v, want [5]", releases)
	}
}

func TestKeyLatchHeldJumpKey(t *testing.T) {
	// The keyboard repeat delay is 250-600 ms; after it repeats come about
	// every 2 ticks until the key is let go at tick 60.
	for _, firstRepeat := range []int{15, 30, 36} {
		presses := []int{0}
		last := 0
		for tick := firstRepeat; tick < 60; tick += 2 {
			presses = append(presses, tick)
			last = tick
		}

		starts, releases := driveJump(NewKeyLatch(8, 40), presses, 100)
		if !equalTicks(starts, []int{0}) {
			t.Errorf("first repeat at %d: starts = %v, want only [0]", firstRepeat, starts)
		}
		if want := []int{last + 7}; !equalTicks(releases, want) {
			t.Errorf("first repeat at %d: releases = %v, want %v", firstRepeat, releases, want)
		}
	}
}

func TestKeyLatchSecondTapIsDoubleJump(t *testing.T) {
	starts, releases := driveJump(NewKeyLatch(8, 40), []int{0, 20}, 80)
	if !equalTicks(starts, []int{0, 23}) {
		t.Errorf("starts = %v, want [0 23]", starts)
	}
	if !equalTicks(releases, []int{59}) {
		t.Errorf("releases = %v, want [59]", releases)
	}
}

func TestKeyLatchPressAfterReleaseIsNewJump(t *testing.T) {
	starts, releases := driveJump(NewKeyLatch(8, 40), []int{0, 50}, 60)
	if !equalTicks(starts, []int{0, 50}) {
		t.Errorf("starts = %v, want [0 50]", starts)
	}
	if !equalTicks(releases, []int{39}) {
		t.Errorf("releases = %v, want [39]", releases)
	}
}

func TestKeyLatchReset(t *testing.T) {
	l := NewKeyLatch(5, 0)
	l.PressDirection(1)
	l.PressJump()
	l.Reset()

	for i, f := range applyN(l, 6) {
		if f.DX != 0 || f.Has(core.ActionJump) || f.Has(core.ActionJumpRelease) {
			t.Fatalf("tick %d: reset latch produced input %+v", i, f)
		}
	}
}
