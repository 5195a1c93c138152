package tui

import "github.com/vovakirdan/gnu-dash/internal/core"

// repeatGapTicks is the longest gap between two auto-repeat events. Key
// repeat runs at 25-40 events per second, about one event every 2 ticks.
const repeatGapTicks = 4

// KeyLatch turns terminal key presses into held-key state.
//
// Terminals report presses and auto-repeats but never releases. A press
// holds its key for a fixed number of ticks; repeats arriving within that
// window keep it held. When the jump key stops repeating the latch emits
// ActionJumpRelease, which cuts the jump short.
//
// The jump key needs more care. The first repeat of a held key arrives
// only after the keyboard repeat delay (250-600 ms), so the first jump
// window is jumpHold ticks long. An event inside that window is either the
// first repeat or a second tap: it becomes a double jump only if no further
// event follows within repeatGapTicks.
type KeyLatch struct {
	hold     int
	jumpHold int

	dir     int
	dirLeft int

	jumpLeft    int
	pendingJump bool
	confirmLeft int  // ticks until an unconfirmed second tap fires
	repeating   bool // a steady repeat stream was seen
}

// NewKeyLatch creates a latch holding direction keys for hold ticks and a
// fresh jump press for jumpHold ticks.
func NewKeyLatch(hold, jumpHold int) *KeyLatch {
	hold = max(hold, 1)
	return &KeyLatch{
		hold:     hold,
		jumpHold: max(jumpHold, hold, repeatGapTicks+1),
	}
}

// PressDirection records a left (-1) or right (1) key event.
func (l *KeyLatch) PressDirection(dx int) {
	l.dir = core.Clamp(dx, -1, 1)
	l.dirLeft = l.hold
}

// PressJump records a jump key event.
func (l *KeyLatch) PressJump() {
	switch {
	case l.jumpLeft == 0:
		l.pendingJump = true
		l.repeating = false
		l.jumpLeft = l.jumpHold
	case l.confirmLeft > 0:
		// Two events in quick succession: the key is auto-repeating.
		l.confirmLeft = 0
		l.repeating = true
		l.jumpLeft = l.hold
	case l.repeating:
		l.jumpLeft = l.hold
	default:
		l.confirmLeft = repeatGapTicks
		l.jumpLeft = l.jumpHold
	}
}

// Apply writes the latched state for one tick into f and ages the latch.
func (l *KeyLatch) Apply(f *core.InputFrame) {
	if l.dirLeft > 0 {
		f.SetDirection(l.dir)
		l.dirLeft--
	}

	if l.pendingJump {
		f.Set(core.ActionJump)
		l.pendingJump = false
	}
	if l.confirmLeft > 0 {
		l.confirmLeft--
		if l.confirmLeft == 0 {
			f.Set(core.ActionJump)
		}
	}
	if l.jumpLeft > 0 {
		l.jumpLeft--
		if l.jumpLeft == 0 {
			f.Set(core.ActionJumpRelease)
			l.repeating = false
		}
	}
}

// Reset releases every key without emitting events.
func (l *KeyLatch) Reset() {
	l.dir, l.dirLeft = 0, 0
	l.jumpLeft = 0
	l.pendingJump = false
	l.confirmLeft = 0
	l.repeating = false
}
