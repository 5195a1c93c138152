package core

// Action is a frontend-neutral command. Frontends translate keys, mouse
// buttons or the autopilot into actions.
type Action uint8

const (
	ActionNone        Action = iota
	ActionJump               // start a jump, or double jump in the air
	ActionJumpRelease        // jump key let go; cuts a rising jump short
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause // toggles pause
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionJump:        "Jump",
	ActionJumpRelease: "JumpRelease",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the input for one tick. Actions are edges that happened
// during the tick; DX is the horizontal direction held at its end.
type InputFrame struct {
	actions uint32
	DX      int // -1 left, 0 none, 1 right
}

// NewInputFrame returns a frame with nothing pressed.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered this tick.
func (f *InputFrame) Set(a Action) {
	f.actions |= 1 << a
}

// Has reports whether a was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	return f.actions&(1<<a) != 0
}

// SetDirection records the held direction, clamped to [-1, 1].
func (f *InputFrame) SetDirection(dx int) {
	f.DX = Clamp(dx, -1, 1)
}

// Clear empties the frame for reuse.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
