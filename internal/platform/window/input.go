package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gnu-dash/internal/core"
)

// inputState is one tick of raw keyboard and mouse state.
type inputState struct {
	left, right  bool
	jumpPressed  bool
	jumpReleased bool
	pause        bool
}

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW}

func readInput() inputState {
	s := inputState{
		left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
	for _, k := range jumpKeys {
		s.jumpPressed = s.jumpPressed || inpututil.IsKeyJustPressed(k)
		s.jumpReleased = s.jumpReleased || inpututil.IsKeyJustReleased(k)
	}
	s.jumpPressed = s.jumpPressed || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.jumpReleased = s.jumpReleased || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return s
}

// frameFrom turns raw state into an input frame. Opposite directions
// cancel out.
func frameFrom(s inputState) core.InputFrame {
	f := core.NewInputFrame()
	dx := 0
	if s.left {
		dx--
	}
	if s.right {
		dx++
	}
	f.SetDirection(dx)
	if s.jumpPressed {
		f.Set(core.ActionJump)
	}
	if s.jumpReleased {
		f.Set(core.ActionJumpRelease)
	}
	if s.pause {
		f.Set(core.ActionPause)
	}
	return f
}
