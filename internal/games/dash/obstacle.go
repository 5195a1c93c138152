package dash

import "github.com/vovakirdan/gnu-dash/internal/core"

// Obstacle is a solid block the player collides with.
// Its shape is fixed at creation; only X changes as the world scrolls.
type Obstacle struct {
	ID   uint64
	Rect core.Rect
}

// IsFloor reports whether the obstacle reaches the bottom of the world.
// Floor segments and elevated blocks are drawn differently.
func (o Obstacle) IsFloor(screenH float64) bool {
	return o.Rect.Bottom() >= screenH
}

// Collectible is a "source code" pickup. Collecting one raises freedom.
type Collectible struct {
	ID   uint64
	Rect core.Rect
}
