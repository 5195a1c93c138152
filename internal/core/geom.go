// Package core holds the frontend-neutral building blocks shared by the game
// and its frontends: world geometry, input frames and the cell buffer.
// Nothing here imports Bubble Tea or Ebitengine.
package core

import "cmp"

// Rect is an axis-aligned box in world units. The origin is the top-left
// corner of the world and y grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect returns the box with top-left corner (x, y) and size w x h.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Intersects reports whether r and o share interior area. Boxes that only
// touch along an edge do not intersect, so a body resting on a floor is not
// "inside" it.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies in r, right and bottom edges excluded.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
