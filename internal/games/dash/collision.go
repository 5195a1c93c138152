package dash

// resolveCollisions pushes the player out of every obstacle it overlaps.
// Obstacles are handled one at a time in slice order, so a snap against one
// obstacle can change how the next is classified. For each overlap the first
// matching rule wins:
//
//  1. falling onto the top
//  2. rising into the underside
//  3. moving right into the left face
//  4. moving left into the right face
//
// Each rule requires the matching edge to have been clear of the obstacle
// before this tick's move. An overlap matching no rule (a fast diagonal
// entry into a corner, or a block scrolling into a standing player) is left
// as is.
func (p *Player) resolveCollisions(prevX, prevY float64, obstacles []Obstacle) {
	for i := range obstacles {
		o := obstacles[i].Rect
		if !p.Rect().Intersects(o) {
			continue
		}

		switch {
		case p.vy > 0 && prevY+p.height <= o.Y:
			p.y = o.Y - p.height
			p.vy = 0
			p.onGround = true
		case p.vy < 0 && prevY >= o.Bottom():
			p.y = o.Bottom()
			p.vy = 0
		case p.vx > 0 && prevX+p.width <= o.X:
			p.x = o.X - p.width
			p.vx = 0
		case p.vx < 0 && prevX >= o.Right():
			p.x = o.Right()
			p.vx = 0
		}
	}
}
