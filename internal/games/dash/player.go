package dash

import (
	"math"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
)

// Player is the physics body controlled by the user.
// Coordinates are world units with y growing downwards.
type Player struct {
	x, y          float64
	width, height float64
	vx, vy        float64

	onGround      bool
	canDoubleJump bool
	invincible    bool
	visible       bool

	invincibleTimer int
	freedom         int
	libertyShields  int

	intent int // held horizontal direction, applied on the next Update

	speed              float64
	jumpStrength       float64
	doubleJumpStrength float64
	friction           float64
	frictionFloor      float64
	invincibleDuration int
	flashInterval      int
}

// NewPlayer creates a player at the configured spawn point.
// Panics if cfg violates the config contract.
func NewPlayer(cfg config.DashConfig) *Player {
	cfg.MustValidate("dash")

	p := cfg.Player
	return &Player{
		x:                  float64(p.InitialX),
		y:                  float64(p.InitialY),
		width:              float64(p.Width),
		height:             float64(p.Height),
		visible:            true,
		libertyShields:     p.InitialLibertyShields,
		speed:              p.MoveSpeed,
		jumpStrength:       p.JumpStrength,
		doubleJumpStrength: p.DoubleJumpStrength,
		friction:           cfg.Physics.Friction,
		frictionFloor:      cfg.Physics.FrictionFloor,
		invincibleDuration: p.InvincibleDuration,
		flashInterval:      p.FlashInterval,
	}
}

// SetHorizontalIntent sets the held direction (-1, 0 or 1). The velocity
// change happens on the next Update; with no direction held the current
// velocity decays through friction.
func (p *Player) SetHorizontalIntent(dx int) {
	p.intent = core.Clamp(dx, -1, 1)
}

// StartJump jumps from the ground, or double jumps once while airborne.
func (p *Player) StartJump() {
	switch {
	case p.onGround:
		p.vy = -p.jumpStrength
		p.onGround = false
		p.canDoubleJump = true
	case p.canDoubleJump:
		p.vy = -p.doubleJumpStrength
		p.canDoubleJump = false
	}
}

// EndJump cuts a rising jump short when the jump key is released.
func (p *Player) EndJump() {
	if p.vy < 0 {
		p.vy /= 2
	}
}

// Update advances the body by one tick: gravity, movement, collision
// resolution against obstacles (in slice order), friction and the
// invincibility timer.
func (p *Player) Update(gravity float64, obstacles []Obstacle) {
	if p.intent != 0 {
		p.vx = float64(p.intent) * p.speed
	}

	prevX, prevY := p.x, p.y

	p.vy += gravity
	p.x += p.vx
	p.y += p.vy

	p.onGround = false
	p.resolveCollisions(prevX, prevY, obstacles)

	p.vx *= p.friction
	if math.Abs(p.vx) < p.frictionFloor {
		p.vx = 0
	}

	p.tickInvincibility()
}

func (p *Player) tickInvincibility() {
	if !p.invincible {
		return
	}
	p.invincibleTimer++
	if p.invincibleTimer%p.flashInterval == 0 {
		p.visible = !p.visible
	}
	if p.invincibleTimer >= p.invincibleDuration {
		p.invincible = false
		p.visible = true
	}
}

// CollectPickup raises freedom by one.
func (p *Player) CollectPickup() {
	p.freedom++
}

// LoseShield removes one liberty shield and starts the invincibility
// window. While invincible it does nothing. Reports whether a shield was lost.
func (p *Player) LoseShield() bool {
	if p.invincible {
		return false
	}
	p.libertyShields--
	p.invincible = true
	p.invincibleTimer = 0
	return true
}

// Teleport moves the player to (x, y) and stops all motion.
func (p *Player) Teleport(x, y float64) {
	p.x = x
	p.y = y
	p.vx = 0
	p.vy = 0
	p.onGround = false
	p.canDoubleJump = false
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.x, p.y, p.width, p.height)
}

// Position returns the top-left corner.
func (p *Player) Position() (float64, float64) {
	return p.x, p.y
}

// Velocity returns the current velocity.
func (p *Player) Velocity() (float64, float64) {
	return p.vx, p.vy
}

// Size returns the player's width and height.
func (p *Player) Size() (float64, float64) {
	return p.width, p.height
}

// OnGround reports whether the player stood on an obstacle after the last update.
func (p *Player) OnGround() bool {
	return p.onGround
}

// CanDoubleJump reports whether a jump is still available in the air.
func (p *Player) CanDoubleJump() bool {
	return p.canDoubleJump
}

// Invincible reports whether the grace period after a lost shield is running.
func (p *Player) Invincible() bool {
	return p.invincible
}

// Visible is false on the off phases of the invincibility blink.
func (p *Player) Visible() bool {
	return p.visible
}

// Freedom returns the number of collected source codes.
func (p *Player) Freedom() int {
	return p.freedom
}

// LibertyShields returns the shields left.
func (p *Player) LibertyShields() int {
	return p.libertyShields
}

// InvincibleTimer returns the ticks spent in the current grace period.
func (p *Player) InvincibleTimer() int {
	return p.invincibleTimer
}
