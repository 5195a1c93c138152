package dash

import (
	"testing"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
)

func testConfig() config.DashConfig {
	return config.DefaultDashConfig()
}

func block(x, y, w, h float64) Obstacle {
	return Obstacle{Rect: core.NewRect(x, y, w, h)}
}

func TestPlayerRestsOnFloor(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	floorTop := float64(cfg.Screen.Height - cfg.Level.FloorHeight)
	floor := []Obstacle{block(0, floorTop, float64(cfg.Screen.Width), float64(cfg.Level.FloorHeight))}

	for range 200 {
		p.Update(cfg.Physics.Gravity, floor)
	}

	want := floorTop - float64(cfg.Player.Height)
	for i := range 60 {
		p.Update(cfg.Physics.Gravity, floor)
		_, y := p.Position()
		if y != want {
			t.Fatalf("tick %d: y = %v, want %v", i, y, want)
		}
		if !p.OnGround() {
			t.Fatalf("tick %d: expected player on ground", i)
		}
		if _, vy := p.Velocity(); vy != 0 {
			t.Fatalf("tick %d: vy = %v, want 0", i, vy)
		}
	}
}

func TestPlayerLandsOnObstacleInOneTick(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	p.x, p.y = 100, 495
	p.vy = 10

	top := 550.0
	p.Update(cfg.Physics.Gravity, []Obstacle{block(0, top, 800, 50)})

	if got := p.Rect().Bottom(); got != top {
		t.Errorf("bottom = %v, want %v", got, top)
	}
	if p.vy != 0 {
		t.Errorf("vy = %v, want 0", p.vy)
	}
	if !p.OnGround() {
		t.Error("expected on ground after landing")
	}
}

func TestPlayerCollisionSides(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name      string
		x, y      float64
		vx, vy    float64
		obstacles []Obstacle
		wantX     float64
		wantY     float64
		wantVX    float64
		wantVY    float64
	}{
		{
			name: "rising into underside",
			x:    100, y: 245, vy: -10,
			obstacles: []Obstacle{block(50, 200, 200, 40)},
			wantX:     100, wantY: 240, wantVY: 0,
		},
		{
			name: "moving right into left face",
			x:    168, y: 450, vx: 5,
			obstacles: []Obstacle{block(200, 400, 60, 200)},
			wantX:     170, wantY: 450.8, wantVX: 0, wantVY: 0.8,
		},
		{
			name: "moving left into right face",
			x:    262, y: 450, vx: -5,
			obstacles: []Obstacle{block(200, 400, 60, 200)},
			wantX:     260, wantY: 450.8, wantVX: 0, wantVY: 0.8,
		},
		{
			// Top rule wins over the left-face rule.
			name: "diagonal onto corner",
			x:    165, y: 345, vx: 10, vy: 10,
			obstacles: []Obstacle{block(200, 400, 60, 200)},
			wantX:     175, wantY: 350, wantVX: 9, wantVY: 0,
		},
		{
			name: "residual overlap is left alone",
			x:    100, y: 100,
			obstacles: []Obstacle{block(0, 0, 400, 400)},
			wantX:     100, wantY: 100.8, wantVY: 0.8,
		},
		{
			// Landing on the lower top first zeroes vy, so the higher
			// block no longer matches the top rule and stays overlapped.
			name: "lower top first leaves higher block overlapped",
			x:    100, y: 345, vy: 10,
			obstacles: []Obstacle{block(0, 400, 200, 200), block(50, 398, 100, 20)},
			wantX:     100, wantY: 350,
		},
		{
			name: "higher top first clears lower block",
			x:    100, y: 345, vy: 10,
			obstacles: []Obstacle{block(50, 398, 100, 20), block(0, 400, 200, 200)},
			wantX:     100, wantY: 348,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg)
			p.x, p.y, p.vx, p.vy = tt.x, tt.y, tt.vx, tt.vy
			p.Update(cfg.Physics.Gravity, tt.obstacles)

			if !approx(p.x, tt.wantX) || !approx(p.y, tt.wantY) {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.x, p.y, tt.wantX, tt.wantY)
			}
			if !approx(p.vx, tt.wantVX) || !approx(p.vy, tt.wantVY) {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", p.vx, p.vy, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestPlayerDoubleJump(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	p.onGround = true

	p.StartJump()
	if p.vy != -cfg.Player.JumpStrength || !p.CanDoubleJump() || p.OnGround() {
		t.Fatalf("first jump: vy=%v canDouble=%v onGround=%v", p.vy, p.CanDoubleJump(), p.OnGround())
	}

	p.StartJump()
	if p.vy != -cfg.Player.DoubleJumpStrength || p.CanDoubleJump() {
		t.Fatalf("double jump: vy=%v canDouble=%v", p.vy, p.CanDoubleJump())
	}

	p.StartJump()
	if p.vy != -cfg.Player.DoubleJumpStrength {
		t.Errorf("third jump should be a no-op, vy=%v", p.vy)
	}
}

func TestPlayerEndJump(t *testing.T) {
	p := NewPlayer(testConfig())

	p.vy = -15
	p.EndJump()
	if p.vy != -7.5 {
		t.Errorf("EndJump while rising: vy = %v, want -7.5", p.vy)
	}

	p.vy = 4
	p.EndJump()
	if p.vy != 4 {
		t.Errorf("EndJump while falling should not change vy, got %v", p.vy)
	}
}

func TestPlayerHorizontalIntentAndFriction(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)

	p.SetHorizontalIntent(1)
	if p.vx != 0 {
		t.Fatalf("intent must not change velocity before Update, vx=%v", p.vx)
	}
	p.Update(cfg.Physics.Gravity, nil)
	if !approx(p.vx, cfg.Player.MoveSpeed*cfg.Physics.Friction) {
		t.Errorf("vx after one tick = %v, want %v", p.vx, cfg.Player.MoveSpeed*cfg.Physics.Friction)
	}

	p.SetHorizontalIntent(0)
	for range 100 {
		p.Update(cfg.Physics.Gravity, nil)
	}
	if p.vx != 0 {
		t.Errorf("vx should decay to exactly 0, got %v", p.vx)
	}

	p.SetHorizontalIntent(-7)
	p.Update(cfg.Physics.Gravity, nil)
	if !approx(p.vx, -cfg.Player.MoveSpeed*cfg.Physics.Friction) {
		t.Errorf("intent should clamp to -1, vx=%v", p.vx)
	}
}

func TestPlayerLoseShieldInvincibility(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	start := p.LibertyShields()

	if !p.LoseShield() {
		t.Fatal("first LoseShield should take effect")
	}
	if p.LoseShield() {
		t.Fatal("second LoseShield while invincible should be ignored")
	}
	if p.LibertyShields() != start-1 {
		t.Fatalf("shields = %d, want %d", p.LibertyShields(), start-1)
	}

	for range cfg.Player.InvincibleDuration - 1 {
		p.Update(cfg.Physics.Gravity, nil)
	}
	if p.LoseShield() {
		t.Fatal("shield lost before invincibility expired")
	}

	p.Update(cfg.Physics.Gravity, nil)
	if p.Invincible() {
		t.Fatal("invincibility should expire after invincible_duration ticks")
	}
	if !p.LoseShield() {
		t.Fatal("LoseShield after expiry should take effect")
	}
	if p.LibertyShields() != start-2 {
		t.Errorf("shields = %d, want %d", p.LibertyShields(), start-2)
	}
}

func TestPlayerBlink(t *testing.T) {
	cfg := testConfig()
	cfg.Player.InvincibleDuration = 25
	cfg.Player.FlashInterval = 10
	p := NewPlayer(cfg)
	p.LoseShield()

	var seen []bool
	for range 25 {
		p.Update(cfg.Physics.Gravity, nil)
		seen = append(seen, p.Visible())
	}

	if seen[8] != true || seen[9] != false || seen[19] != true {
		t.Errorf("unexpected blink sequence: tick10=%v tick20=%v", seen[9], seen[19])
	}
	if !p.Visible() || p.Invincible() {
		t.Error("player should be visible and vulnerable after invincibility ends")
	}
}

func TestPlayerTeleport(t *testing.T) {
	p := NewPlayer(testConfig())
	p.vx, p.vy = 3, 9
	p.onGround, p.canDoubleJump = true, true

	p.Teleport(100, 40)

	if x, y := p.Position(); x != 100 || y != 40 {
		t.Errorf("position = (%v, %v), want (100, 40)", x, y)
	}
	if vx, vy := p.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("velocity = (%v, %v), want zero", vx, vy)
	}
	if p.OnGround() || p.CanDoubleJump() {
		t.Error("teleport should clear jump state")
	}
}

func TestNewPlayerPanicsOnInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Level.HoleMinWidth = 500

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid config")
		}
	}()
	NewPlayer(cfg)
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
