package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gnu-dash/internal/core"
)

// EffectiveHoleMaxWidth returns the widest hole the floor generator may cut:
// hole_max_width capped at half the max jump distance.
func (c DashConfig) EffectiveHoleMaxWidth() int {
	return min(c.Level.HoleMaxWidth, c.Level.MaxJumpDistance/2)
}

// Validate checks the caller contract of the core. All violations are
// reported together.
func (c DashConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	s, ph, p, l, sc := c.Screen, c.Physics, c.Player, c.Level, c.SourceCode

	check(s.Width > 0 && s.Height > 0, "screen: size must be positive, got %dx%d", s.Width, s.Height)

	check(ph.Gravity > 0, "physics.gravity must be positive, got %v", ph.Gravity)
	check(ph.Friction > 0 && ph.Friction <= 1, "physics.friction must be in (0, 1], got %v", ph.Friction)
	check(ph.FrictionFloor >= 0, "physics.friction_floor must not be negative, got %v", ph.FrictionFloor)

	check(p.Width > 0 && p.Height > 0, "player: size must be positive, got %dx%d", p.Width, p.Height)
	check(p.MoveSpeed >= 0, "player.move_speed must not be negative, got %v", p.MoveSpeed)
	check(p.JumpStrength > 0, "player.jump_strength must be positive, got %v", p.JumpStrength)
	check(p.DoubleJumpStrength > 0, "player.double_jump_strength must be positive, got %v", p.DoubleJumpStrength)
	check(p.InitialLibertyShields > 0, "player.initial_liberty_shields must be positive, got %d", p.InitialLibertyShields)
	check(p.InvincibleDuration >= 0, "player.invincible_duration must not be negative, got %d", p.InvincibleDuration)
	check(p.FlashInterval > 0, "player.flash_interval must be positive, got %d", p.FlashInterval)
	check(p.InitialX >= 0 && p.InitialX+p.Width <= s.Width, "player.initial_x %d puts the player off-screen", p.InitialX)

	check(l.ScrollSpeed > 0, "level.scroll_speed must be positive, got %v", l.ScrollSpeed)
	check(l.FloorHeight > 0 && l.FloorHeight < s.Height, "level.floor_height must be in (0, screen.height), got %d", l.FloorHeight)
	check(l.FloorMinWidth > 0 && l.FloorMinWidth <= l.FloorMaxWidth,
		"level: floor width range [%d, %d] is invalid", l.FloorMinWidth, l.FloorMaxWidth)
	check(l.SpawnFloorWidth >= p.InitialX+p.Width,
		"level.spawn_floor_width %d must cover the player spawn (%d)", l.SpawnFloorWidth, p.InitialX+p.Width)
	check(l.HoleChance >= 0 && l.HoleChance < 1, "level.hole_chance must be in [0, 1), got %v", l.HoleChance)
	check(l.MaxJumpDistance >= 4, "level.max_jump_distance must be at least 4, got %d", l.MaxJumpDistance)
	check(l.HoleMinWidth > 0 && l.HoleMinWidth <= c.EffectiveHoleMaxWidth(),
		"level.hole_min_width %d exceeds min(hole_max_width, max_jump_distance/2) = %d", l.HoleMinWidth, c.EffectiveHoleMaxWidth())
	check(l.PlatformChance >= 0 && l.PlatformChance <= 1, "level.platform_chance must be in [0, 1], got %v", l.PlatformChance)
	check(l.MinPlatformHeight >= 0 && l.MinPlatformHeight <= l.MaxPlatformHeight && l.MaxPlatformHeight <= s.Height,
		"level: platform height band [%d, %d] is invalid", l.MinPlatformHeight, l.MaxPlatformHeight)
	check(l.BlockMinWidth > 0 && l.BlockMinWidth <= l.BlockMaxWidth,
		"level: block width range [%d, %d] is invalid", l.BlockMinWidth, l.BlockMaxWidth)
	check(l.BlockMinHeight > 0 && l.BlockMinHeight <= l.BlockMaxHeight,
		"level: block height range [%d, %d] is invalid", l.BlockMinHeight, l.BlockMaxHeight)
	check(l.MinBlocks >= 0, "level.min_blocks must not be negative, got %d", l.MinBlocks)
	check(l.MinSourceCodes >= 0, "level.min_source_codes must not be negative, got %d", l.MinSourceCodes)

	st := l.Stones
	check(st.Chance >= 0 && st.Chance <= 1, "level.stones.chance must be in [0, 1], got %v", st.Chance)
	check(st.MinCount >= 1 && st.MinCount <= st.MaxCount, "level.stones: count range [%d, %d] is invalid", st.MinCount, st.MaxCount)
	check(st.Width > 0 && st.Height > 0, "level.stones: size must be positive, got %dx%d", st.Width, st.Height)
	check(st.Jitter >= 0, "level.stones.jitter must not be negative, got %d", st.Jitter)

	check(sc.Width > 0 && sc.Height > 0, "source_code: size must be positive, got %dx%d", sc.Width, sc.Height)
	check(sc.PlatformChance >= 0 && sc.PlatformChance <= 1, "source_code.platform_chance must be in [0, 1], got %v", sc.PlatformChance)
	check(sc.SpawnOffsetMin >= 0 && sc.SpawnOffsetMin <= sc.SpawnOffsetMax,
		"source_code: spawn offset range [%d, %d] is invalid", sc.SpawnOffsetMin, sc.SpawnOffsetMax)
	check(sc.HoverMin >= 0 && sc.HoverMin <= sc.HoverMax, "source_code: hover range [%d, %d] is invalid", sc.HoverMin, sc.HoverMax)
	check(sc.Margin >= 0 && sc.Margin < s.Height-l.FloorHeight-sc.Margin,
		"source_code.margin %d leaves no vertical band above the floor", sc.Margin)
	check(sc.Clearance >= 0, "source_code.clearance must not be negative, got %d", sc.Clearance)

	for field, name := range map[string]string{
		"player": c.Colors.Player, "floor": c.Colors.Floor, "block": c.Colors.Block,
		"source_code": c.Colors.SourceCode, "text": c.Colors.Text,
	} {
		check(name == "" || core.KnownColor(name), "colors.%s: unknown color %q", field, name)
	}

	check(c.Frontend.KeyHoldTicks > 0, "frontend.key_hold_ticks must be positive, got %d", c.Frontend.KeyHoldTicks)
	check(c.Frontend.JumpHoldTicks >= c.Frontend.KeyHoldTicks,
		"frontend.jump_hold_ticks %d must be at least key_hold_ticks %d", c.Frontend.JumpHoldTicks, c.Frontend.KeyHoldTicks)

	return errors.Join(errs...)
}

// MustValidate panics if the config violates the core contract.
func (c DashConfig) MustValidate(owner string) {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("%s: invalid config: %v", owner, err))
	}
}
