// Package config provides YAML-based game configuration loading, validation
// and hot reloading for GNU Dash.
package config

// DashConfig contains all tunable constants for a GNU Dash run.
// It is loaded once per run and passed by value into the player and level
// generator constructors; nothing reads configuration from globals.
type DashConfig struct {
	Screen     DashScreen     `yaml:"screen"`
	Physics    DashPhysics    `yaml:"physics"`
	Player     DashPlayer     `yaml:"player"`
	Level      DashLevel      `yaml:"level"`
	SourceCode DashSourceCode `yaml:"source_code"`
	Colors     DashColors     `yaml:"colors"`
	Frontend   DashFrontend   `yaml:"frontend"`
}

// DashScreen defines the world size in world units (pixels in the window frontend).
type DashScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DashPhysics defines global motion parameters.
type DashPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	Friction      float64 `yaml:"friction"`       // vx multiplier applied every tick
	FrictionFloor float64 `yaml:"friction_floor"` // |vx| below this snaps to zero
}

// DashPlayer defines the player body.
type DashPlayer struct {
	InitialX              int     `yaml:"initial_x"`
	InitialY              int     `yaml:"initial_y"`
	Width                 int     `yaml:"width"`
	Height                int     `yaml:"height"`
	MoveSpeed             float64 `yaml:"move_speed"`
	JumpStrength          float64 `yaml:"jump_strength"`
	DoubleJumpStrength    float64 `yaml:"double_jump_strength"`
	InitialLibertyShields int     `yaml:"initial_liberty_shields"`
	InvincibleDuration    int     `yaml:"invincible_duration"` // ticks
	FlashInterval         int     `yaml:"flash_interval"`      // ticks between blink toggles
}

// DashLevel defines the procedural level generator.
type DashLevel struct {
	ScrollSpeed       float64    `yaml:"scroll_speed"`
	FloorHeight       int        `yaml:"floor_height"`
	FloorMinWidth     int        `yaml:"floor_min_width"`
	FloorMaxWidth     int        `yaml:"floor_max_width"`
	SpawnFloorWidth   int        `yaml:"spawn_floor_width"` // solid floor under the spawn point
	HoleChance        float64    `yaml:"hole_chance"`
	HoleMinWidth      int        `yaml:"hole_min_width"`
	HoleMaxWidth      int        `yaml:"hole_max_width"`
	PlatformChance    float64    `yaml:"platform_chance"`
	MinPlatformHeight int        `yaml:"min_platform_height"` // smallest platform y
	MaxPlatformHeight int        `yaml:"max_platform_height"` // largest platform y
	BlockMinWidth     int        `yaml:"block_min_width"`
	BlockMaxWidth     int        `yaml:"block_max_width"`
	BlockMinHeight    int        `yaml:"block_min_height"`
	BlockMaxHeight    int        `yaml:"block_max_height"`
	MaxJumpDistance   int        `yaml:"max_jump_distance"`
	MinBlocks         int        `yaml:"min_blocks"`
	MinSourceCodes    int        `yaml:"min_source_codes"`
	Stones            DashStones `yaml:"stones"`
}

// DashStones defines stepping stones placed next to platforms.
type DashStones struct {
	Chance   float64 `yaml:"chance"`
	MinCount int     `yaml:"min_count"`
	MaxCount int     `yaml:"max_count"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Jitter   int     `yaml:"jitter"` // max vertical offset from the platform top
}

// DashSourceCode defines collectibles.
type DashSourceCode struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	PlatformChance float64 `yaml:"platform_chance"`  // chance a new platform gets a collectible
	SpawnOffsetMin int     `yaml:"spawn_offset_min"` // distance past the frontier for free collectibles
	SpawnOffsetMax int     `yaml:"spawn_offset_max"`
	Margin         int     `yaml:"margin"` // vertical safe band margin
	HoverMin       int     `yaml:"hover_min"`
	HoverMax       int     `yaml:"hover_max"`
	Clearance      int     `yaml:"clearance"` // gap above a platform top on fallback placement
}

// DashColors names the color of each element (see core.ParseColor).
type DashColors struct {
	Player     string `yaml:"player"`
	Floor      string `yaml:"floor"`
	Block      string `yaml:"block"`
	SourceCode string `yaml:"source_code"`
	Text       string `yaml:"text"`
}

// DashFrontend holds frontend-only tuning.
type DashFrontend struct {
	// KeyHoldTicks is how long a terminal key press counts as held.
	// Terminals report repeats but no releases.
	KeyHoldTicks int `yaml:"key_hold_ticks"`
	// JumpHoldTicks is how long a fresh jump press counts as held. It must
	// outlast the keyboard repeat delay, or a held key cuts its own jump.
	JumpHoldTicks int `yaml:"jump_hold_ticks"`
}

// Preset represents a named set of constant overrides.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI string to a Preset. Empty or unknown strings
// return "" (keep the config as loaded).
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *DashConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Player.InitialLibertyShields = 5
		cfg.Level.HoleChance = 0.05
		cfg.Level.ScrollSpeed = 2
	case PresetHard:
		cfg.Player.InitialLibertyShields = 2
		cfg.Level.HoleChance = 0.2
		cfg.Level.ScrollSpeed = 4
	}
}
