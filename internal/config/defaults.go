package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the hardcoded default configuration.
// It mirrors defaults/dash.yaml and is the last fallback of Load.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Screen: DashScreen{
			Width:  800,
			Height: 600,
		},
		Physics: DashPhysics{
			Gravity:       0.8,
			Friction:      0.9,
			FrictionFloor: 0.1,
		},
		Player: DashPlayer{
			InitialX:              100,
			InitialY:              300,
			Width:                 30,
			Height:                50,
			MoveSpeed:             5,
			JumpStrength:          15,
			DoubleJumpStrength:    12,
			InitialLibertyShields: 3,
			InvincibleDuration:    120,
			FlashInterval:         10,
		},
		Level: DashLevel{
			ScrollSpeed:       3,
			FloorHeight:       50,
			FloorMinWidth:     100,
			FloorMaxWidth:     300,
			SpawnFloorWidth:   300,
			HoleChance:        0.1,
			HoleMinWidth:      50,
			HoleMaxWidth:      150,
			PlatformChance:    0.3,
			MinPlatformHeight: 250,
			MaxPlatformHeight: 450,
			BlockMinWidth:     60,
			BlockMaxWidth:     180,
			BlockMinHeight:    20,
			BlockMaxHeight:    40,
			MaxJumpDistance:   200,
			MinBlocks:         3,
			MinSourceCodes:    3,
			Stones: DashStones{
				Chance:   0.6,
				MinCount: 2,
				MaxCount: 4,
				Width:    30,
				Height:   10,
				Jitter:   30,
			},
		},
		SourceCode: DashSourceCode{
			Width:          20,
			Height:         20,
			PlatformChance: 0.5,
			SpawnOffsetMin: 50,
			SpawnOffsetMax: 100,
			Margin:         50,
			HoverMin:       50,
			HoverMax:       100,
			Clearance:      10,
		},
		Colors: DashColors{
			Player:     "bright_cyan",
			Floor:      "green",
			Block:      "gray",
			SourceCode: "bright_yellow",
			Text:       "bright_white",
		},
		Frontend: DashFrontend{
			KeyHoldTicks:  8,
			JumpHoldTicks: 40,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDashYAML
}
