package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default Arkanoid configuration.
// It matches the embedded defaults/arkanoid.yaml.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		World: ArkanoidWorld{
			Width:  800,
			Height: 600,
		},
		Ball: ArkanoidBall{
			Size:           20,
			SpeedX:         4,
			SpeedY:         7,
			BounceMinSpeed: 3,
			BounceMaxSpeed: 5,
			Lift:           4,
		},
		Platform: ArkanoidPlatform{
			Width:        110,
			Height:       20,
			BottomOffset: 155,
		},
		Blocks: ArkanoidBlocks{
			Rows:      10,
			Cols:      6,
			TopOffset: 50,
			Points:    100,
		},
		Gameplay: ArkanoidGameplay{
			Lives: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultArkanoidYAML
}
