// Package config provides YAML/TOML-based game configuration loading and
// validation for the arkanoid game.
package config

// ArkanoidConfig contains all configuration for the Arkanoid game.
// Distances are world pixels, speeds are pixels per tick.
type ArkanoidConfig struct {
	World    ArkanoidWorld    `yaml:"world" toml:"world"`
	Ball     ArkanoidBall     `yaml:"ball" toml:"ball"`
	Platform ArkanoidPlatform `yaml:"platform" toml:"platform"`
	Blocks   ArkanoidBlocks   `yaml:"blocks" toml:"blocks"`
	Gameplay ArkanoidGameplay `yaml:"gameplay" toml:"gameplay"`
}

// ArkanoidWorld defines the play field bounds.
type ArkanoidWorld struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// ArkanoidBall defines ball size and speeds.
type ArkanoidBall struct {
	Size           int `yaml:"size" toml:"size"`
	SpeedX         int `yaml:"speed_x" toml:"speed_x"`                   // Launch horizontal magnitude, sign is random
	SpeedY         int `yaml:"speed_y" toml:"speed_y"`                   // Launch vertical magnitude, always upward
	BounceMinSpeed int `yaml:"bounce_min_speed" toml:"bounce_min_speed"` // Paddle edge bounce, inclusive
	BounceMaxSpeed int `yaml:"bounce_max_speed" toml:"bounce_max_speed"` // Paddle edge bounce, inclusive
	Lift           int `yaml:"lift" toml:"lift"`                         // Gap between the tethered ball and the platform
}

// ArkanoidPlatform defines the player's platform.
type ArkanoidPlatform struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	BottomOffset int `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from the bottom bound to the platform top
}

// ArkanoidBlocks defines the block grid.
type ArkanoidBlocks struct {
	Rows      int `yaml:"rows" toml:"rows"`
	Cols      int `yaml:"cols" toml:"cols"`
	TopOffset int `yaml:"top_offset" toml:"top_offset"`
	Points    int `yaml:"points" toml:"points"` // Awarded per destroyed block
}

// ArkanoidGameplay defines lives.
type ArkanoidGameplay struct {
	Lives int `yaml:"lives" toml:"lives"`
}
