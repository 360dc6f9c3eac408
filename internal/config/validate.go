package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration cannot produce a playable board.
var ErrInvalidConfig = errors.New("config: invalid arkanoid configuration")

// Validate checks that the configuration describes a playable board.
// The first violation found is returned wrapped in ErrInvalidConfig.
func (c ArkanoidConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.World.Width > 0, fmt.Sprintf("world.width must be positive, got %d", c.World.Width)},
		{c.World.Height > 0, fmt.Sprintf("world.height must be positive, got %d", c.World.Height)},
		{c.Blocks.Rows > 0, fmt.Sprintf("blocks.rows must be positive, got %d", c.Blocks.Rows)},
		{c.Blocks.Cols > 0, fmt.Sprintf("blocks.cols must be positive, got %d", c.Blocks.Cols)},
		{c.Ball.Size > 0, fmt.Sprintf("ball.size must be positive, got %d", c.Ball.Size)},
		{c.Ball.SpeedY > 0, fmt.Sprintf("ball.speed_y must be positive, got %d", c.Ball.SpeedY)},
		{c.Ball.SpeedX >= 0, fmt.Sprintf("ball.speed_x must not be negative, got %d", c.Ball.SpeedX)},
		{c.Ball.Lift >= 0, fmt.Sprintf("ball.lift must not be negative, got %d", c.Ball.Lift)},
		{c.Ball.BounceMinSpeed > 0, fmt.Sprintf("ball.bounce_min_speed must be positive, got %d", c.Ball.BounceMinSpeed)},
		{c.Ball.BounceMaxSpeed >= c.Ball.BounceMinSpeed, fmt.Sprintf("ball.bounce_max_speed (%d) is below bounce_min_speed (%d)", c.Ball.BounceMaxSpeed, c.Ball.BounceMinSpeed)},
		{c.Platform.Width > 0, fmt.Sprintf("platform.width must be positive, got %d", c.Platform.Width)},
		{c.Platform.Height > 0, fmt.Sprintf("platform.height must be positive, got %d", c.Platform.Height)},
		{c.Blocks.TopOffset >= 0, fmt.Sprintf("blocks.top_offset must not be negative, got %d", c.Blocks.TopOffset)},
		{c.Blocks.Points > 0, fmt.Sprintf("blocks.points must be positive, got %d", c.Blocks.Points)},
		{c.Gameplay.Lives > 0, fmt.Sprintf("gameplay.lives must be positive, got %d", c.Gameplay.Lives)},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.msg)
		}
	}

	// Layout checks depend on the positive values above.
	if c.Platform.Width > c.World.Width {
		return fmt.Errorf("%w: platform.width %d exceeds world.width %d", ErrInvalidConfig, c.Platform.Width, c.World.Width)
	}
	if c.Ball.Size > c.Platform.Width {
		return fmt.Errorf("%w: ball.size %d exceeds platform.width %d", ErrInvalidConfig, c.Ball.Size, c.Platform.Width)
	}

	platformTop := c.World.Height - c.Platform.BottomOffset
	if platformTop < c.Ball.Size+c.Ball.Lift || platformTop+c.Platform.Height > c.World.Height {
		return fmt.Errorf("%w: platform.bottom_offset %d does not fit world.height %d", ErrInvalidConfig, c.Platform.BottomOffset, c.World.Height)
	}

	// Each grid cell shrinks by one pixel per side, so it needs at least 3 pixels.
	cellW := c.World.Width / c.Blocks.Cols
	cellH := (c.World.Height / c.Blocks.Rows) / 2
	if cellW < 3 || cellH < 3 {
		return fmt.Errorf("%w: %dx%d blocks leave %dx%d pixel cells", ErrInvalidConfig, c.Blocks.Cols, c.Blocks.Rows, cellW, cellH)
	}

	return nil
}
