// Package arkanoid implements the single-screen Arkanoid simulation:
// ball kinematics, AABB collision resolution against walls, platform and
// blocks, and the lives/score/victory state machine.
package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Ball is the ball with an integer velocity in pixels per tick.
// Only its position changes after construction.
type Ball struct {
	rect   core.Rect
	SpeedX int // Positive = right
	SpeedY int // Positive = down
}

// NewBall creates a ball at rect with the given velocity.
func NewBall(rect core.Rect, speedX, speedY int) Ball {
	return Ball{rect: rect, SpeedX: speedX, SpeedY: speedY}
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return b.rect
}

// MoveTo moves the ball to (x, y), keeping its size.
func (b *Ball) MoveTo(x, y int) {
	b.rect = b.rect.MoveTo(x, y)
}

// Advance moves the ball by its velocity.
func (b *Ball) Advance() {
	b.MoveTo(b.rect.X+b.SpeedX, b.rect.Y+b.SpeedY)
}

// Platform is the player's paddle. It moves only along X and does not clamp
// itself; the caller keeps it inside the bounds.
type Platform struct {
	rect core.Rect
}

// NewPlatform creates a platform at rect.
func NewPlatform(rect core.Rect) Platform {
	return Platform{rect: rect}
}

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.Rect {
	return p.rect
}

// MoveToX sets the platform's left edge.
func (p *Platform) MoveToX(x int) {
	p.rect = p.rect.MoveTo(x, p.rect.Y)
}

// Block is a destructible block. Destroyed flips to true once health drops
// to zero and never reverts.
type Block struct {
	rect      core.Rect
	health    int
	destroyed bool
}

// NewBlock creates a block with the given health. It panics if health is
// below 1, the same way MustNewWorld rejects a malformed board.
func NewBlock(rect core.Rect, health int) Block {
	if health < 1 {
		panic(fmt.Sprintf("arkanoid: block health %d, need at least 1", health))
	}
	return Block{rect: rect, health: health}
}

// Rect returns the block's bounding box.
func (b Block) Rect() core.Rect {
	return b.rect
}

// Health returns the remaining hit points.
func (b Block) Health() int {
	return b.health
}

// Destroyed reports whether the block has been destroyed.
func (b Block) Destroyed() bool {
	return b.destroyed
}

// Hit deals one point of damage.
func (b *Block) Hit() {
	b.health--
	if b.health <= 0 {
		b.destroyed = true
	}
}
