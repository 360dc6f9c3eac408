package arkanoid

import (
	"errors"
	"strings"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Bounds is the play field in world pixels. MaxY is the loss line: a ball
// whose top edge passes below it is lost.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY
}

// Phase is the coarse simulation state.
type Phase int

const (
	PhaseIdle    Phase = iota // Ball tethered to the platform, waiting for a click
	PhaseRunning              // Tick driver active
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Events is a set of things that happened during one tick.
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPlatformBounce
	EventBlockHit
	EventBlockDestroyed
	EventLifeLost
	EventVictory
	EventGameOver
)

// Has reports whether all events in f are set.
func (e Events) Has(f Events) bool {
	return e&f == f
}

var eventNames = []struct {
	ev   Events
	name string
}{
	{EventWallBounce, "wall"},
	{EventPlatformBounce, "platform"},
	{EventBlockHit, "hit"},
	{EventBlockDestroyed, "destroyed"},
	{EventLifeLost, "life_lost"},
	{EventVictory, "victory"},
	{EventGameOver, "game_over"},
}

// String returns the set events joined by '|', or "none".
func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if e.Has(n.ev) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Notifier receives end-of-round notifications. Calls happen synchronously
// inside OnTick, before the world performs its hard reset.
type Notifier interface {
	Victory(score int)
	GameOver(score int)
}

type nopNotifier struct{}

func (nopNotifier) Victory(int)  {}
func (nopNotifier) GameOver(int) {}

// World owns the ball, the platform, the blocks and the round state.
// It is not safe for concurrent use: tick, pointer and click signals must be
// delivered from a single goroutine.
type World struct {
	cfg    config.ArkanoidConfig
	bounds Bounds
	rng    Rand
	notify Notifier

	ball     Ball
	platform Platform
	blocks   []Block

	lives   int
	score   int
	started bool   // Ball launched (false = tethered to the platform)
	running bool   // Tick driver active
	ticks   uint64 // Ticks simulated since the last hard reset
}

// NewWorld validates cfg and creates a world in the idle phase.
// A nil notifier discards notifications.
func NewWorld(cfg config.ArkanoidConfig, rng Rand, n Notifier) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("arkanoid: nil random source")
	}
	if n == nil {
		n = nopNotifier{}
	}

	w := &World{
		cfg: cfg,
		bounds: Bounds{
			MinX: 0,
			MaxX: cfg.World.Width,
			MinY: 0,
			MaxY: cfg.World.Height,
		},
		rng:    rng,
		notify: n,
	}
	w.reset(true)
	return w, nil
}

// MustNewWorld is like NewWorld but panics on a malformed configuration.
func MustNewWorld(cfg config.ArkanoidConfig, rng Rand, n Notifier) *World {
	w, err := NewWorld(cfg, rng, n)
	if err != nil {
		panic(err)
	}
	return w
}

// reset repositions the platform and the ball. A hard reset also restores
// lives and score, rebuilds the block grid and returns to the idle phase.
func (w *World) reset(hard bool) {
	pw := w.cfg.Platform.Width
	platformX := w.bounds.MinX + (w.bounds.Width()-pw)/2
	platformY := w.bounds.MaxY - w.cfg.Platform.BottomOffset
	w.platform = NewPlatform(core.NewRect(platformX, platformY, pw, w.cfg.Platform.Height))

	size := w.cfg.Ball.Size
	ballX := platformX + (pw-size)/2
	ballY := platformY - size - w.cfg.Ball.Lift

	speedX := w.cfg.Ball.SpeedX
	if w.rng.IntN(2) == 0 {
		speedX = -speedX
	}
	w.ball = NewBall(core.NewRect(ballX, ballY, size, size), speedX, -w.cfg.Ball.SpeedY)

	if hard {
		w.lives = w.cfg.Gameplay.Lives
		w.score = 0
		w.blocks = BuildBlocks(w.bounds, w.cfg.Blocks)
		w.started = false
		w.running = false
		w.ticks = 0
	}
}

// OnPointerMove centers the platform on pointer x, clamped to the bounds.
// Before launch the ball follows the platform.
func (w *World) OnPointerMove(x int) {
	pr := w.platform.Rect()
	w.platform.MoveToX(core.Clamp(x-pr.W/2, w.bounds.MinX, w.bounds.MaxX-pr.W))

	if !w.started {
		br := w.ball.Rect()
		pr = w.platform.Rect()
		ballX := pr.X + (pr.W-br.W)/2
		w.ball.MoveTo(core.Clamp(ballX, w.bounds.MinX, w.bounds.MaxX-br.W), br.Y)
	}
}

// OnClick launches the ball if it is still waiting on the platform.
func (w *World) OnClick() {
	if !w.started {
		w.started = true
		w.running = true
	}
}

// OnTick advances the simulation by one step. It is a no-op while idle.
// The order of the steps is fixed: later steps see earlier mutations.
func (w *World) OnTick() Events {
	if !w.running {
		return 0
	}
	w.ticks++

	var ev Events
	w.ball.Advance()
	if w.handleWallCollisions() {
		ev |= EventWallBounce
	}
	if w.handlePlatformCollision() {
		ev |= EventPlatformBounce
	}
	ev |= w.handleBlockCollisions()

	if w.allBlocksDestroyed() {
		w.running = false
		w.notify.Victory(w.score)
		w.reset(true)
		return ev | EventVictory
	}

	if w.ball.Rect().Top() > w.bounds.MaxY {
		w.running = false
		w.lives--
		ev |= EventLifeLost

		if w.lives <= 0 {
			w.notify.GameOver(w.score)
			w.reset(true)
			return ev | EventGameOver
		}

		// Respawn on the platform and keep playing without a click.
		w.reset(false)
		w.started = true
		w.running = true
	}

	return ev
}

// handleWallCollisions bounces the ball off the side walls and the ceiling.
// The bottom is open.
func (w *World) handleWallCollisions() bool {
	r := w.ball.Rect()
	bounced := false

	if r.Left() <= w.bounds.MinX || r.Right() >= w.bounds.MaxX {
		w.ball.SpeedX = -w.ball.SpeedX
		bounced = true
	}
	if r.Top() <= w.bounds.MinY {
		w.ball.SpeedY = -w.ball.SpeedY
		bounced = true
	}
	return bounced
}

// handlePlatformCollision bounces a descending ball off the platform.
// The platform is split in thirds: the outer thirds send the ball sideways at
// a random speed, the middle third sends it straight up.
func (w *World) handlePlatformCollision() bool {
	br := w.ball.Rect()
	pr := w.platform.Rect()
	if !br.Intersects(pr) || w.ball.SpeedY <= 0 {
		return false
	}

	relativeX := br.CenterX() - pr.Left()
	segment := pr.W / 3
	minSpeed, maxSpeed := w.cfg.Ball.BounceMinSpeed, w.cfg.Ball.BounceMaxSpeed

	switch {
	case relativeX < segment:
		w.ball.SpeedX = -randRange(w.rng, minSpeed, maxSpeed)
	case relativeX < 2*segment:
		w.ball.SpeedX = 0
	default:
		w.ball.SpeedX = randRange(w.rng, minSpeed, maxSpeed)
	}
	w.ball.SpeedY = -core.Abs(w.ball.SpeedY)

	// Lift the ball clear of the platform so the next tick does not re-trigger.
	w.ball.MoveTo(br.X, pr.Top()-br.H-1)
	return true
}

// handleBlockCollisions resolves at most one block per tick: the first
// intact block in row-major order that the ball overlaps.
func (w *World) handleBlockCollisions() Events {
	br := w.ball.Rect()

	for i := range w.blocks {
		block := &w.blocks[i]
		if block.Destroyed() || !br.Intersects(block.Rect()) {
			continue
		}

		// Shallow horizontal penetration means the ball came in from a side.
		overlap := br.Overlap(block.Rect())
		if overlap.W < overlap.H {
			w.ball.SpeedX = -w.ball.SpeedX
		} else {
			w.ball.SpeedY = -w.ball.SpeedY
		}

		block.Hit()
		if block.Destroyed() {
			w.score += w.cfg.Blocks.Points
			return EventBlockHit | EventBlockDestroyed
		}
		return EventBlockHit
	}
	return 0
}

// allBlocksDestroyed checks the destroyed flag of every block.
func (w *World) allBlocksDestroyed() bool {
	for i := range w.blocks {
		if !w.blocks[i].Destroyed() {
			return false
		}
	}
	return true
}

// Ball returns a copy of the ball.
func (w *World) Ball() Ball {
	return w.ball
}

// Platform returns a copy of the platform.
func (w *World) Platform() Platform {
	return w.platform
}

// Blocks returns a copy of the blocks in row-major order.
func (w *World) Blocks() []Block {
	blocks := make([]Block, len(w.blocks))
	copy(blocks, w.blocks)
	return blocks
}

// BlocksRemaining returns the number of blocks not yet destroyed.
func (w *World) BlocksRemaining() int {
	n := 0
	for i := range w.blocks {
		if !w.blocks[i].Destroyed() {
			n++
		}
	}
	return n
}

// Lives returns the remaining lives.
func (w *World) Lives() int {
	return w.lives
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Started reports whether the ball has been launched.
func (w *World) Started() bool {
	return w.started
}

// Phase returns the current phase.
func (w *World) Phase() Phase {
	if w.running {
		return PhaseRunning
	}
	return PhaseIdle
}

// Bounds returns the play field bounds.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// Ticks returns the number of ticks simulated since the last hard reset.
func (w *World) Ticks() uint64 {
	return w.ticks
}
