package arkanoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// fixedRand always returns v modulo n.
type fixedRand struct{ v int }

func (r fixedRand) IntN(n int) int { return r.v % n }

// recorder captures notifications.
type recorder struct {
	victories []int
	gameOvers []int
}

func (r *recorder) Victory(score int)  { r.victories = append(r.victories, score) }
func (r *recorder) GameOver(score int) { r.gameOvers = append(r.gameOvers, score) }

func newTestWorld(t *testing.T, rng Rand) (*World, *recorder) {
	t.Helper()
	rec := &recorder{}
	w, err := NewWorld(config.DefaultArkanoidConfig(), rng, rec)
	require.NoError(t, err)
	return w, rec
}

// place puts the ball at (x, y) with the given velocity and starts the round.
func place(w *World, x, y, speedX, speedY int) {
	w.ball = NewBall(core.NewRect(x, y, w.cfg.Ball.Size, w.cfg.Ball.Size), speedX, speedY)
	w.started = true
	w.running = true
}

func TestNewWorldInitialState(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})

	assert.Equal(t, 3, w.Lives())
	assert.Equal(t, 0, w.Score())
	assert.False(t, w.Started())
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Equal(t, 60, w.BlocksRemaining())

	pr := w.Platform().Rect()
	assert.Equal(t, core.NewRect(345, 445, 110, 20), pr)

	ball := w.Ball()
	assert.Equal(t, core.NewRect(390, 421, 20, 20), ball.Rect())
	assert.Equal(t, -7, ball.SpeedY)
}

func TestLaunchDirectionFromRand(t *testing.T) {
	left, _ := newTestWorld(t, fixedRand{0})
	assert.Equal(t, -4, left.Ball().SpeedX)

	right, _ := newTestWorld(t, fixedRand{1})
	assert.Equal(t, 4, right.Ball().SpeedX)
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	cfg.Blocks.Rows = 0

	_, err := NewWorld(cfg, fixedRand{0}, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	assert.Panics(t, func() { MustNewWorld(cfg, fixedRand{0}, nil) })

	_, err = NewWorld(config.DefaultArkanoidConfig(), nil, nil)
	assert.Error(t, err)
}

func TestTickIsNoOpWhileIdle(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})
	before := w.Ball()

	assert.Equal(t, Events(0), w.OnTick())
	assert.Equal(t, before, w.Ball())
	assert.Equal(t, uint64(0), w.Ticks())
}

func TestClickStartsRound(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})
	w.OnClick()

	assert.True(t, w.Started())
	assert.Equal(t, PhaseRunning, w.Phase())

	w.OnTick()
	assert.Equal(t, core.NewRect(386, 414, 20, 20), w.Ball().Rect())
}

func TestPointerMoveTethersBallBeforeLaunch(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})

	w.OnPointerMove(100)
	assert.Equal(t, 45, w.Platform().Rect().X)
	assert.Equal(t, 90, w.Ball().Rect().X)
	assert.Equal(t, 421, w.Ball().Rect().Y)

	w.OnPointerMove(-50)
	assert.Equal(t, 0, w.Platform().Rect().X)
	assert.Equal(t, 45, w.Ball().Rect().X)

	w.OnPointerMove(5000)
	assert.Equal(t, 690, w.Platform().Rect().X)
	assert.Equal(t, 735, w.Ball().Rect().X)

	w.OnClick()
	w.OnPointerMove(400)
	assert.Equal(t, 345, w.Platform().Rect().X)
	assert.Equal(t, 735, w.Ball().Rect().X, "launched ball should not follow the platform")
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		speedX       int
		speedY       int
		wantX, wantY int
	}{
		{"left wall", 2, 400, -4, -7, 4, -7},
		{"right wall", 778, 400, 4, -7, -4, -7},
		{"ceiling", 400, 3, 0, -7, 0, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, fixedRand{0})
			for i := range w.blocks {
				w.blocks[i].destroyed = true
			}
			w.blocks[len(w.blocks)-1].destroyed = false // keep the round alive
			place(w, tc.x, tc.y, tc.speedX, tc.speedY)

			ev := w.OnTick()
			assert.True(t, ev.Has(EventWallBounce))
			assert.Equal(t, tc.wantX, w.Ball().SpeedX)
			assert.Equal(t, tc.wantY, w.Ball().SpeedY)
		})
	}
}

func TestWallBoundaries(t *testing.T) {
	// Positions are before the tick; the ball moves by its speed first.
	tests := []struct {
		name           string
		x, y           int
		speedX, speedY int
		wantBounce     bool
		wantSX, wantSY int
	}{
		{"left edge at minX", 4, 400, -4, -7, true, 4, -7},
		{"left edge one inside", 5, 400, -4, -7, false, -4, -7},
		{"right edge at maxX", 776, 400, 4, -7, true, -4, -7},
		{"right edge one inside", 775, 400, 4, -7, false, 4, -7},
		{"top at minY", 400, 7, 0, -7, true, 0, 7},
		{"top one inside", 400, 8, 0, -7, false, 0, -7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, fixedRand{0})
			for i := range w.blocks {
				w.blocks[i].destroyed = true
			}
			w.blocks[len(w.blocks)-1].destroyed = false
			place(w, tc.x, tc.y, tc.speedX, tc.speedY)

			ev := w.OnTick()
			assert.Equal(t, tc.wantBounce, ev.Has(EventWallBounce))
			assert.Equal(t, tc.wantSX, w.Ball().SpeedX)
			assert.Equal(t, tc.wantSY, w.Ball().SpeedY)
		})
	}
}

func TestBallLossLine(t *testing.T) {
	tests := []struct {
		name     string
		y        int
		wantLoss bool
	}{
		{"top on maxY", 593, false},
		{"top one past maxY", 594, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, fixedRand{0})
			place(w, 100, tc.y, 0, 7)

			ev := w.OnTick()
			assert.Equal(t, tc.wantLoss, ev.Has(EventLifeLost))
			if tc.wantLoss {
				assert.Equal(t, 2, w.Lives())
				return
			}
			assert.Equal(t, 3, w.Lives())
			assert.Equal(t, 600, w.Ball().Rect().Top(), "the bottom does not bounce")
			assert.Equal(t, 7, w.Ball().SpeedY)
		})
	}
}

func TestPlatformSegmentBoundaries(t *testing.T) {
	// Platform spans x 345..455, so each segment is 36 px wide.
	// The ball center is ballX+10, so relativeX = ballX - 335.
	tests := []struct {
		name      string
		relativeX int
		wantSX    int
	}{
		{"center left of platform", -9, -3},
		{"last pixel of left segment", 35, -3},
		{"first pixel of middle segment", 36, 0},
		{"last pixel of middle segment", 71, 0},
		{"first pixel of right segment", 72, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, fixedRand{0})
			place(w, 335+tc.relativeX, 420, 0, 7)

			ev := w.OnTick()
			require.True(t, ev.Has(EventPlatformBounce))
			assert.Equal(t, tc.wantSX, w.Ball().SpeedX)
			assert.Equal(t, -7, w.Ball().SpeedY)
		})
	}
}

func TestPlatformContact(t *testing.T) {
	tests := []struct {
		name       string
		y, speedY  int
		wantBounce bool
		wantY      int
		wantSY     int
	}{
		{"overlapping with no vertical speed", 430, 0, false, 430, 0},
		{"bottom touching top edge", 424, 1, false, 425, 1},
		{"one pixel of overlap", 425, 1, true, 424, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, fixedRand{0})
			place(w, 390, tc.y, 0, tc.speedY)

			ev := w.OnTick()
			assert.Equal(t, tc.wantBounce, ev.Has(EventPlatformBounce))
			assert.Equal(t, tc.wantY, w.Ball().Rect().Y)
			assert.Equal(t, tc.wantSY, w.Ball().SpeedY)
		})
	}
}

func TestPlatformBounceThirds(t *testing.T) {
	tests := []struct {
		name   string
		rand   int
		ballX  int
		wantSX int
	}{
		{"left third slowest", 0, 345, -3},
		{"left third fastest", 2, 345, -5},
		{"middle third", 1, 390, 0},
		{"right third slowest", 0, 430, 3},
		{"right third fastest", 2, 430, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, fixedRand{tc.rand})
			place(w, tc.ballX, 420, 0, 7)

			ev := w.OnTick()
			require.True(t, ev.Has(EventPlatformBounce))

			ball := w.Ball()
			assert.Equal(t, tc.wantSX, ball.SpeedX)
			assert.Equal(t, -7, ball.SpeedY)
			assert.Equal(t, 445-20-1, ball.Rect().Y, "ball should be lifted clear of the platform")
			assert.False(t, ball.Rect().Intersects(w.Platform().Rect()))
		})
	}
}

func TestPlatformIgnoresAscendingBall(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})
	place(w, 390, 440, 0, -7)

	ev := w.OnTick()
	assert.False(t, ev.Has(EventPlatformBounce))
	assert.Equal(t, -7, w.Ball().SpeedY)
	assert.Equal(t, 433, w.Ball().Rect().Y)
}

func TestBlockHitFromBelow(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})
	place(w, 50, 82, 0, -7)

	ev := w.OnTick()
	assert.True(t, ev.Has(EventBlockHit|EventBlockDestroyed))
	assert.Equal(t, 7, w.Ball().SpeedY)
	assert.Equal(t, 100, w.Score())

	blocks := w.Blocks()
	assert.True(t, blocks[0].Destroyed())
	assert.False(t, blocks[6].Destroyed(), "only one block resolves per tick")
	assert.Equal(t, 59, w.BlocksRemaining())
}

func TestBlockHitFromSide(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})
	// Row 5: the ball enters column 1 from its left edge.
	w.blocks[5*6].destroyed = true
	place(w, 110, 205, 7, 0)

	ev := w.OnTick()
	assert.True(t, ev.Has(EventBlockDestroyed))
	assert.Equal(t, -7, w.Ball().SpeedX)
	assert.Equal(t, 0, w.Ball().SpeedY)
	assert.True(t, w.Blocks()[5*6+1].Destroyed())
}

func TestDurableBlockNeedsTwoHits(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})
	// Row 9 column 0 spans y 321..349.
	idx := 9 * 6
	require.Equal(t, 2, w.blocks[idx].Health())

	place(w, 50, 352, 0, -7)
	ev := w.OnTick()
	assert.True(t, ev.Has(EventBlockHit))
	assert.False(t, ev.Has(EventBlockDestroyed))
	assert.Equal(t, 1, w.Blocks()[idx].Health())
	assert.Equal(t, 0, w.Score())

	place(w, 50, 352, 0, -7)
	ev = w.OnTick()
	assert.True(t, ev.Has(EventBlockDestroyed))
	assert.True(t, w.Blocks()[idx].Destroyed())
	assert.Equal(t, 100, w.Score())
}

func TestBallLossRespawnsWithoutClick(t *testing.T) {
	w, rec := newTestWorld(t, fixedRand{0})
	place(w, 100, 600, 0, 7)

	ev := w.OnTick()
	assert.True(t, ev.Has(EventLifeLost))
	assert.False(t, ev.Has(EventGameOver))
	assert.Equal(t, 2, w.Lives())
	assert.True(t, w.Started())
	assert.Equal(t, PhaseRunning, w.Phase())
	assert.Equal(t, core.NewRect(390, 421, 20, 20), w.Ball().Rect())
	assert.Empty(t, rec.gameOvers)
}

func TestGameOverAfterLastLife(t *testing.T) {
	w, rec := newTestWorld(t, fixedRand{0})
	w.blocks[0].destroyed = true
	w.score = 100

	for i := 0; i < 3; i++ {
		place(w, 100, 600, 0, 7)
		ev := w.OnTick()
		require.True(t, ev.Has(EventLifeLost), "loss %d", i+1)
	}

	require.Equal(t, []int{100}, rec.gameOvers)
	assert.Empty(t, rec.victories)

	// Hard reset
	assert.Equal(t, 3, w.Lives())
	assert.Equal(t, 0, w.Score())
	assert.False(t, w.Started())
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Equal(t, 60, w.BlocksRemaining())
	assert.Equal(t, uint64(0), w.Ticks())
}

func TestVictoryWhenLastBlockDestroyed(t *testing.T) {
	w, rec := newTestWorld(t, fixedRand{0})
	for i := 1; i < len(w.blocks); i++ {
		w.blocks[i].destroyed = true
	}
	w.score = 5900
	place(w, 50, 82, 0, -7)

	ev := w.OnTick()
	assert.True(t, ev.Has(EventVictory))
	require.Equal(t, []int{6000}, rec.victories)
	assert.Empty(t, rec.gameOvers)

	assert.Equal(t, 0, w.Score())
	assert.Equal(t, 60, w.BlocksRemaining())
	assert.Equal(t, PhaseIdle, w.Phase())
}

func TestVictoryTakesPrecedenceOverBallLoss(t *testing.T) {
	w, rec := newTestWorld(t, fixedRand{0})
	for i := range w.blocks {
		w.blocks[i].destroyed = true
	}
	place(w, 100, 600, 0, 7)

	ev := w.OnTick()
	assert.True(t, ev.Has(EventVictory))
	assert.False(t, ev.Has(EventLifeLost))
	assert.Len(t, rec.victories, 1)
	assert.Equal(t, 3, w.Lives())
}

func TestNilNotifierIsAllowed(t *testing.T) {
	w, err := NewWorld(config.DefaultArkanoidConfig(), fixedRand{0}, nil)
	require.NoError(t, err)

	for _i := 0; _i < 3; _i++ {
		place(w, 100, 600, 0, 7)
		w.OnTick()
	}
	assert.Equal(t, PhaseIdle, w.Phase())
}

func TestBlocksReturnsCopy(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{0})
	blocks := w.Blocks()
	blocks[0].Hit()

	assert.False(t, w.Blocks()[0].Destroyed())
}

func TestEventsString(t *testing.T) {
	assert.Equal(t, "none", Events(0).String())
	assert.Equal(t, "wall", EventWallBounce.String())
	assert.Equal(t, "hit|destroyed|victory", (EventVictory | EventBlockHit | EventBlockDestroyed).String())
}

func TestCenterHitGoesStraightUp(t *testing.T) {
	w, _ := newTestWorld(t, fixedRand{2})
	place(w, 390, 430, 4, 5)

	ev := w.OnTick()
	require.True(t, ev.Has(EventPlatformBounce))
	assert.Equal(t, 0, w.Ball().SpeedX)
	assert.Equal(t, -5, w.Ball().SpeedY, "bounce keeps the incoming vertical speed")
}
