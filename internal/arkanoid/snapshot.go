package arkanoid

// Snapshot contains the complete world state for determinism checks and
// debug output. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	BallX           int
	BallY           int
	BallSpeedX      int
	BallSpeedY      int
	PlatformX       int
	Score           int
	Lives           int
	Started         bool
	Running         bool
	BlocksRemaining int

	// Block states in row-major order, each block is 2 ints: Destroyed, Health
	BlockData []int

	// RNG state, zero unless the world uses a *SimpleRNG
	RNGState uint64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	blockData := make([]int, len(w.blocks)*2)
	for i, block := range w.blocks {
		if block.Destroyed() {
			blockData[i*2] = 1
		}
		blockData[i*2+1] = block.Health()
	}

	var rngState uint64
	if r, ok := w.rng.(*SimpleRNG); ok {
		rngState = r.State()
	}

	ball := w.ball.Rect()
	return Snapshot{
		Tick:            w.ticks,
		BallX:           ball.X,
		BallY:           ball.Y,
		BallSpeedX:      w.ball.SpeedX,
		BallSpeedY:      w.ball.SpeedY,
		PlatformX:       w.platform.Rect().X,
		Score:           w.score,
		Lives:           w.lives,
		Started:         w.started,
		Running:         w.running,
		BlocksRemaining: w.BlocksRemaining(),
		BlockData:       blockData,
		RNGState:        rngState,
	}
}

// ApplySnapshot restores world state from a snapshot taken from a world
// with the same configuration.
func (w *World) ApplySnapshot(snap Snapshot) {
	w.ticks = snap.Tick
	w.ball.MoveTo(snap.BallX, snap.BallY)
	w.ball.SpeedX = snap.BallSpeedX
	w.ball.SpeedY = snap.BallSpeedY
	w.platform.MoveToX(snap.PlatformX)
	w.score = snap.Score
	w.lives = snap.Lives
	w.started = snap.Started
	w.running = snap.Running

	if len(snap.BlockData) == len(w.blocks)*2 {
		for i := range w.blocks {
			w.blocks[i].destroyed = snap.BlockData[i*2] == 1
			w.blocks[i].health = snap.BlockData[i*2+1]
		}
	}

	if r, ok := w.rng.(*SimpleRNG); ok && snap.RNGState != 0 {
		r.SetState(snap.RNGState)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallSpeedX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallSpeedY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlatformX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Started)
	h = h*31 + boolBit(snap.Running)

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
