package arkanoid

// Rand is the random source used for launch direction and platform bounces.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Its state is a single word so snapshots can capture and restore it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	// 64-bit LCG (Knuth MMIX constants)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// IntN returns a random int in [0, n).
func (r *SimpleRNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// SetState restores a state previously returned by State.
func (r *SimpleRNG) SetState(state uint64) {
	r.state = state
}

// randRange returns a value in [lo, hi], both inclusive.
func randRange(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
