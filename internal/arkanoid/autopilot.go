package arkanoid

// Autopilot steers the platform toward the ball for headless runs.
// It offsets the platform by Skew pixels so the ball lands on an outer
// third, flipping sides every SwitchEvery ticks to sweep the grid.
type Autopilot struct {
	Skew        int
	SwitchEvery uint64
}

// DefaultAutopilot returns an autopilot tuned for the default configuration.
func DefaultAutopilot() Autopilot {
	return Autopilot{Skew: 40, SwitchEvery: 240}
}

// PointerX returns the pointer position the autopilot wants for w.
func (a Autopilot) PointerX(w *World) int {
	target := w.Ball().Rect().CenterX()
	if a.SwitchEvery == 0 || (w.Ticks()/a.SwitchEvery)%2 == 0 {
		return target + a.Skew
	}
	return target - a.Skew
}

// Drive feeds one autopilot step into w: pointer, click if idle, tick.
func (a Autopilot) Drive(w *World) Events {
	w.OnPointerMove(a.PointerX(w))
	if !w.Started() {
		w.OnClick()
	}
	return w.OnTick()
}
