package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	BallChar     = '●'
	BlockChar    = '█'
)

// Minimum terminal size for a readable board.
const (
	minScreenW = 30
	minScreenH = 15
)

// dialog is a pending end-of-round message.
type dialog struct {
	outcome core.Outcome
	score   int
}

// dialogNotifier turns world notifications into a modal dialog.
type dialogNotifier struct {
	g *Game
}

func (n dialogNotifier) Victory(score int) {
	n.g.dialog = &dialog{outcome: core.OutcomeVictory, score: score}
}

func (n dialogNotifier) GameOver(score int) {
	n.g.dialog = &dialog{outcome: core.OutcomeGameOver, score: score}
}

// Game adapts World to the platform: it converts terminal input into world
// signals, holds the modal dialog and pause flag, and renders to a Screen.
type Game struct {
	cfg     config.ArkanoidConfig
	runtime core.RuntimeConfig

	world    *World
	rng      *SimpleRNG
	pointerX int // Last pointer position in world pixels
	paused   bool
	dialog   *dialog

	screenTooSmall bool
}

// New creates a game with the given configuration.
// The configuration is validated on Reset.
func New(cfg config.ArkanoidConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arkanoid"
}

// Reset builds a fresh world. It panics if the configuration is malformed;
// callers validate it at startup.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.world = MustNewWorld(g.cfg, g.rng, dialogNotifier{g: g})
	g.pointerX = g.world.Platform().Rect().CenterX()
	g.paused = false
	g.dialog = nil
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the viewport to a new terminal size without touching the world.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// Step applies the frame's input and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// A pending dialog swallows everything until it is dismissed.
	if g.dialog != nil {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionClick) {
			g.dialog = nil
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.world.Started() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyPointer(in)
	if in.Has(core.ActionClick) || in.Has(core.ActionConfirm) {
		g.world.OnClick()
	}

	ev := g.world.OnTick()
	result := core.StepResult{State: g.State()}
	if ev != 0 {
		result.Events = ev.String()
	}
	return result
}

// applyPointer converts mouse columns and arrow keys into pointer moves.
func (g *Game) applyPointer(in core.InputFrame) {
	moved := false
	if in.PointerMoved {
		g.pointerX = g.view().toWorldX(in.PointerX)
		moved = true
	}

	nudge := g.cfg.Platform.Width / 3
	if in.Has(core.ActionLeft) {
		g.pointerX -= nudge
		moved = true
	}
	if in.Has(core.ActionRight) {
		g.pointerX += nudge
		moved = true
	}

	if moved {
		b := g.world.Bounds()
		g.pointerX = core.Clamp(g.pointerX, b.MinX, b.MaxX)
		g.world.OnPointerMove(g.pointerX)
	}
}

// State returns the current game state. While a dialog is shown the score is
// the final score of the finished round.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Score:   g.world.Score(),
		Lives:   g.world.Lives(),
		Started: g.world.Started(),
		Paused:  g.paused,
	}
	if g.dialog != nil {
		state.Score = g.dialog.score
		state.Outcome = g.dialog.outcome
	}
	return state
}

// viewport maps world pixels to terminal cells.
type viewport struct {
	bounds Bounds
	cols   int
	rows   int
}

func (g *Game) view() viewport {
	return viewport{bounds: g.world.Bounds(), cols: g.runtime.ScreenW, rows: g.runtime.ScreenH}
}

// toWorldX returns the world x at the center of terminal column col.
func (v viewport) toWorldX(col int) int {
	w := v.bounds.Width()
	return v.bounds.MinX + (col*w+w/2)/v.cols
}

// toCells converts a world rectangle to the cells it covers, at least one
// cell in each direction.
func (v viewport) toCells(r core.Rect) core.Rect {
	w, h := v.bounds.Width(), v.bounds.Height()
	x0 := (r.Left() - v.bounds.MinX) * v.cols / w
	x1 := (r.Right() - v.bounds.MinX) * v.cols / w
	y0 := (r.Top() - v.bounds.MinY) * v.rows / h
	y1 := (r.Bottom() - v.bounds.MinY) * v.rows / h
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// toCell returns the cell containing a world point.
func (v viewport) toCell(x, y int) (int, int) {
	return (x - v.bounds.MinX) * v.cols / v.bounds.Width(),
		(y - v.bounds.MinY) * v.rows / v.bounds.Height()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := g.view()
	g.renderBlocks(dst, v)
	g.renderPlatform(dst, v)
	g.renderBall(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderBlocks draws intact blocks, keeping a one-column gutter on the right.
func (g *Game) renderBlocks(dst *core.Screen, v viewport) {
	for _, block := range g.world.blocks {
		if block.Destroyed() {
			continue
		}
		cells := v.toCells(block.Rect())
		if cells.W > 2 {
			cells.W--
		}
		dst.DrawRectColored(cells, BlockChar, core.BlockColor(block.Health()))
	}
}

// renderPlatform draws the player's platform as a single row through its center.
func (g *Game) renderPlatform(dst *core.Screen, v viewport) {
	pr := g.world.Platform().Rect()
	cells := v.toCells(pr)
	_, cells.Y = v.toCell(pr.Center())
	cells.H = 1
	dst.DrawRectColored(cells, PlatformChar, core.ColorPlatform)
}

// renderBall draws the ball at its center cell.
func (g *Game) renderBall(dst *core.Screen, v viewport) {
	cx, cy := v.toCell(g.world.Ball().Rect().Center())
	dst.SetColored(cx, cy, BallChar, core.ColorBall)
}

// renderHUD draws score and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	state := g.State()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", state.Score))
	dst.DrawText(1, 1, fmt.Sprintf("Lives: %d", state.Lives))

	if !state.Started && g.dialog == nil {
		hint := "Click to start"
		dst.DrawTextColored((dst.Width()-core.TextWidth(hint))/2, dst.Height()-1, hint, core.ColorHint)
	}
}

// renderOverlay draws pause and end-of-round dialogs.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.dialog != nil && g.dialog.outcome == core.OutcomeVictory:
		subtitle := fmt.Sprintf("Level cleared! Score: %d  |  Press Enter", g.dialog.score)
		drawCenteredBox(dst, "VICTORY", subtitle, core.ColorBrightGreen)

	case g.dialog != nil:
		subtitle := fmt.Sprintf("Score: %d  |  Press Enter", g.dialog.score)
		drawCenteredBox(dst, "GAME OVER", subtitle, core.ColorBrightRed)

	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	}
}

// drawCenteredBox draws a centered message box with a colored title and border.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	titleW := core.TextWidth(title)
	subtitleW := core.TextWidth(subtitle)

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-titleW)/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-subtitleW)/2, box.Y+3, subtitle)
}
