//go:build ebiten

package app

import (
	"treetop/internal/core"
	"treetop/internal/render"
	"treetop/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxStepsPerFrame caps catch-up after a stall.
const maxStepsPerFrame = 64

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	pacer   *core.Pacer

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, stepsPerSecond int) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.ForestPalette()),
		overlay: ui.NewOverlay(sim),
		pacer:   core.NewPacer(stepsPerSecond),
		scale:   scale,
	}
}

// Reset rewinds the scan to its first line.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
}

// Update handles per-frame input and advances the scan.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	g.overlay.Update()

	// Keep the pacer ticking while paused so resuming does not burst.
	due := stepsThisFrame(g.pacer.Due(maxStepsPerFrame), g.paused, g.tickOnce)
	g.tickOnce = false
	for i := 0; i < due; i++ {
		if !g.sim.Step() {
			break
		}
	}
	return nil
}

// Draw renders the current scan state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.OverlayHeight
}
