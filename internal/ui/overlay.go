//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"treetop/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// OverlayHeight is the height of the status strip below the grid.
const OverlayHeight = 20

// Overlay draws a status line under the grid. H toggles it.
type Overlay struct {
	sim    core.Sim
	hidden bool
	bg     color.Color
	fg     color.Color
}

// NewOverlay constructs an overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{
		sim: sim,
		bg:  color.RGBA{R: 0x10, G: 0x14, B: 0x10, A: 0xff},
		fg:  color.White,
	}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status strip along the bottom of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	b := screen.Bounds()
	top := b.Max.Y - OverlayHeight
	strip := screen.SubImage(image.Rect(b.Min.X, top, b.Max.X, b.Max.Y)).(*ebiten.Image)
	strip.Fill(o.bg)

	line := o.sim.Name()
	if r, ok := o.sim.(core.Reporter); ok {
		line = r.Status()
	}
	text.Draw(screen, line, basicfont.Face7x13, b.Min.X+4, top+14, o.fg)
}
