//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const flashDuration = 3 * time.Second

// Overlay draws the key help and short status messages on top of the grid.
type Overlay struct {
	showHelp bool
	message  string
	until    time.Time
	backdrop *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.backdrop = ebiten.NewImage(1, 1)
	o.backdrop.Fill(color.White)
	return o
}

// Update toggles the help panel.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if o.message != "" && time.Now().After(o.until) {
		o.message = ""
	}
}

// Flash shows msg for a few seconds.
func (o *Overlay) Flash(msg string) {
	o.message = msg
	o.until = time.Now().Add(flashDuration)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	if o.showHelp {
		o.box(screen, 8, 8, 260, len(HelpLines)*infoLine+12)
		for i, line := range HelpLines {
			text.Draw(screen, line, face, 16, 24+i*infoLine, brightText)
		}
	}
	if o.message != "" {
		h := screen.Bounds().Dy()
		w := text.BoundString(face, o.message).Dx()
		o.box(screen, 8, h-28, w+16, 20)
		text.Draw(screen, o.message, face, 16, h-14, color.RGBA{R: 255, G: 220, B: 120, A: 255})
	}
}

func (o *Overlay) box(screen *ebiten.Image, x, y, w, h int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	screen.DrawImage(o.backdrop, op)
}
