//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"cavis/internal/ca"
	"cavis/internal/core"
	"cavis/internal/render"
	"cavis/internal/session"
	"cavis/internal/settings"
	"cavis/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [core.MaxNeighborCount + 1]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2,
	ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	colorA, colorB color.RGBA
	palette        []color.RGBA

	preset   string
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided session.
func New(sess *session.Session, s settings.Settings, scale, tps, hudWidth int) *Game {
	size := sess.Size()
	g := &Game{
		sess:     sess,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sess, hudWidth),
		overlay:  ui.NewOverlay(),
		stepper:  core.NewFixedStep(tps),
		colorA:   s.ColorA,
		colorB:   s.ColorB,
		scale:    max(scale, 1),
		hudWidth: max(hudWidth, 0),
	}
	g.refreshPalette()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sess.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sess.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.sess.SetBoundary(g.sess.Boundary().Next())
		g.overlay.Flash("boundary " + g.sess.Boundary().String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		f := g.sess.Family().Next()
		g.sess.SetRule(ca.EmptyRule(f), ca.DefaultFill(f), ca.DefaultBoundary(f))
		g.preset = ""
		g.overlay.Flash("family " + f.String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p := ca.NextPreset(g.sess.Family(), g.preset)
		g.sess.ApplyPreset(p)
		g.preset = p.Key
		g.overlay.Flash(p.Name)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		q := g.currentSettings().Encode()
		log.Printf("settings: %s", q)
		g.overlay.Flash("settings written to log")
	}
	g.handlePatternKeys()

	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	g.refreshPalette()

	due := g.stepper.ShouldStep()
	if (due && !g.paused) || g.tickOnce {
		g.sess.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePatternKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for count, key := range digitKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		kind, label := session.PatternBirth, "birth"
		if shift {
			kind, label = session.PatternSurvival, "survival"
		}
		if g.sess.TogglePattern(kind, count) {
			g.overlay.Flash(fmt.Sprintf("%s %d toggled: %s", label, count, ca.Rulestring(g.sess.Rule())))
		}
	}
}

func (g *Game) currentSettings() settings.Settings {
	rule := g.sess.Rule()
	return settings.Settings{
		Family:   rule.Family(),
		Rule:     rule,
		Boundary: g.sess.Boundary(),
		Fill:     g.sess.Fill(),
		ColorA:   g.colorA,
		ColorB:   g.colorB,
	}
}

func (g *Game) refreshPalette() {
	if n := g.sess.States(); len(g.palette) != n {
		g.palette = render.TwoStopGradient(g.colorA, g.colorB, n)
	}
}

func (g *Game) gridWidth() int { return g.sess.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
