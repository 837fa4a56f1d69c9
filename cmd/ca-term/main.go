// Command ca-term shows an automaton in the terminal, two cells per character.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"cavis/internal/app"
	"cavis/internal/ca"
	"cavis/internal/render"
	"cavis/internal/session"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fit := flag.Bool("fit", true, "shrink the grid to the terminal")
	flag.Parse()
	overrides, _ := app.ParseArgs(flag.Args())
	cfg.FromMap(overrides)

	s, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()

	if *fit {
		cols, rows := screen.Size()
		cfg.W = min(cfg.W, cols)
		cfg.H = min(cfg.H, (rows-1)*2)
	}
	sess := session.New(cfg.Setup(s))
	v := &viewer{screen: screen, sess: sess, colorA: s.ColorA, colorB: s.ColorB}
	v.run(cfg.TPS)
}

type viewer struct {
	screen tcell.Screen
	sess   *session.Session
	colorA color.RGBA
	colorB color.RGBA
	preset string
	paused bool
}

func (v *viewer) run(tps int) {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(tps, 1)))
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return
				}
				v.draw()
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw()
			}
		case <-ticker.C:
			if v.paused {
				continue
			}
			v.sess.Step()
			v.draw()
		}
	}
}

// handleKey reports false when the viewer should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.sess.Step()
	case 'r':
		v.sess.Reset(v.sess.Seed())
	case 's':
		v.sess.Reset(time.Now().UnixNano())
	case 'b':
		v.sess.SetBoundary(v.sess.Boundary().Next())
	case 'f':
		f := v.sess.Family().Next()
		v.sess.SetRule(ca.EmptyRule(f), ca.DefaultFill(f), ca.DefaultBoundary(f))
		v.preset = ""
	case 'p':
		p := ca.NextPreset(v.sess.Family(), v.preset)
		v.sess.ApplyPreset(p)
		v.preset = p.Key
	}
	return true
}

func (v *viewer) draw() {
	palette := terminalPalette(render.TwoStopGradient(v.colorA, v.colorB, v.sess.States()))
	size := v.sess.Size()
	drawHalfBlocks(size.W, size.H, v.sess.Cells(), func(x, y int, top, bottom uint8) {
		style := tcell.StyleDefault.Foreground(palette[top]).Background(palette[bottom])
		v.screen.SetContent(x, y, '▀', nil, style)
	})

	status := v.sess.Name() + "  " + v.sess.Boundary().String()
	if v.paused {
		status += "  [paused]"
	}
	status += "  space n r s b f p q"
	row := (size.H + 1) / 2
	runes := []rune(status)
	cols, _ := v.screen.Size()
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, row, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func terminalPalette(p []color.RGBA) []tcell.Color {
	out := make([]tcell.Color, len(p))
	for i, c := range p {
		out[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return out
}

// drawHalfBlocks visits the grid two rows at a time. A missing bottom row on
// odd heights is reported as state 0.
func drawHalfBlocks(w, h int, cells []uint8, set func(x, y int, top, bottom uint8)) {
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := cells[y*w+x]
			var bottom uint8
			if y+1 < h {
				bottom = cells[(y+1)*w+x]
			}
			set(x, y/2, top, bottom)
		}
	}
}
