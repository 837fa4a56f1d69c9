//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cavis/internal/app"
	"cavis/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	overrides, _ := app.ParseArgs(flag.Args())
	cfg.FromMap(overrides)

	s, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sess := session.New(cfg.Setup(s))
	log.Printf("starting %s (%s, %s)", sess.Name(), s.Boundary, s.Fill)

	game := app.New(sess, s, cfg.Scale, cfg.TPS, cfg.HUDWidth)
	size := sess.Size()

	ebiten.SetWindowTitle("cavis - " + sess.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
