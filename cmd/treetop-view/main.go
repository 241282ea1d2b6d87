//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"treetop/internal/app"
	"treetop/internal/core"
	_ "treetop/internal/forest"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	heights, err := cfg.Heights()
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(heights)
	game := app.New(sim, cfg.Scale, cfg.SPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("treetop — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
