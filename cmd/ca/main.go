//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gh-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	snap, err := cfg.Snapshot()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg, snap)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Size()

	ebiten.SetWindowTitle("GitHub's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
