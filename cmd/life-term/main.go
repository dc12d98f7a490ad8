package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gh-life/internal/app"
	"gh-life/internal/core"
	"gh-life/internal/render"
	"gh-life/internal/sim"
	"gh-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	snap, err := cfg.Snapshot()
	if err != nil {
		log.Fatal(err)
	}

	queue := render.NewQueue()
	sc := cfg.SessionConfig()
	sc.Scheduler = core.TickerScheduler{}
	sc.Sink = queue
	session, err := sim.New(snap, sc)
	if err != nil {
		log.Fatal(err)
	}
	canvas := render.NewCanvas(snap.Size.W, snap.Size.H, len(render.ActiveHex), cfg.RNG)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.New(screen, session, queue, canvas).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
