package main

import (
	"flag"
	"fmt"
	"log"

	"gh-life/internal/app"
	"gh-life/internal/core"
	"gh-life/internal/render"
	"gh-life/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "maximum number of generations to simulate")
	show := flag.Bool("print", false, "print the grid after every generation")
	flag.Parse()

	snap, err := cfg.Snapshot()
	if err != nil {
		log.Fatal(err)
	}

	var flips render.FlipCounter
	sc := cfg.SessionConfig()
	sc.Scheduler = &core.ManualScheduler{}
	sc.Sink = &flips
	session, err := sim.New(snap, sc)
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	size := session.Size()
	fmt.Printf("%dx%d grid, %d live\n", size.W, size.H, session.LiveCount())
	if *show {
		fmt.Print(render.FormatGrid(session.Snapshot()))
	}

	reason := "step limit reached"
	for i := 0; i < *steps; i++ {
		flips.Reset()
		session.Step()
		if *show {
			fmt.Printf("\ngeneration %d, %d live\n", session.Generation(), session.LiveCount())
			fmt.Print(render.FormatGrid(session.Snapshot()))
		}
		if session.LiveCount() == 0 {
			reason = "population died out"
			break
		}
		if flips.Flips == 0 {
			reason = "still life"
			break
		}
	}
	fmt.Printf("Stopped after generation %d with %d live: %s\n", session.Generation(), session.LiveCount(), reason)
}
