// Package seed supplies initial grid snapshots: fixed patterns, random fills
// and contribution calendars.
package seed

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gh-life/internal/core"
)

// ErrUnknown is returned by Build for unregistered seed names.
var ErrUnknown = errors.New("unknown seed")

// Factory builds a snapshot from flag-style key/value options.
type Factory func(cfg map[string]string) (core.Snapshot, error)

var seeds = map[string]Factory{}

// Register adds a seed factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	seeds[name] = f
}

// Names lists the registered seeds in sorted order.
func Names() []string {
	names := make([]string, 0, len(seeds))
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build runs the factory registered under name.
func Build(name string, cfg map[string]string) (core.Snapshot, error) {
	f, ok := seeds[name]
	if !ok {
		return core.Snapshot{}, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	snap, err := f(cfg)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("seed %s: %w", name, err)
	}
	return snap, nil
}

// Config holds the options shared by the built-in seeds.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Density float64
	File    string
}

// DefaultConfig returns a calendar-sized configuration: a year of weeks.
func DefaultConfig() Config {
	return Config{Width: 53, Height: core.CalendarDepth, Seed: 42, Density: 0.3}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["file"]; ok {
		c.File = v
	}
	return c
}

// Pattern places a set of alive cells, given relative to the pattern's top
// left corner, centered on a grid of the configured size.
func Pattern(c Config, cells ...core.Cell) (core.Snapshot, error) {
	maxX, maxY := 0, 0
	for _, cell := range cells {
		if cell.X > maxX {
			maxX = cell.X
		}
		if cell.Y > maxY {
			maxY = cell.Y
		}
	}
	if maxX >= c.Width || maxY >= c.Height {
		return core.Snapshot{}, &core.OutOfBoundsError{X: maxX, Y: maxY, Size: core.Size{W: c.Width, H: c.Height}}
	}
	ox := (c.Width - (maxX + 1)) / 2
	oy := (c.Height - (maxY + 1)) / 2
	snap := core.NewSnapshot(c.Width, c.Height)
	for _, cell := range cells {
		snap.Cells[core.Cell{X: ox + cell.X, Y: oy + cell.Y}] = true
	}
	return snap, nil
}

func init() {
	Register("empty", func(cfg map[string]string) (core.Snapshot, error) {
		c := FromMap(cfg)
		return core.NewSnapshot(c.Width, c.Height), nil
	})
	Register("blinker", func(cfg map[string]string) (core.Snapshot, error) {
		return Pattern(FromMap(cfg), core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0}, core.Cell{X: 2, Y: 0})
	})
	Register("block", func(cfg map[string]string) (core.Snapshot, error) {
		return Pattern(FromMap(cfg), core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0}, core.Cell{X: 0, Y: 1}, core.Cell{X: 1, Y: 1})
	})
	Register("glider", func(cfg map[string]string) (core.Snapshot, error) {
		return Pattern(FromMap(cfg),
			core.Cell{X: 1, Y: 0},
			core.Cell{X: 2, Y: 1},
			core.Cell{X: 0, Y: 2}, core.Cell{X: 1, Y: 2}, core.Cell{X: 2, Y: 2})
	})
	Register("random", func(cfg map[string]string) (core.Snapshot, error) {
		return Random(FromMap(cfg)), nil
	})
	Register("noise", func(cfg map[string]string) (core.Snapshot, error) {
		return Noise(FromMap(cfg)), nil
	})
	Register("calendar", func(cfg map[string]string) (core.Snapshot, error) {
		c := FromMap(cfg)
		if c.File == "" {
			return core.Snapshot{}, errors.New("calendar seed needs a file")
		}
		return CalendarFile(c.File)
	})
}
