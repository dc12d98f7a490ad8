package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	// InactiveHex is the color of a dead day.
	InactiveHex = "#eeeeee"
	// BackgroundHex fills the gaps between cells.
	BackgroundHex = "#ffffff"
)

// ActiveHex lists the contribution greens, lightest first. Live cells pick
// one of them at random whenever they are repainted.
var ActiveHex = []string{"#d6e685", "#8cc665", "#44a340", "#1e6823"}

// CalendarPalette maps shade indices to colors: index 0 is dead, indices
// 1..len(ActiveHex) are the alive hues.
var CalendarPalette = mustPalette(append([]string{InactiveHex}, ActiveHex...))

// ParseHex converts a #rrggbb string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func mustPalette(hexes []string) []color.RGBA {
	palette := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		palette[i] = c
	}
	return palette
}
